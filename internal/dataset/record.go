package dataset

import (
	"bytes"
	"encoding/json"
)

// IDColumn is the identifier field of the dataset. It is unique across
// all records and stable across backend choice.
const IDColumn = "PassengerId"

// Record is an ordered mapping from field name to value.
//
// Values are nil, int64, float64, or string after coercion. Field order
// follows the dataset schema (or the requested order, for projections)
// and is preserved through JSON serialization so both backends produce
// byte-identical output.
type Record struct {
	columns []string
	values  map[string]any
}

// NewRecord builds a record over the given column order. The values map
// is used as-is; callers hand over ownership.
func NewRecord(columns []string, values map[string]any) Record {
	return Record{columns: columns, values: values}
}

// Columns returns the record's field names in order.
func (r Record) Columns() []string {
	return r.columns
}

// Get returns the value for a field and whether the field exists.
func (r Record) Get(name string) (any, bool) {
	v, ok := r.values[name]
	return v, ok
}

// ID returns the record's identifier, or 0 if it is missing or not an
// integer. Backends skip such rows when indexing, so lookups never see
// an id of 0.
func (r Record) ID() int {
	if v, ok := r.values[IDColumn].(int64); ok {
		return int(v)
	}
	return 0
}

// Fare returns the record's fare value and whether it is a usable
// number. Missing and non-numeric fares report false.
func (r Record) Fare() (float64, bool) {
	v, ok := r.values["Fare"].(float64)
	return v, ok
}

// Clone returns a deep copy of the record. Backends return clones from
// ListAll/GetByID so callers can mutate results without touching the
// loaded dataset.
func (r Record) Clone() Record {
	columns := make([]string, len(r.columns))
	copy(columns, r.columns)

	values := make(map[string]any, len(r.values))
	for k, v := range r.values {
		values[k] = v
	}

	return Record{columns: columns, values: values}
}

// Project returns a new record containing exactly the named fields, in
// the requested order, values unchanged. Names not present in the record
// are returned in the second value; if any exist the projection is
// rejected as a whole and the returned record is empty — no partial or
// best-effort result.
func (r Record) Project(names []string) (Record, []string) {
	var unknown []string
	for _, name := range names {
		if _, ok := r.values[name]; !ok {
			unknown = append(unknown, name)
		}
	}
	if len(unknown) > 0 {
		return Record{}, unknown
	}

	columns := make([]string, len(names))
	copy(columns, names)

	values := make(map[string]any, len(names))
	for _, name := range names {
		values[name] = r.values[name]
	}

	return Record{columns: columns, values: values}, nil
}

// MarshalJSON serializes the record as a JSON object with keys in column
// order. encoding/json map marshaling sorts keys alphabetically, which
// would break the ordering contract, so the object is written by hand.
func (r Record) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')

	for i, name := range r.columns {
		if i > 0 {
			buf.WriteByte(',')
		}

		key, err := json.Marshal(name)
		if err != nil {
			return nil, err
		}
		buf.Write(key)
		buf.WriteByte(':')

		val, err := json.Marshal(r.values[name])
		if err != nil {
			return nil, err
		}
		buf.Write(val)
	}

	buf.WriteByte('}')
	return buf.Bytes(), nil
}
