package dataset

// table is the shared in-memory representation behind both backends.
//
// Both loaders materialize the full dataset at open time (it is small
// and immutable), so every read after startup is a lock-free memory
// access and the ListAll/GetByID error paths only exist to satisfy the
// Source contract.
type table struct {
	kind    string
	columns []string
	records []Record
	byID    map[int]int
}

func newTable(kind string, columns []string, records []Record) table {
	byID := make(map[int]int, len(records))
	for i, rec := range records {
		// Rows without a usable identifier stay listable but cannot be
		// looked up by id.
		if id := rec.ID(); id > 0 {
			byID[id] = i
		}
	}

	return table{
		kind:    kind,
		columns: columns,
		records: records,
		byID:    byID,
	}
}

func (t *table) Kind() string {
	return t.kind
}

func (t *table) Columns() []string {
	return t.columns
}

func (t *table) ListAll() ([]Record, error) {
	out := make([]Record, len(t.records))
	for i, rec := range t.records {
		out[i] = rec.Clone()
	}
	return out, nil
}

func (t *table) GetByID(id int) (Record, bool, error) {
	i, ok := t.byID[id]
	if !ok {
		return Record{}, false, nil
	}
	return t.records[i].Clone(), true, nil
}
