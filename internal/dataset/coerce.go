package dataset

import (
	"strconv"
	"strings"

	"github.com/rs/zerolog"
)

// Typed columns of the Titanic schema. Everything else stays a string.
var (
	intColumns = map[string]bool{
		"PassengerId": true,
		"Survived":    true,
		"Pclass":      true,
		"SibSp":       true,
		"Parch":       true,
	}

	floatColumns = map[string]bool{
		"Age":  true,
		"Fare": true,
	}

	// nullSentinels are raw cell values treated as null, matching how
	// the dataset encodes missing values.
	nullSentinels = map[string]bool{
		"":     true,
		"None": true,
		"NULL": true,
		"null": true,
		"none": true,
		"Null": true,
		"NONE": true,
	}
)

// coerceString converts a raw cell value into its typed form: int64 for
// integer columns, float64 for float columns, nil for null sentinels,
// and the string itself otherwise.
//
// A value that should be numeric but does not parse coerces to nil with
// a warning rather than failing the whole load; the dataset is external
// and a single dirty cell should not take the API down.
func coerceString(column, raw string, logger zerolog.Logger) any {
	if nullSentinels[raw] {
		return nil
	}

	switch {
	case intColumns[column]:
		n, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			logger.Warn().
				Str("column", column).
				Str("value", raw).
				Msg("could not coerce value to integer, treating as null")
			return nil
		}
		return n

	case floatColumns[column]:
		f, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			logger.Warn().
				Str("column", column).
				Str("value", raw).
				Msg("could not coerce value to float, treating as null")
			return nil
		}
		return f

	default:
		if nullSentinels[strings.TrimSpace(raw)] {
			return nil
		}
		return raw
	}
}

// normalizeDriverValue converts a database/sql scan result into the same
// typed form coerceString produces, so records are identical regardless
// of backend. SQLite is dynamically typed: a numeric column can still
// hand back TEXT for individual rows.
func normalizeDriverValue(column string, v any, logger zerolog.Logger) any {
	switch val := v.(type) {
	case nil:
		return nil
	case []byte:
		return coerceString(column, string(val), logger)
	case string:
		return coerceString(column, val, logger)
	case int64:
		if floatColumns[column] {
			return float64(val)
		}
		return val
	case float64:
		if intColumns[column] {
			return int64(val)
		}
		return val
	default:
		logger.Warn().
			Str("column", column).
			Interface("value", v).
			Msg("unexpected driver value type, treating as null")
		return nil
	}
}
