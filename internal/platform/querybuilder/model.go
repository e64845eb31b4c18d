package querybuilder

import (
	"fmt"
	"reflect"
	"strings"
)

// ModelColumns extracts db-tagged columns and their values from a table model
// struct, skipping the named columns. Field order is struct order, so calling
// it for every row of a bulk insert yields consistent column lists.
func ModelColumns(model any, skip ...string) ([]string, []any, error) {
	skipSet := make(map[string]struct{}, len(skip))
	for _, col := range skip {
		skipSet[col] = struct{}{}
	}

	value := reflect.ValueOf(model)
	for value.Kind() == reflect.Pointer {
		if value.IsNil() {
			return nil, nil, fmt.Errorf("model cannot be nil")
		}
		value = value.Elem()
	}
	if value.Kind() != reflect.Struct {
		return nil, nil, fmt.Errorf("model must be struct")
	}

	typ := value.Type()
	cols := make([]string, 0, typ.NumField())
	vals := make([]any, 0, typ.NumField())
	for i := 0; i < typ.NumField(); i++ {
		field := typ.Field(i)
		if field.PkgPath != "" {
			continue
		}
		tag := strings.TrimSpace(field.Tag.Get("db"))
		if tag == "" || tag == "-" {
			continue
		}
		col := strings.TrimSpace(strings.Split(tag, ",")[0])
		if col == "" || col == "-" {
			continue
		}
		if _, skipped := skipSet[col]; skipped {
			continue
		}
		cols = append(cols, col)
		vals = append(vals, value.Field(i).Interface())
	}

	if len(cols) == 0 {
		return nil, nil, fmt.Errorf("model has no db columns")
	}
	return cols, vals, nil
}

// InsertModel builds a single-row insert from a db-tagged struct.
func InsertModel(table string, model any, suffix string, skip ...string) (string, []any, error) {
	cols, vals, err := ModelColumns(model, skip...)
	if err != nil {
		return "", nil, err
	}
	return InsertInto(table).
		Columns(cols...).
		Values(vals...).
		Suffix(suffix).
		ToSQL()
}

// UpdateModel builds a full-row update from a db-tagged struct. Every column
// not in skip is overwritten.
func UpdateModel(table string, model any, where []Condition, skip ...string) (string, []any, error) {
	cols, vals, err := ModelColumns(model, skip...)
	if err != nil {
		return "", nil, err
	}

	builder := Update(table)
	for i, col := range cols {
		builder.Set(col, vals[i])
	}
	return builder.Where(where...).ToSQL()
}
