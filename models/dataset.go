package models

import (
	"github.com/araddon/qlbridge/value"
)

// ExceptionColumn is the single column name of an error-row dataset,
// what a tenant sees when their query fails and the caller chose
// render-instead-of-raise.
const ExceptionColumn = "Exception_text"

// Dataset is the in-memory tabular structure used both as ingestion
// input and query output: ordered named columns, rows of qlbridge
// values (string, int, number, time, nil).  Schema is inferred per
// upload and never unified across uploads.
type Dataset struct {
	Columns []string
	Types   []value.ValueType
	Rows    [][]value.Value
}

// NewDataset create an empty dataset with the given column set.
// Types start Unknown and widen as rows arrive.
func NewDataset(cols []string) *Dataset {
	types := make([]value.ValueType, len(cols))
	for i := range types {
		types[i] = value.UnknownType
	}
	return &Dataset{Columns: cols, Types: types}
}

// AddRow append one row, widening column types to fit.  Rows shorter
// than the column set are padded with nil values.
func (m *Dataset) AddRow(row []value.Value) {
	for len(row) < len(m.Columns) {
		row = append(row, value.NewNilValue())
	}
	for i, v := range row {
		if i >= len(m.Types) {
			break
		}
		m.Types[i] = widen(m.Types[i], v.Type())
	}
	m.Rows = append(m.Rows, row)
}

// RowCt row count.
func (m *Dataset) RowCt() int { return len(m.Rows) }

// ErrorDataset the error-as-data shape: one row, one column holding a
// human readable description of what went wrong.
func ErrorDataset(msg string) *Dataset {
	ds := NewDataset([]string{ExceptionColumn})
	ds.AddRow([]value.Value{value.NewStringValue(msg)})
	return ds
}

// widen resolve the column type for two observed cell types.  Nil never
// narrows, int widens to number, anything else conflicting degrades to
// string.
func widen(cur, next value.ValueType) value.ValueType {
	if next == value.NilType || next == value.UnknownType {
		return cur
	}
	if cur == value.UnknownType || cur == value.NilType || cur == next {
		return next
	}
	if (cur == value.IntType && next == value.NumberType) ||
		(cur == value.NumberType && next == value.IntType) {
		return value.NumberType
	}
	return value.StringType
}
