package ingest

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/araddon/dateparse"
	"github.com/araddon/qlbridge/value"

	"github.com/Phaust94/sqlite-interface/models"
)

// inferCell best-effort typed value for one raw cell.  Empty is nil,
// ints before floats before dates, everything else stays a string.
func inferCell(raw string) value.Value {
	s := strings.TrimSpace(raw)
	if s == "" {
		return value.NewNilValue()
	}
	if iv, err := strconv.ParseInt(s, 10, 64); err == nil {
		return value.NewIntValue(iv)
	}
	if fv, err := strconv.ParseFloat(s, 64); err == nil {
		return value.NewNumberValue(fv)
	}
	if t, err := dateparse.ParseAny(s); err == nil {
		return value.NewTimeValue(t)
	}
	return value.NewStringValue(raw)
}

// datasetFromRecords first record is the header, the rest are data
// rows run through cell inference.  Column types widen as rows arrive.
func datasetFromRecords(records [][]string) (*models.Dataset, error) {
	if len(records) == 0 || len(records[0]) == 0 {
		return nil, fmt.Errorf("no header row in upload")
	}
	ds := models.NewDataset(records[0])
	for _, rec := range records[1:] {
		row := make([]value.Value, len(rec))
		for i, cell := range rec {
			row[i] = inferCell(cell)
		}
		ds.AddRow(row)
	}
	return ds, nil
}
