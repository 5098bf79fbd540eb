package ingest

import (
	"fmt"
	"io"

	"github.com/xuri/excelize/v2"

	"github.com/Phaust94/sqlite-interface/models"
)

func init() {
	RegisterDecoder("xlsx", decodeXlsx)
}

// decodeXlsx reads the first sheet only, matching the single-table
// upload model.
func decodeXlsx(r io.Reader) (*models.Dataset, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, fmt.Errorf("spreadsheet has no sheets")
	}
	rows, err := f.GetRows(sheets[0])
	if err != nil {
		return nil, err
	}
	return datasetFromRecords(rows)
}
