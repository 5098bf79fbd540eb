package ingest

import (
	"bytes"
	"fmt"
	"io"

	"github.com/extrame/xls"

	"github.com/Phaust94/sqlite-interface/models"
)

// legacy xls sheets are bounded; more rows than this in a chat upload
// means something is wrong anyway
const xlsMaxRows = 1 << 20

func init() {
	RegisterDecoder("xls", decodeXls)
}

func decodeXls(r io.Reader) (*models.Dataset, error) {
	// the xls reader needs random access, buffer the upload
	raw, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	wb, err := xls.OpenReader(bytes.NewReader(raw), "utf-8")
	if err != nil {
		return nil, err
	}
	records := wb.ReadAllCells(xlsMaxRows)
	if len(records) == 0 {
		return nil, fmt.Errorf("spreadsheet has no sheets")
	}
	return datasetFromRecords(records)
}
