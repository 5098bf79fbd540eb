package ingest

import (
	"encoding/csv"
	"io"

	"github.com/Phaust94/sqlite-interface/models"
)

func init() {
	RegisterDecoder("csv", decodeCsv)
}

func decodeCsv(r io.Reader) (*models.Dataset, error) {
	cr := csv.NewReader(r)
	// ragged rows are padded/widened downstream, not rejected here
	cr.FieldsPerRecord = -1
	records, err := cr.ReadAll()
	if err != nil {
		return nil, err
	}
	return datasetFromRecords(records)
}
