package ingest

import (
	"bytes"
	"errors"
	"os"
	"testing"

	"github.com/araddon/qlbridge/value"
	"github.com/bmizerany/assert"
	"github.com/xuri/excelize/v2"

	"github.com/Phaust94/sqlite-interface/models"
	"github.com/Phaust94/sqlite-interface/testutil"
)

func init() {
	testutil.Setup()
}

func TestParseCsv(t *testing.T) {
	f, err := os.Open("../testdata/people.csv")
	assert.Equalf(t, nil, err, "open fixture: %v", err)
	defer f.Close()

	ds, err := Parse(f, "people.csv")
	assert.Equalf(t, nil, err, "no error: %v", err)
	assert.Equal(t, []string{"name", "age", "score", "joined"}, ds.Columns)
	assert.Equal(t, 2, ds.RowCt())

	// inferred column types: string, int, number, time
	assert.Equal(t, value.StringType, ds.Types[0])
	assert.Equal(t, value.IntType, ds.Types[1])
	assert.Equal(t, value.NumberType, ds.Types[2])
	assert.Equal(t, value.TimeType, ds.Types[3])

	// empty cell is a nil value, not empty string
	assert.T(t, ds.Rows[1][2].Nil())
}

func TestParseXlsx(t *testing.T) {
	xf := excelize.NewFile()
	cells := [][]interface{}{
		{"A1", "name"}, {"B1", "age"},
		{"A2", "alice"}, {"B2", 30},
		{"A3", "bob"}, {"B3", 25},
	}
	for _, c := range cells {
		if err := xf.SetCellValue("Sheet1", c[0].(string), c[1]); err != nil {
			t.Fatalf("fixture build: %v", err)
		}
	}
	buf, err := xf.WriteToBuffer()
	assert.Equalf(t, nil, err, "fixture write: %v", err)

	ds, err := Parse(bytes.NewReader(buf.Bytes()), "people.xlsx")
	assert.Equalf(t, nil, err, "no error: %v", err)
	assert.Equal(t, []string{"name", "age"}, ds.Columns)
	assert.Equal(t, 2, ds.RowCt())
	assert.Equal(t, "alice", ds.Rows[0][0].ToString())
	assert.Equal(t, value.IntType, ds.Types[1])
}

func TestParseUnsupportedExtension(t *testing.T) {
	_, err := Parse(bytes.NewReader([]byte("a,b\n1,2\n")), "data.txt")
	assert.NotEqual(t, nil, err)

	var uerr *models.UnsupportedFormatError
	assert.T(t, errors.As(err, &uerr))
	assert.Equal(t, "txt", uerr.Ext)
}

func TestParseXlsRegistered(t *testing.T) {
	// garbage bytes must fail in the decoder, not as an unknown format
	_, err := Parse(bytes.NewReader([]byte("not an xls file")), "data.xls")
	assert.NotEqual(t, nil, err)
	var uerr *models.UnsupportedFormatError
	assert.T(t, !errors.As(err, &uerr))
}

func TestParseEmptyCsv(t *testing.T) {
	_, err := Parse(bytes.NewReader(nil), "empty.csv")
	assert.NotEqual(t, nil, err)
}
