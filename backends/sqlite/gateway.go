package sqlite

import (
	"database/sql"
	"errors"
	"fmt"
	"os"
	"strings"
	"sync"

	u "github.com/araddon/gou"
	"github.com/araddon/qlbridge/value"
	"github.com/jmoiron/sqlx"
	_ "github.com/mattn/go-sqlite3"

	"github.com/Phaust94/sqlite-interface/models"
)

// The bootstrap marker table exists solely so "is this storage file
// initialized" checks are reliable; tenant tables are created lazily by
// the first ingestion and never dropped here.
const bootstrapDDL = `CREATE TABLE IF NOT EXISTS DUMMY (A INTEGER)`

var errClosed = errors.New("gateway is closed")

// Gateway owns the single sqlite connection for one storage file and is
// the only component allowed to open/close it.  One live gateway per
// storage file path; the mutex is the sole serialization point if the
// host ever runs tenant actions concurrently.
type Gateway struct {
	mu   sync.Mutex
	path string
	salt string
	db   *sqlx.DB
}

// QueryRequest a single tenant query execution.
type QueryRequest struct {
	Text         string                 // tenant-supplied query text, may contain :tbl
	TenantID     string                 // if set, :tbl is scoped to this tenant's table
	Params       map[string]interface{} // optional named bind params
	Safe         bool                   // direct statement execution, no result assembly
	RaiseOnError bool                   // propagate faults instead of error-row dataset
}

// Open the storage file, creating it and running the one-time schema
// bootstrap if it did not previously exist.  Re-opening an initialized
// file never re-runs bootstrap (marker ddl is idempotent regardless).
func Open(path, salt string) (*Gateway, error) {

	_, statErr := os.Stat(path)
	existed := statErr == nil

	db, err := sqlx.Open("sqlite3", path)
	if err != nil {
		return nil, &models.ConnectionError{Path: path, Err: err}
	}
	// sqlx.Open is lazy, force file creation now
	if err = db.Ping(); err != nil {
		db.Close()
		return nil, &models.ConnectionError{Path: path, Err: err}
	}

	if !existed {
		u.Debugf("bootstrapping new storage file %s", path)
		if _, err = db.Exec(bootstrapDDL); err != nil {
			db.Close()
			return nil, &models.ConnectionError{Path: path, Err: err}
		}
	}
	return &Gateway{path: path, salt: salt, db: db}, nil
}

// Close commits any pending write buffer (best-effort, sqlite in
// autocommit rejects the COMMIT and that is fine) and releases the
// connection.  Terminal: the gateway cannot be re-opened.
func (m *Gateway) Close() error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.db == nil {
		return nil
	}
	if _, err := m.db.Exec("COMMIT"); err != nil {
		u.Debugf("close-time commit ignored: %v", err)
	}
	err := m.db.Close()
	m.db = nil
	if err != nil {
		return &models.ConnectionError{Path: m.path, Err: err}
	}
	return nil
}

// TableFor the derived private table name for a tenant on this gateway.
func (m *Gateway) TableFor(tenantID string) string {
	return TableName(tenantID, m.salt)
}

// Ingest append every row of the dataset into the tenant's private
// table, creating the table from the dataset's inferred schema if this
// is the tenant's first upload.  The whole batch is one transaction;
// any failure (including schema/type conflict with a previous upload)
// rolls back and surfaces as a StorageError — silent partial ingestion
// is unacceptable.
func (m *Gateway) Ingest(ds *models.Dataset, tenantID string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	tbl := TableName(tenantID, m.salt)
	if m.db == nil {
		return &models.StorageError{Table: tbl, Err: errClosed}
	}
	if ds == nil || len(ds.Columns) == 0 {
		return &models.StorageError{Table: tbl, Err: fmt.Errorf("dataset has no columns")}
	}

	if _, err := m.db.Exec(createTableSQL(tbl, ds)); err != nil {
		return &models.StorageError{Table: tbl, Err: err}
	}

	tx, err := m.db.Beginx()
	if err != nil {
		return &models.StorageError{Table: tbl, Err: err}
	}
	insert := insertSQL(tbl, ds.Columns)
	for _, row := range ds.Rows {
		args := make([]interface{}, len(row))
		for i, v := range row {
			args[i] = fromValue(v)
		}
		if _, err = tx.Exec(insert, args...); err != nil {
			tx.Rollback()
			return &models.StorageError{Table: tbl, Err: err}
		}
	}
	if err = tx.Commit(); err != nil {
		return &models.StorageError{Table: tbl, Err: err}
	}
	u.Debugf("ingested %d rows into %s", ds.RowCt(), tbl)
	return nil
}

// Query execute tenant query text.  With a TenantID the :tbl
// placeholder is rewritten to the tenant's real table first.  Result is
// a tagged triple: (dataset, nil) for rows, (nil, nil) for an absent
// result, (nil, err) for a propagated fault.  With RaiseOnError=false a
// fault is instead folded into a one-row error dataset so the tenant
// still gets something renderable back.
func (m *Gateway) Query(req QueryRequest) (*models.Dataset, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.db == nil {
		return nil, &models.ConnectionError{Path: m.path, Err: errClosed}
	}

	text := req.Text
	if req.TenantID != "" {
		text = Scope(text, TableName(req.TenantID, m.salt))
	}

	ds, err := m.execute(text, req)
	if err == nil {
		return ds, nil
	}
	if req.RaiseOnError {
		return nil, &models.QueryError{Query: text, Err: err}
	}
	if errors.Is(err, sql.ErrNoRows) {
		// nothing to iterate: absent result, not an error row
		return nil, nil
	}
	return models.ErrorDataset(err.Error()), nil
}

func (m *Gateway) execute(text string, req QueryRequest) (*models.Dataset, error) {

	if req.Safe {
		// statement-oriented, no result assembly (COMMIT, VACUUM, ...)
		var err error
		if len(req.Params) > 0 {
			_, err = m.db.NamedExec(text, req.Params)
		} else {
			_, err = m.db.Exec(text)
		}
		return nil, err
	}

	var rows *sqlx.Rows
	var err error
	if len(req.Params) > 0 {
		rows, err = m.db.NamedQuery(text, req.Params)
	} else {
		rows, err = m.db.Queryx(text)
	}
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	cols, err := rows.Columns()
	if err != nil {
		return nil, err
	}
	ds := models.NewDataset(cols)
	for rows.Next() {
		vals, err := rows.SliceScan()
		if err != nil {
			return nil, err
		}
		row := make([]value.Value, len(vals))
		for i, v := range vals {
			row[i] = toValue(v)
		}
		ds.AddRow(row)
	}
	return ds, rows.Err()
}

// createTableSQL create-if-absent ddl from the dataset's inferred
// column types.  Later uploads with conflicting columns hit sqlite's
// own coercion/rejection rules, we do not unify schemas.
func createTableSQL(tbl string, ds *models.Dataset) string {
	defs := make([]string, len(ds.Columns))
	for i, col := range ds.Columns {
		defs[i] = fmt.Sprintf("%s %s", quoteIdent(col), sqliteType(ds.Types[i]))
	}
	return fmt.Sprintf("CREATE TABLE IF NOT EXISTS %s (%s)", quoteIdent(tbl), strings.Join(defs, ", "))
}

func insertSQL(tbl string, cols []string) string {
	quoted := make([]string, len(cols))
	marks := make([]string, len(cols))
	for i, col := range cols {
		quoted[i] = quoteIdent(col)
		marks[i] = "?"
	}
	return fmt.Sprintf("INSERT INTO %s (%s) VALUES (%s)",
		quoteIdent(tbl), strings.Join(quoted, ", "), strings.Join(marks, ", "))
}

func quoteIdent(name string) string {
	return `"` + strings.ReplaceAll(name, `"`, `""`) + `"`
}

func sqliteType(vt value.ValueType) string {
	switch vt {
	case value.IntType:
		return "BIGINT"
	case value.NumberType:
		return "REAL"
	case value.BoolType:
		return "BOOLEAN"
	case value.TimeType:
		return "TIMESTAMP"
	default:
		return "TEXT"
	}
}

func fromValue(v value.Value) interface{} {
	if v == nil || v.Nil() {
		return nil
	}
	return v.Value()
}

func toValue(v interface{}) value.Value {
	switch val := v.(type) {
	case nil:
		return value.NewNilValue()
	case []byte:
		// sqlite hands TEXT back as raw bytes on untyped scans
		return value.NewStringValue(string(val))
	default:
		return value.NewValue(v)
	}
}
