package sqlite

import (
	"crypto/sha256"
	"encoding/hex"
)

// TableNamePrefix namespaces every tenant table so derived names are
// always valid sqlite identifiers and never collide with the bootstrap
// marker or anything a migration might add later.
const TableNamePrefix = "_user_data_"

// TableName derives the private table name for a tenant.  Deterministic
// one-way mapping: sha256 over "<tenantID>_<salt>", full hex digest (no
// truncation), prefixed.  The salt is a long lived secret; the tenant id
// is not.  Same inputs always yield the same name, so the mapping is
// recomputed on every access and never persisted.
func TableName(tenantID, salt string) string {
	h := sha256.Sum256([]byte(tenantID + "_" + salt))
	return TableNamePrefix + hex.EncodeToString(h[:])
}
