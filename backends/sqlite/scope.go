package sqlite

import "strings"

// TablePlaceholder is the reserved token tenants write in query text
// where their private table name belongs.
const TablePlaceholder = ":tbl"

// Scope rewrite every occurrence of the table placeholder in tenant
// query text into the real table name.  Purely lexical: no sql parsing,
// no validation of the rest of the text, and a placeholder inside a
// string literal is substituted like any other.  The substitution is the
// only way table identity enters the query; the remainder of the text is
// executed verbatim against the engine.
func Scope(queryText, tableName string) string {
	return strings.ReplaceAll(queryText, TablePlaceholder, tableName)
}
