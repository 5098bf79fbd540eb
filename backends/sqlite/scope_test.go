package sqlite

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestScopeReplacesAllOccurrences(t *testing.T) {
	q := Scope("SELECT * FROM :tbl a JOIN :tbl b ON a.id = b.id", "_user_data_ff")
	assert.Equal(t, "SELECT * FROM _user_data_ff a JOIN _user_data_ff b ON a.id = b.id", q)
}

func TestScopeNoPlaceholder(t *testing.T) {
	q := "SELECT 1"
	assert.Equal(t, q, Scope(q, "_user_data_ff"))
}

func TestScopeIsLexical(t *testing.T) {
	// substitution happens even inside string literals, documented
	// limitation of the lexical approach
	q := Scope("SELECT ':tbl' FROM :tbl", "_user_data_ff")
	assert.Equal(t, "SELECT '_user_data_ff' FROM _user_data_ff", q)
}
