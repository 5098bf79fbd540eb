package sqlite

import (
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/Phaust94/sqlite-interface/testutil"
)

func init() {
	testutil.Setup()
}

func TestTableNameStable(t *testing.T) {
	name := TableName("12345", "pepper")
	for i := 0; i < 10; i++ {
		assert.Equal(t, name, TableName("12345", "pepper"))
	}
}

func TestTableNameDistinct(t *testing.T) {
	a := TableName("12345", "pepper")
	b := TableName("12346", "pepper")
	assert.NotEqual(t, a, b)

	// different salt, different universe of names
	assert.NotEqual(t, a, TableName("12345", "other"))
}

func TestTableNameValidIdentifier(t *testing.T) {
	name := TableName("any tenant, even with spaces!", "pepper")
	// prefix + full-width (untruncated) sha256 hex digest
	assert.Regexp(t, regexp.MustCompile(`^_user_data_[0-9a-f]{64}$`), name)
}
