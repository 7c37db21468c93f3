package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReadDDLStatements(t *testing.T) {
	path := filepath.Join(t.TempDir(), "schema.sql")
	require.NoError(t, os.WriteFile(path, []byte("CREATE TABLE a (id INT64) PRIMARY KEY (id);\r\n\r\n  CREATE INDEX i ON a(id)\n;\n"), 0o644))

	stmts, err := readDDLStatements(path)
	require.NoError(t, err)
	assert.Equal(t, []string{
		"CREATE TABLE a (id INT64) PRIMARY KEY (id)",
		"CREATE INDEX i ON a(id)",
	}, stmts)
}

func TestReadDDLStatements_Schema(t *testing.T) {
	stmts, err := readDDLStatements(filepath.Join("..", "..", "migrations", "001_initial_schema.sql"))
	require.NoError(t, err)
	require.Len(t, stmts, 6)
	assert.Contains(t, stmts[1], "CREATE TABLE product_variants")
}

func TestReadDDLStatements_Missing(t *testing.T) {
	_, err := readDDLStatements(filepath.Join(t.TempDir(), "nope.sql"))
	assert.Error(t, err)
}
