package main

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSplitStatements(t *testing.T) {
	content := `-- register catalog
CREATE TABLE a (id INT);

-- comment between
CREATE INDEX idx_a ON a (id);
;
`
	got := splitStatements(content)
	assert.Equal(t, []string{
		"CREATE TABLE a (id INT)",
		"CREATE INDEX idx_a ON a (id)",
	}, got)
}

func TestSplitStatements_Empty(t *testing.T) {
	assert.Empty(t, splitStatements("-- nothing here\n\n"))
}

func TestPreview(t *testing.T) {
	assert.Equal(t, "SELECT 1", preview("SELECT 1"))
	assert.Len(t, preview(strings.Repeat("x", 250)), 100)
}
