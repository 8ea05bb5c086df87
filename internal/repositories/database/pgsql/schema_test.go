package pgsql

import (
	"os"
	"path/filepath"
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Directory attributes are stored as published; a column narrower than the
// directory's values would fail the whole bank load.
func TestBanksSchemaColumnWidths(t *testing.T) {
	raw, err := os.ReadFile(filepath.Join("..", "..", "..", "..", "migrations", "000001_init_schema.up.sql"))
	require.NoError(t, err)
	schema := string(raw)

	columns := map[string]string{
		"bic":      `VARCHAR\(9\)`,
		"pzn":      `VARCHAR\(4\)`,
		"rgn":      `VARCHAR\(4\)`,
		"ind":      `VARCHAR\(18\)`,
		"tnp":      `VARCHAR\(15\)`,
		"nnp":      `VARCHAR\(50\)`,
		"adr":      `TEXT`,
		"namep":    `VARCHAR\(255\)`,
		"newnum":   `VARCHAR\(12\)`,
		"regn":     `VARCHAR\(18\)`,
		"ksnp":     `VARCHAR\(30\)`,
		"datein":   `VARCHAR\(10\)`,
		"cbrfdate": `VARCHAR\(10\)`,
		"cbrffile": `VARCHAR\(100\)`,
		"crc7":     `VARCHAR\(25\)`,
	}
	for column, typ := range columns {
		pattern := regexp.MustCompile(`(?m)^\s+` + column + `\s+` + typ + `[\s,]`)
		assert.Truef(t, pattern.MatchString(schema), "column %s should be declared as %s", column, typ)
	}
}
