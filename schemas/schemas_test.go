package schemas

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pruthviraj/career-compass/internal/schemas"
)

var schemaFiles = []string{
	"careers.schema.json",
	"resources.schema.json",
	"startups.schema.json",
}

func TestSchemaFiles_ValidJSON(t *testing.T) {
	for _, schemaFile := range schemaFiles {
		t.Run(schemaFile, func(t *testing.T) {
			data, err := os.ReadFile(schemaFile)
			require.NoError(t, err)

			var v interface{}
			assert.NoError(t, json.Unmarshal(data, &v), "schema file should be valid JSON: %s", schemaFile)
		})
	}
}

func TestSeedData_MatchesSchemas(t *testing.T) {
	pairs := map[string]string{
		"careers.schema.json":   filepath.Join("..", "data", "careers.json"),
		"resources.schema.json": filepath.Join("..", "data", "resources.json"),
		"startups.schema.json":  filepath.Join("..", "data", "startups.json"),
	}

	for schemaFile, dataFile := range pairs {
		t.Run(schemaFile, func(t *testing.T) {
			assert.NoError(t, schemas.ValidateFile(schemaFile, dataFile))
		})
	}
}
