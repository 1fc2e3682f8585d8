package adapter

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	m "denolint.dev/pkg/denolint/internal/model"
)

func TestJSONConfigLoader_Load(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, ".denolintrc.json")
	writeTestFile(t, path, `{
  "rules": {
    "tags": ["recommended"],
    "include": ["eqeqeq"],
    "exclude": ["no-var"]
  },
  "files": {
    "include": ["src", "lib"],
    "exclude": ["src/generated"]
  }
}`)

	loaded, err := NewJSONConfigLoader().Load(m.Path(path))
	require.NoError(t, err)

	assert.Equal(t, m.Path(path), loaded.Path)
	assert.Equal(t, []string{"recommended"}, loaded.Rules.Tags)
	assert.Equal(t, []string{"eqeqeq"}, loaded.Rules.Include)
	assert.Equal(t, []string{"no-var"}, loaded.Rules.Exclude)
	assert.Equal(t, []m.Path{"src", "lib"}, loaded.IncludePaths)
	assert.Equal(t, []m.Path{"src/generated"}, loaded.ExcludePaths)
}

func TestJSONConfigLoader_EmptyObject(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	writeTestFile(t, path, `{}`)

	loaded, err := NewJSONConfigLoader().Load(m.Path(path))
	require.NoError(t, err)

	assert.Empty(t, loaded.Rules.Tags)
	assert.Empty(t, loaded.IncludePaths)
	assert.Empty(t, loaded.ExcludePaths)
}

func TestJSONConfigLoader_Errors(t *testing.T) {
	tests := []struct {
		name    string
		content string
		wantErr string
	}{
		{"malformed json", `{"rules": [`, "read config"},
		{"empty exclude entry", `{"files": {"exclude": [""]}}`, "validate config"},
		{"empty rule tag", `{"rules": {"tags": [""]}}`, "validate config"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "config.json")
			writeTestFile(t, path, tt.content)

			_, err := NewJSONConfigLoader().Load(m.Path(path))
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestJSONConfigLoader_MissingFile(t *testing.T) {
	_, err := NewJSONConfigLoader().Load(m.Path(filepath.Join(t.TempDir(), "nope.json")))
	require.Error(t, err)
}
