package jsonfile

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type item struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

func TestLoadAll(t *testing.T) {
	dir := t.TempDir()
	write := func(name, content string) string {
		p := filepath.Join(dir, name)
		require.NoError(t, os.WriteFile(p, []byte(content), 0o644))
		return p
	}

	tests := []struct {
		name    string
		path    string
		want    []item
		wantErr error
	}{
		{name: "missing file", path: filepath.Join(dir, "nope.json"), want: []item{}},
		{name: "empty file", path: write("empty.json", "  \n"), want: []item{}},
		{name: "null", path: write("null.json", "null"), want: []item{}},
		{
			name: "array",
			path: write("items.json", `[{"id":"1","name":"Awe"},{"id":"2","name":"King"}]`),
			want: []item{{ID: "1", Name: "Awe"}, {ID: "2", Name: "King"}},
		},
		{name: "malformed", path: write("bad.json", `{"id":`), wantErr: ErrMalformed},
		{name: "object instead of array", path: write("obj.json", `{"id":"1"}`), wantErr: ErrMalformed},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := LoadAll[item](tt.path)
			if tt.wantErr != nil {
				assert.Equal(t, tt.wantErr, errors.Cause(err))
				return
			}
			if assert.NoError(t, err) {
				assert.Equal(t, tt.want, got)
			}
		})
	}
}

func TestSaveAll(t *testing.T) {
	path := filepath.Join(t.TempDir(), "data", "items.json")

	t.Run("creates directory and round-trips", func(t *testing.T) {
		items := []item{{ID: "1", Name: "Awe"}, {ID: "2", Name: "King"}}
		require.NoError(t, SaveAll(path, items))

		got, err := LoadAll[item](path)
		require.NoError(t, err)
		assert.Equal(t, items, got)
	})

	t.Run("pretty printed with two spaces", func(t *testing.T) {
		data, err := os.ReadFile(path)
		require.NoError(t, err)
		assert.True(t, strings.HasPrefix(string(data), "[\n  {\n    \"id\": \"1\""))
	})

	t.Run("nil is written as an empty array", func(t *testing.T) {
		require.NoError(t, SaveAll[item](path, nil))
		data, err := os.ReadFile(path)
		require.NoError(t, err)
		assert.Equal(t, "[]", string(data))
	})

	t.Run("no temp file left behind", func(t *testing.T) {
		entries, err := os.ReadDir(filepath.Dir(path))
		require.NoError(t, err)
		assert.Len(t, entries, 1)
	})
}

func TestQuarantine(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.json")
	require.NoError(t, os.WriteFile(path, []byte("{oops"), 0o644))

	dest, err := Quarantine(path)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(dest, path+".corrupt-"))

	_, err = os.Stat(path)
	assert.True(t, os.IsNotExist(err))
	data, err := os.ReadFile(dest)
	require.NoError(t, err)
	assert.Equal(t, "{oops", string(data))
}
