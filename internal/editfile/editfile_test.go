package editfile

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/uuid"
	"github.com/redpen/redpen/internal/edit"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse_JSON(t *testing.T) {
	data := []byte(`[
  {"id": "e1", "start": 4, "end": 9, "replacement": "slow", "note": "tone", "author": "rk"},
  {"start": 0, "end": 0, "replacement": "A "}
]`)

	edits, err := Parse(data, FormatJSON)
	require.NoError(t, err)
	require.Len(t, edits, 2)

	assert.Equal(t, edit.Edit{ID: "e1", Span: edit.Span{Start: 4, End: 9}, Replacement: "slow", Note: "tone", Author: "rk"}, edits[0])

	assert.Equal(t, edit.Span{Start: 0, End: 0}, edits[1].Span)
	assert.Equal(t, "A ", edits[1].Replacement)
	_, err = uuid.Parse(edits[1].ID)
	assert.NoError(t, err, "missing ids are filled with a uuid")
}

func TestParse_YAML(t *testing.T) {
	data := []byte(`
- id: e1
  start: 4
  end: 9
  replacement: slow
- id: e2
  start: 10
  end: 15
  replacement: ""
  note: |
    cut this
`)

	edits, err := Parse(data, FormatYAML)
	require.NoError(t, err)
	require.Len(t, edits, 2)
	assert.Equal(t, "e1", edits[0].ID)
	assert.Equal(t, edit.Span{Start: 10, End: 15}, edits[1].Span)
	assert.Equal(t, "", edits[1].Replacement)
	assert.Equal(t, "cut this\n", edits[1].Note)
}

func TestParse_Empty(t *testing.T) {
	for _, format := range []Format{FormatJSON, FormatYAML} {
		t.Run(string(format), func(t *testing.T) {
			edits, err := Parse([]byte("  \n"), format)
			require.NoError(t, err)
			assert.Empty(t, edits)
		})
	}
}

func TestParse_Errors(t *testing.T) {
	t.Run("joins per-record problems", func(t *testing.T) {
		data := []byte(`[
  {"id": "ok", "start": 0, "end": 1, "replacement": "x"},
  {"id": "bad", "start": 5, "end": 2, "replacement": "x"},
  {"id": "half", "start": 1, "replacement": "x"},
  {"id": "ok", "start": 2, "end": 3, "replacement": "y"}
]`)
		edits, err := Parse(data, FormatJSON)
		require.Error(t, err)
		assert.Nil(t, edits)
		assert.ErrorIs(t, err, edit.ErrRangeInvalid)
		assert.Contains(t, err.Error(), "record 1")
		assert.Contains(t, err.Error(), "record 2: missing end")
		assert.Contains(t, err.Error(), `record 3: duplicate id "ok" (first used by record 0)`)
	})

	t.Run("unknown json field", func(t *testing.T) {
		_, err := Parse([]byte(`[{"start": 0, "end": 1, "replace": "x"}]`), FormatJSON)
		assert.Error(t, err)
	})

	t.Run("unknown yaml field", func(t *testing.T) {
		_, err := Parse([]byte("- start: 0\n  end: 1\n  replace: x\n"), FormatYAML)
		assert.Error(t, err)
	})

	t.Run("malformed", func(t *testing.T) {
		_, err := Parse([]byte(`{"start": 0}`), FormatJSON)
		assert.Error(t, err)
	})

	t.Run("unknown format", func(t *testing.T) {
		_, err := Parse([]byte(`[]`), Format("toml"))
		assert.ErrorIs(t, err, ErrUnknownFormat)
	})
}

func TestFormatOf(t *testing.T) {
	tests := []struct {
		path    string
		want    Format
		wantErr bool
	}{
		{path: "edits.json", want: FormatJSON},
		{path: "edits.YAML", want: FormatYAML},
		{path: "dir/edits.yml", want: FormatYAML},
		{path: "edits.txt", wantErr: true},
		{path: "edits", wantErr: true},
	}
	for _, tc := range tests {
		t.Run(tc.path, func(t *testing.T) {
			got, err := FormatOf(tc.path)
			if tc.wantErr {
				assert.ErrorIs(t, err, ErrUnknownFormat)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestWriteThenLoad(t *testing.T) {
	edits := []edit.Edit{
		{ID: "e1", Span: edit.Span{Start: 4, End: 9}, Replacement: "slow", Note: "tone"},
		{ID: "e2", Span: edit.Span{Start: 0, End: 0}, Replacement: "So, ", Author: "rk"},
	}
	dir := t.TempDir()

	for _, name := range []string{"edits.json", "edits.yaml"} {
		t.Run(name, func(t *testing.T) {
			format, err := FormatOf(name)
			require.NoError(t, err)

			var buf bytes.Buffer
			require.NoError(t, Write(&buf, edits, format))

			path := filepath.Join(dir, name)
			require.NoError(t, os.WriteFile(path, buf.Bytes(), 0o644))

			got, err := Load(path)
			require.NoError(t, err)
			assert.Equal(t, edits, got)
		})
	}
}

func TestWrite_JSONShape(t *testing.T) {
	var buf bytes.Buffer
	err := Write(&buf, []edit.Edit{{ID: "e1", Span: edit.Span{Start: 1, End: 2}, Replacement: "x"}}, FormatJSON)
	require.NoError(t, err)
	assert.JSONEq(t, `[{"id":"e1","start":1,"end":2,"replacement":"x"}]`, buf.String())
}

func TestLoad_Missing(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.json"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}
