package storage

import (
	"strings"
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testData struct {
	Zeta  string    `json:"zeta"`
	Alpha int       `json:"alpha"`
	Box   []float64 `json:"box"`
	Link  string    `json:"link"`
}

func TestStorage_PutAndGet(t *testing.T) {
	s := New(afero.NewMemMapFs())

	data := testData{Zeta: "z", Alpha: 42, Box: []float64{1.5, 2}, Link: "a&b"}

	result, err := s.Put("/cfg/item.txt", data)
	require.NoError(t, err)
	assert.False(t, result.Existed)
	assert.Nil(t, result.Previous)
	assert.True(t, s.Exists("/cfg/item.txt"))

	var retrieved testData
	require.NoError(t, s.Get("/cfg/item.txt", &retrieved))
	assert.Equal(t, data, retrieved)
}

func TestStorage_GetNotFound(t *testing.T) {
	s := New(afero.NewMemMapFs())

	var data testData
	err := s.Get("/nonexistent.txt", &data)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestStorage_GetToleratesComments(t *testing.T) {
	fs := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(fs, "/c.txt", []byte(`{
  // edited by hand
  "alpha": 7,
  "zeta": "x",
}`), 0644))

	var data testData
	require.NoError(t, New(fs).Get("/c.txt", &data))
	assert.Equal(t, 7, data.Alpha)
	assert.Equal(t, "x", data.Zeta)
}

func TestStorage_GetMalformed(t *testing.T) {
	fs := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(fs, "/bad.txt", []byte(`{"alpha": `), 0644))

	var data testData
	err := New(fs).Get("/bad.txt", &data)
	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrNotFound)
}

func TestStorage_PutOverwrite(t *testing.T) {
	s := New(afero.NewMemMapFs())

	first, err := s.Put("/cfg/item.txt", testData{Alpha: 1})
	require.NoError(t, err)

	second, err := s.Put("/cfg/item.txt", testData{Alpha: 2})
	require.NoError(t, err)
	assert.True(t, second.Existed)
	assert.Equal(t, first.Data, second.Previous)

	exists, err := afero.Exists(s.Fs(), "/cfg/item.txt.tmp")
	require.NoError(t, err)
	assert.False(t, exists, "temp file should be renamed away")
}

func TestEncode_SortedAndIndented(t *testing.T) {
	data, err := Encode(testData{Zeta: "z", Alpha: 1, Box: []float64{1, 2.5}, Link: "<a&b>"})
	require.NoError(t, err)

	want := `{
  "alpha": 1,
  "box": [
    1,
    2.5
  ],
  "link": "<a&b>",
  "zeta": "z"
}
`
	assert.Equal(t, want, string(data))
}

func TestEncode_Deterministic(t *testing.T) {
	v := map[string]any{"b": map[string]any{"y": 1, "x": true}, "a": "s"}

	first, err := Encode(v)
	require.NoError(t, err)
	for i := 0; i < 10; i++ {
		again, err := Encode(v)
		require.NoError(t, err)
		assert.Equal(t, first, again)
	}
}

func TestStorage_List(t *testing.T) {
	s := New(afero.NewMemMapFs())

	for _, name := range []string{"prefix_b.txt", "prefix_a.txt", "other.txt", "prefix_c.json"} {
		_, err := s.Put("/cfg/"+name, testData{})
		require.NoError(t, err)
	}

	items, err := s.List("/cfg", "prefix_*.txt")
	require.NoError(t, err)
	assert.Equal(t, []string{"/cfg/prefix_a.txt", "/cfg/prefix_b.txt"}, items)
}

func TestStorage_ListMissingDir(t *testing.T) {
	s := New(afero.NewMemMapFs())

	items, err := s.List("/nowhere", "*.txt")
	require.NoError(t, err)
	assert.Empty(t, items)
}

func TestDiff(t *testing.T) {
	before := []byte("{\n  \"study\": \"a\",\n  \"x\": 1\n}\n")
	after := []byte("{\n  \"study\": \"b\",\n  \"x\": 1\n}\n")

	patch, added, deleted := Diff("settings.txt", before, after)
	assert.True(t, strings.HasPrefix(patch, "--- settings.txt\n+++ settings.txt\n"))
	assert.Equal(t, 1, added)
	assert.Equal(t, 1, deleted)

	patch, added, deleted = Diff("settings.txt", before, before)
	assert.Empty(t, patch)
	assert.Zero(t, added)
	assert.Zero(t, deleted)
}
