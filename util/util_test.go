package util

import (
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type sample struct {
	Name  string `yaml:"name"`
	Width int    `yaml:"width"`
}

func TestSampleThenLoad(t *testing.T) {

	path := filepath.Join(t.TempDir(), "cfg.yaml")

	err := SampleConfig([]byte("name: zupos\n"), path, 0644)
	require.NoError(t, err)

	err = SampleConfig([]byte("name: other\n"), path, 0644)
	require.NoError(t, err)

	cfg := sample{Width: 52}
	err = LoadConfig(&cfg, path)
	require.NoError(t, err)
	assert.Equal(t, sample{Name: "zupos", Width: 52}, cfg)
}

func TestWriteConfig(t *testing.T) {

	path := filepath.Join(t.TempDir(), "out.yaml")

	err := WriteConfig(sample{Name: "zupos", Width: 3}, path, 0644)
	require.NoError(t, err)

	var cfg sample
	err = LoadConfig(&cfg, path)
	require.NoError(t, err)
	assert.Equal(t, sample{Name: "zupos", Width: 3}, cfg)
}

func TestLoadConfigMissing(t *testing.T) {

	err := LoadConfig(&sample{}, filepath.Join(t.TempDir(), "nope.yaml"))
	assert.ErrorContains(t, err, "failed to read from")
}

func TestOpenLog(t *testing.T) {

	path := filepath.Join(t.TempDir(), "zupos.log")

	file := OpenLog(path, 0644)
	_, err := file.Write([]byte("hello\n"))
	require.NoError(t, err)
	CloseLog(file)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "hello\n", string(data))

	file = OpenLog(filepath.Join(path, "not-a-dir", "x.log"), 0644)
	assert.Equal(t, io.Discard, file)
}
