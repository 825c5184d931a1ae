package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultIsValid(t *testing.T) {
	require.NoError(t, Default().Validate())
}

func TestValidateRejectsBlankFields(t *testing.T) {
	s := Default()
	s.WildcardToken = ""
	assert.ErrorIs(t, s.Validate(), ErrInvalidSettings)

	s = Default()
	s.MaxDriverNames = 0
	assert.ErrorIs(t, s.Validate(), ErrInvalidSettings)

	s = Default()
	s.SliceCacheSize = -1
	assert.ErrorIs(t, s.Validate(), ErrInvalidSettings)
}

func TestLoadOverridesDefaults(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "dtengine.yaml")
	require.NoError(t, os.WriteFile(path, []byte("slice_cache_size: 64\n"), 0o600))

	s, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 64, s.SliceCacheSize)
	assert.Equal(t, Default().WildcardToken, s.WildcardToken)
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.ErrorIs(t, err, ErrLoadFailed)
}
