package env

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), ".env")
	require.NoError(t, os.WriteFile(path, []byte(`
# comment
SCENE_TEST_A=plain
export SCENE_TEST_B="quoted value"
SCENE_TEST_C='single'
SCENE_TEST_KEEP=from-file
=novalue
not a pair
`), 0644))
	t.Setenv("SCENE_TEST_KEEP", "from-env")
	for _, k := range []string{"SCENE_TEST_A", "SCENE_TEST_B", "SCENE_TEST_C"} {
		t.Setenv(k, "")
		require.NoError(t, os.Unsetenv(k))
	}

	keys, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, []string{"SCENE_TEST_A", "SCENE_TEST_B", "SCENE_TEST_C"}, keys)
	assert.Equal(t, "plain", os.Getenv("SCENE_TEST_A"))
	assert.Equal(t, "quoted value", os.Getenv("SCENE_TEST_B"))
	assert.Equal(t, "single", os.Getenv("SCENE_TEST_C"))
	assert.Equal(t, "from-env", os.Getenv("SCENE_TEST_KEEP"))
}

func TestLoadMissingFile(t *testing.T) {
	keys, err := Load(filepath.Join(t.TempDir(), "nope"))
	assert.NoError(t, err)
	assert.Nil(t, keys)
}

func TestGet(t *testing.T) {
	t.Setenv(ConfigPath, "")
	assert.Equal(t, "config/scene.yaml", Get(ConfigPath, "config/scene.yaml"))
	t.Setenv(ConfigPath, "other.yaml")
	assert.Equal(t, "other.yaml", Get(ConfigPath, "config/scene.yaml"))
}
