package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExpandPath(t *testing.T) {
	home, err := os.UserHomeDir()
	require.NoError(t, err)

	t.Run("empty stays empty", func(t *testing.T) {
		assert.Equal(t, "", ExpandPath(""))
	})

	t.Run("bare tilde expands to home", func(t *testing.T) {
		assert.Equal(t, home, ExpandPath("~"))
	})

	t.Run("tilde prefix expands", func(t *testing.T) {
		assert.Equal(t, filepath.Join(home, "data", "penny.db"), ExpandPath("~/data/penny.db"))
	})

	t.Run("environment variables expand", func(t *testing.T) {
		t.Setenv("PENNY_TEST_DIR", "/tmp/penny")
		assert.Equal(t, "/tmp/penny/penny.db", ExpandPath("$PENNY_TEST_DIR/penny.db"))
	})

	t.Run("plain paths pass through", func(t *testing.T) {
		assert.Equal(t, "/var/lib/penny.db", ExpandPath("/var/lib/penny.db"))
	})
}
