package assets_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/assetkit/core/assets"
)

func TestDefaultConfig(t *testing.T) {
	t.Parallel()

	cfg := assets.DefaultConfig()
	assert.Empty(t, cfg.WebRoot)
	assert.Equal(t, assets.DefaultMaxToggles, cfg.MaxToggles)
}

func TestNewFromConfig(t *testing.T) {
	t.Parallel()

	t.Run("empty_web_root_disables_filesystem", func(t *testing.T) {
		t.Parallel()

		resolver, err := assets.NewFromConfig(assets.DefaultConfig(), testManifest())
		require.NoError(t, err)

		resolved, err := resolver.Resolve("/style.css")
		require.NoError(t, err)
		assert.Nil(t, resolved)
	})

	t.Run("web_root_from_config", func(t *testing.T) {
		t.Parallel()

		tmpDir := t.TempDir()
		require.NoError(t, os.WriteFile(filepath.Join(tmpDir, "style.css"), []byte("body{}"), 0644))

		cfg := assets.DefaultConfig()
		cfg.WebRoot = tmpDir

		resolver, err := assets.NewFromConfig(cfg, testManifest())
		require.NoError(t, err)

		resolved, err := resolver.Resolve("/style.css")
		require.NoError(t, err)
		require.NotNil(t, resolved)
		assert.False(t, resolved.ImmutableCache)
	})

	t.Run("invalid_web_root", func(t *testing.T) {
		t.Parallel()

		cfg := assets.DefaultConfig()
		cfg.WebRoot = filepath.Join(t.TempDir(), "missing")

		_, err := assets.NewFromConfig(cfg, testManifest())
		assert.ErrorIs(t, err, assets.ErrWebRootNotDir)
	})

	t.Run("options_override_config", func(t *testing.T) {
		t.Parallel()

		tmpDir := t.TempDir()
		require.NoError(t, os.WriteFile(filepath.Join(tmpDir, "a_b_c.js"), []byte("snake"), 0644))

		cfg := assets.DefaultConfig()
		cfg.WebRoot = tmpDir

		resolver, err := assets.NewFromConfig(cfg, nil, assets.WithMaxToggles(1))
		require.NoError(t, err)

		// Two toggles exceed the overridden cap, so the kebab spelling
		// cannot reach the underscore file.
		resolved, err := resolver.Resolve("/a-b-c.js")
		require.NoError(t, err)
		assert.Nil(t, resolved)
	})
}
