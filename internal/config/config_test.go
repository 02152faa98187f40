package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/go-git/go-git/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig(t *testing.T) {
	tests := []struct {
		name    string
		content string
		check   func(t *testing.T, root string, cfg *Config)
	}{
		{
			name: "設定ファイルなしの場合はデフォルト値",
			check: func(t *testing.T, root string, cfg *Config) {
				assert.Equal(t, filepath.Join(root, DefaultConfigFile), cfg.ConfigFile)
				assert.Empty(t, cfg.ActiveRecipes)
				assert.Empty(t, cfg.ActiveStyles)
				assert.Empty(t, cfg.Catalogs)
				assert.True(t, cfg.Plugins)
				assert.False(t, cfg.UI.Accessible)
				assert.Equal(t, FinderTree, cfg.UI.Finder)
				assert.Equal(t, root, cfg.ProjectRoot)
			},
		},
		{
			name: "設定ファイルの値が読み込まれる",
			content: `configFile: config/rewrite.yml
activeRecipes:
  - org.openrewrite.java.format.AutoFormat
activeStyles:
  - com.yourorg.Style
catalogs:
  - catalogs
  - /opt/rwd/catalog.yml
plugins: false
ui:
  accessible: true
  finder: fuzzy
`,
			check: func(t *testing.T, root string, cfg *Config) {
				assert.Equal(t, filepath.Join(root, "config", "rewrite.yml"), cfg.ConfigFile)
				assert.Equal(t, []string{"org.openrewrite.java.format.AutoFormat"}, cfg.ActiveRecipes)
				assert.Equal(t, []string{"com.yourorg.Style"}, cfg.ActiveStyles)
				assert.Equal(t, []string{filepath.Join(root, "catalogs"), "/opt/rwd/catalog.yml"}, cfg.Catalogs)
				assert.False(t, cfg.Plugins)
				assert.True(t, cfg.UI.Accessible)
				assert.Equal(t, FinderFuzzy, cfg.UI.Finder)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			root := t.TempDir()
			if tt.content != "" {
				require.NoError(t, os.WriteFile(filepath.Join(root, FileName), []byte(tt.content), 0644))
			}

			cfg, err := LoadConfig("", root)
			require.NoError(t, err)
			tt.check(t, root, cfg)
		})
	}
}

func TestLoadConfigExplicitPath(t *testing.T) {
	root := t.TempDir()
	path := filepath.Join(t.TempDir(), "custom.yml")
	require.NoError(t, os.WriteFile(path, []byte("activeRecipes: [a.B]\n"), 0644))

	cfg, err := LoadConfig(path, root)
	require.NoError(t, err)
	assert.Equal(t, []string{"a.B"}, cfg.ActiveRecipes)

	_, err = LoadConfig(filepath.Join(root, "missing.yml"), root)
	assert.Error(t, err)
}

func TestLoadConfigInvalidFinder(t *testing.T) {
	root := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(root, FileName), []byte("ui:\n  finder: grid\n"), 0644))

	_, err := LoadConfig("", root)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "grid")
}

func TestProjectRoot(t *testing.T) {
	t.Run("gitリポジトリ内ではワークツリーのルート", func(t *testing.T) {
		root := t.TempDir()
		_, err := git.PlainInit(root, false)
		require.NoError(t, err)
		sub := filepath.Join(root, "a", "b")
		require.NoError(t, os.MkdirAll(sub, 0755))

		got, err := ProjectRoot(sub)
		require.NoError(t, err)
		assert.Equal(t, root, got)
	})

	t.Run("gitリポジトリ外では作業ディレクトリ", func(t *testing.T) {
		dir := t.TempDir()
		got, err := ProjectRoot(dir)
		require.NoError(t, err)
		assert.Equal(t, dir, got)
	})
}
