package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/go-git/go-git/v5"
	"github.com/qawatake/rwd/internal/verbose"
	"github.com/spf13/viper"
)

const (
	// FileName はプロジェクト設定ファイルの名前です
	FileName          = "rwd.yml"
	DefaultConfigFile = "rewrite.yml"

	FinderTree  = "tree"
	FinderFuzzy = "fuzzy"
)

// Config は設定ファイルの構造体です
type Config struct {
	// ConfigFile はレシピとスタイルを宣言するプロジェクトのrewrite.ymlです
	ConfigFile    string   `mapstructure:"configFile"`
	ActiveRecipes []string `mapstructure:"activeRecipes"`
	ActiveStyles  []string `mapstructure:"activeStyles"`
	Catalogs      []string `mapstructure:"catalogs"`
	Plugins       bool     `mapstructure:"plugins"`
	UI            struct {
		Accessible bool   `mapstructure:"accessible"`
		Finder     string `mapstructure:"finder"`
	} `mapstructure:"ui"`

	// ProjectRoot は相対パスの基準となるディレクトリです
	ProjectRoot string `mapstructure:"-"`
}

// LoadConfig は設定ファイルを読み込みます。
// path が空の場合はプロジェクトルートの rwd.yml を探し、無ければデフォルト値を使います。
func LoadConfig(path, workDir string) (*Config, error) {
	root, err := ProjectRoot(workDir)
	if err != nil {
		return nil, fmt.Errorf("プロジェクトルートの検出に失敗しました: %v", err)
	}

	v := viper.New()
	v.SetConfigType("yaml")
	v.SetDefault("configFile", DefaultConfigFile)
	v.SetDefault("activeRecipes", []string{})
	v.SetDefault("activeStyles", []string{})
	v.SetDefault("catalogs", []string{})
	v.SetDefault("plugins", true)
	v.SetDefault("ui.accessible", false)
	v.SetDefault("ui.finder", FinderTree)

	v.SetEnvPrefix("RWD")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path == "" {
		candidate := filepath.Join(root, FileName)
		if _, err := os.Stat(candidate); err == nil {
			path = candidate
		} else {
			verbose.Printf("%s が見つからないためデフォルト設定を使用します\n", candidate)
		}
	}

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("設定ファイルの読み込みに失敗しました: %v", err)
		}
		verbose.Printf("設定ファイルを読み込みました: %s\n", path)
	}

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("設定ファイルのパースに失敗しました: %v", err)
	}

	switch config.UI.Finder {
	case FinderTree, FinderFuzzy:
	default:
		return nil, fmt.Errorf("ui.finder には %q または %q を指定してください: %q", FinderTree, FinderFuzzy, config.UI.Finder)
	}

	config.ProjectRoot = root
	config.ConfigFile = config.resolve(config.ConfigFile)
	for i, c := range config.Catalogs {
		config.Catalogs[i] = config.resolve(c)
	}

	return &config, nil
}

func (c *Config) resolve(path string) string {
	if path == "" || filepath.IsAbs(path) {
		return path
	}
	return filepath.Join(c.ProjectRoot, path)
}

// ProjectRoot は workDir を含むgitワークツリーのルートを返します。
// gitリポジトリの外では workDir 自身を返します。
func ProjectRoot(workDir string) (string, error) {
	abs, err := filepath.Abs(workDir)
	if err != nil {
		return "", err
	}

	repo, err := git.PlainOpenWithOptions(abs, &git.PlainOpenOptions{DetectDotGit: true})
	if err == git.ErrRepositoryNotExists {
		return abs, nil
	}
	if err != nil {
		return "", err
	}

	wt, err := repo.Worktree()
	if err == git.ErrIsBareRepository {
		return abs, nil
	}
	if err != nil {
		return "", err
	}
	return wt.Filesystem.Root(), nil
}
