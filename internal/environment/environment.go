package environment

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/qawatake/rwd/internal/derrors"
	"github.com/qawatake/rwd/internal/recipe"
	"github.com/qawatake/rwd/internal/verbose"
	"github.com/sourcegraph/conc/pool"
)

const maxConcurrentLoads = 4

// Provider はカタログYAMLを返すプラグインです
type Provider interface {
	Source() string
	Catalog(ctx context.Context) ([]byte, error)
}

// Options は環境の読み込み元を指定します
type Options struct {
	// ConfigFile はプロジェクトのrewrite.ymlです。存在しなくても構いません。
	ConfigFile string
	// Catalogs はカタログファイルまたはディレクトリのパスです
	Catalogs  []string
	Providers []Provider
}

// Environment は利用可能なレシピとスタイルの読み取り専用レジストリです
type Environment struct {
	recipes []recipe.Descriptor
	styles  []recipe.NamedStyles
}

// New は与えられたレシピとスタイルから環境を作成します
func New(recipes []recipe.Descriptor, styles []recipe.NamedStyles) *Environment {
	return &Environment{recipes: recipes, styles: styles}
}

// ListRecipeDescriptors は読み込み順にレシピを返します
func (e *Environment) ListRecipeDescriptors() []recipe.Descriptor {
	return slices.Clone(e.recipes)
}

// ListStyles は読み込み順にスタイルを返します
func (e *Environment) ListStyles() []recipe.NamedStyles {
	return slices.Clone(e.styles)
}

type source struct {
	name string
	read func(ctx context.Context) ([]byte, error)
}

type loaded struct {
	index   int
	catalog Catalog
}

// Load は全てのソースを並行に読み込み、ソース順に結合した環境を返します
func Load(ctx context.Context, opts Options) (_ *Environment, err error) {
	defer derrors.Wrap(&err)

	sources, err := collectSources(opts)
	if err != nil {
		return nil, err
	}
	verbose.Printf("%d 件のカタログソースを読み込みます\n", len(sources))

	p := pool.NewWithResults[loaded]().WithContext(ctx).WithMaxGoroutines(maxConcurrentLoads)
	for i, src := range sources {
		p.Go(func(ctx context.Context) (loaded, error) {
			data, err := src.read(ctx)
			if err != nil {
				return loaded{}, fmt.Errorf("%s の読み込みに失敗しました: %w", src.name, err)
			}
			cat, err := Parse(src.name, bytes.NewReader(data))
			if err != nil {
				return loaded{}, err
			}
			verbose.Printf("%s: %d 件のレシピ, %d 件のスタイル\n", src.name, len(cat.Recipes), len(cat.Styles))
			return loaded{index: i, catalog: cat}, nil
		})
	}
	results, err := p.Wait()
	if err != nil {
		return nil, err
	}
	slices.SortFunc(results, func(a, b loaded) int { return a.index - b.index })

	catalogs := make([]Catalog, len(results))
	for i, r := range results {
		catalogs[i] = r.catalog
	}
	return merge(catalogs), nil
}

// merge はカタログを順に結合します。同名の定義は最初のものを採用します。
func merge(catalogs []Catalog) *Environment {
	env := &Environment{}
	seenRecipes := make(map[string]string)
	seenStyles := make(map[string]string)
	for _, cat := range catalogs {
		for _, r := range cat.Recipes {
			if first, ok := seenRecipes[r.Name]; ok {
				verbose.Warnf("レシピ %s は %s で定義済みのため %s の定義をスキップします", r.Name, first, cat.Source)
				continue
			}
			seenRecipes[r.Name] = cat.Source
			env.recipes = append(env.recipes, r)
		}
		for _, s := range cat.Styles {
			if first, ok := seenStyles[s.Name]; ok {
				verbose.Warnf("スタイル %s は %s で定義済みのため %s の定義をスキップします", s.Name, first, cat.Source)
				continue
			}
			seenStyles[s.Name] = cat.Source
			env.styles = append(env.styles, s)
		}
	}
	return env
}

func collectSources(opts Options) ([]source, error) {
	var sources []source

	if opts.ConfigFile != "" {
		if _, err := os.Stat(opts.ConfigFile); err == nil {
			sources = append(sources, fileSource(opts.ConfigFile))
		} else if os.IsNotExist(err) {
			verbose.Printf("設定ファイル %s が見つからないためスキップします\n", opts.ConfigFile)
		} else {
			return nil, err
		}
	}

	for _, path := range opts.Catalogs {
		info, err := os.Stat(path)
		if err != nil {
			return nil, fmt.Errorf("カタログ %s を開けません: %w", path, err)
		}
		if !info.IsDir() {
			sources = append(sources, fileSource(path))
			continue
		}
		entries, err := os.ReadDir(path)
		if err != nil {
			return nil, err
		}
		for _, entry := range entries {
			if entry.IsDir() || !isYAML(entry.Name()) {
				continue
			}
			sources = append(sources, fileSource(filepath.Join(path, entry.Name())))
		}
	}

	for _, p := range opts.Providers {
		sources = append(sources, source{name: p.Source(), read: p.Catalog})
	}

	return sources, nil
}

func fileSource(path string) source {
	return source{
		name: path,
		read: func(context.Context) ([]byte, error) {
			return os.ReadFile(path)
		},
	}
}

func isYAML(name string) bool {
	ext := strings.ToLower(filepath.Ext(name))
	return ext == ".yml" || ext == ".yaml"
}
