package environment

import (
	"fmt"
	"io"

	"github.com/k1LoW/errors"
	"github.com/qawatake/rwd/internal/recipe"
	"github.com/qawatake/rwd/internal/verbose"
	"gopkg.in/yaml.v3"
)

const (
	RecipeType = "specs.openrewrite.org/v1beta/recipe"
	StyleType  = "specs.openrewrite.org/v1beta/style"
)

// Catalog は1つのソースから読み込んだレシピとスタイルです
type Catalog struct {
	Source  string
	Recipes []recipe.Descriptor
	Styles  []recipe.NamedStyles
}

type document struct {
	Type         string                    `yaml:"type"`
	Name         string                    `yaml:"name"`
	DisplayName  string                    `yaml:"displayName"`
	Description  string                    `yaml:"description"`
	Options      []recipe.OptionDescriptor `yaml:"options"`
	RecipeList   []yaml.Node               `yaml:"recipeList"`
	StyleConfigs []yaml.Node               `yaml:"styleConfigs"`
}

// Parse はマルチドキュメントのYAMLからカタログを読み込みます
func Parse(source string, r io.Reader) (Catalog, error) {
	cat := Catalog{Source: source}
	dec := yaml.NewDecoder(r)
	for i := 0; ; i++ {
		var doc document
		err := dec.Decode(&doc)
		if err == io.EOF {
			break
		}
		if err != nil {
			return Catalog{}, errors.WithStack(fmt.Errorf("%s: ドキュメント %d のパースに失敗しました: %w", source, i, err))
		}

		switch doc.Type {
		case RecipeType:
			if doc.Name == "" {
				return Catalog{}, errors.New(fmt.Sprintf("%s: ドキュメント %d のレシピにnameがありません", source, i))
			}
			cat.Recipes = append(cat.Recipes, recipe.Descriptor{
				Name:        doc.Name,
				DisplayName: doc.DisplayName,
				Description: doc.Description,
				Options:     doc.Options,
				RecipeList:  entryNames(doc.RecipeList),
			})
		case StyleType:
			if doc.Name == "" {
				return Catalog{}, errors.New(fmt.Sprintf("%s: ドキュメント %d のスタイルにnameがありません", source, i))
			}
			cat.Styles = append(cat.Styles, recipe.NamedStyles{
				Name:         doc.Name,
				DisplayName:  doc.DisplayName,
				Description:  doc.Description,
				StyleConfigs: entryNames(doc.StyleConfigs),
			})
		case "":
			// 空のドキュメント
		default:
			verbose.Printf("%s: 未対応のtype %q をスキップします (ドキュメント %d)\n", source, doc.Type, i)
		}
	}
	return cat, nil
}

// entryNames は `- name` と `- name: {...}` の両方の形式から名前を取り出します
func entryNames(nodes []yaml.Node) []string {
	var names []string
	for _, n := range nodes {
		switch n.Kind {
		case yaml.ScalarNode:
			names = append(names, n.Value)
		case yaml.MappingNode:
			if len(n.Content) >= 2 {
				names = append(names, n.Content[0].Value)
			}
		}
	}
	return names
}
