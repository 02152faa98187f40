package recipe

import "strings"

// Descriptor はレシピのメタデータのスナップショットです
type Descriptor struct {
	Name        string             `yaml:"name"`
	DisplayName string             `yaml:"displayName"`
	Description string             `yaml:"description"`
	Options     []OptionDescriptor `yaml:"options"`
	RecipeList  []string           `yaml:"-"`
}

// OptionDescriptor はレシピが受け付けるオプションです
type OptionDescriptor struct {
	Name        string  `yaml:"name"`
	Type        string  `yaml:"type"`
	Required    bool    `yaml:"required"`
	DisplayName string  `yaml:"displayName"`
	Description string  `yaml:"description"`
	Example     *string `yaml:"example"`
}

// NamedStyles はスタイル設定の束です
type NamedStyles struct {
	Name         string
	DisplayName  string
	Description  string
	StyleConfigs []string
}

// Package はドット区切りの名前から最後の要素を除いた部分を返します
func (d Descriptor) Package() string {
	i := strings.LastIndex(d.Name, ".")
	if i < 0 {
		return ""
	}
	return d.Name[:i]
}

// SimpleName はドット区切りの名前の最後の要素を返します。
// 最後の要素が空の場合は名前全体を返します。
func (d Descriptor) SimpleName() string {
	if s := d.Name[strings.LastIndex(d.Name, ".")+1:]; s != "" {
		return s
	}
	return d.Name
}

// HasExample reports whether an example value was declared.
func (o OptionDescriptor) HasExample() bool {
	return o.Example != nil
}

// Names returns the descriptor names in order.
func Names(ds []Descriptor) []string {
	names := make([]string, len(ds))
	for i, d := range ds {
		names[i] = d.Name
	}
	return names
}
