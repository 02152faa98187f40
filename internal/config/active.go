package config

import (
	"slices"
	"strings"
)

// ActiveResolver はビルドで有効なレシピとスタイルの名前を解決します。
// 上書き指定(--active-recipe など)が空でなければ設定ファイルの値を置き換えます。
type ActiveResolver struct {
	config         *Config
	recipeOverride []string
	styleOverride  []string
}

func NewActiveResolver(cfg *Config, recipeOverride, styleOverride []string) *ActiveResolver {
	return &ActiveResolver{
		config:         cfg,
		recipeOverride: recipeOverride,
		styleOverride:  styleOverride,
	}
}

// ActiveRecipes は有効なレシピ名を辞書順・重複なしで返します
func (r *ActiveResolver) ActiveRecipes() []string {
	return resolveNames(r.config.ActiveRecipes, r.recipeOverride)
}

// ActiveStyles は有効なスタイル名を辞書順・重複なしで返します
func (r *ActiveResolver) ActiveStyles() []string {
	return resolveNames(r.config.ActiveStyles, r.styleOverride)
}

func resolveNames(configured, override []string) []string {
	if names := normalizeNames(override); len(names) > 0 {
		return names
	}
	return normalizeNames(configured)
}

func normalizeNames(names []string) []string {
	out := make([]string, 0, len(names))
	for _, n := range names {
		for _, part := range strings.Split(n, ",") {
			if part = strings.TrimSpace(part); part != "" {
				out = append(out, part)
			}
		}
	}
	slices.Sort(out)
	return slices.Compact(out)
}
