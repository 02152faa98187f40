package prompt

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/qawatake/rwd/internal/recipe"
	"github.com/qawatake/rwd/internal/ui"
)

// FindFunc は ui.Find と同じシグネチャのあいまい検索です
type FindFunc func(ctx context.Context, header string, titles []string, preview func(i, width, height int) string) (int, error)

// FuzzyPrompter は全レシピをあいまい検索し、プレビューにレシピの詳細を表示します
type FuzzyPrompter struct {
	find     FindFunc
	markdown *ui.MarkdownRenderer
}

func NewFuzzyPrompter(find FindFunc, markdown *ui.MarkdownRenderer) *FuzzyPrompter {
	return &FuzzyPrompter{find: find, markdown: markdown}
}

func (p *FuzzyPrompter) Execute(ctx context.Context, recipes []recipe.Descriptor) (recipe.Descriptor, bool, error) {
	if len(recipes) == 0 {
		return recipe.Descriptor{}, false, ErrNoRecipes
	}

	idx, err := p.find(ctx, "Select a recipe", recipe.Names(recipes), func(i, width, height int) string {
		return p.preview(recipes[i], width)
	})
	if errors.Is(err, ui.ErrCancelled) {
		return recipe.Descriptor{}, false, nil
	}
	if err != nil {
		return recipe.Descriptor{}, false, err
	}
	return recipes[idx], true, nil
}

func (p *FuzzyPrompter) preview(d recipe.Descriptor, width int) string {
	md := Markdown(d)
	if p.markdown == nil || width <= 4 {
		return md
	}
	out, err := p.markdown.Render(md, width-4)
	if err != nil {
		return md
	}
	return out
}

// Markdown はレシピの説明をMarkdownにします
func Markdown(d recipe.Descriptor) string {
	var b strings.Builder

	title := d.DisplayName
	if title == "" {
		title = d.SimpleName()
	}
	fmt.Fprintf(&b, "# %s\n\n`%s`\n\n", title, d.Name)
	if d.Description != "" {
		fmt.Fprintf(&b, "%s\n\n", d.Description)
	}

	if len(d.Options) > 0 {
		b.WriteString("## Options\n\n")
		for _, o := range d.Options {
			required := "optional"
			if o.Required {
				required = "required"
			}
			fmt.Fprintf(&b, "- **%s** (`%s`, %s)", o.Name, o.Type, required)
			if o.DisplayName != "" {
				fmt.Fprintf(&b, ": %s", o.DisplayName)
			}
			if o.Description != "" {
				fmt.Fprintf(&b, ". %s", o.Description)
			}
			if o.HasExample() {
				fmt.Fprintf(&b, " Example: `%s`", *o.Example)
			}
			b.WriteString("\n")
		}
		b.WriteString("\n")
	}

	if len(d.RecipeList) > 0 {
		b.WriteString("## Recipe list\n\n")
		for _, r := range d.RecipeList {
			fmt.Fprintf(&b, "- `%s`\n", r)
		}
	}

	return b.String()
}
