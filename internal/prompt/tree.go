package prompt

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/qawatake/rwd/internal/recipe"
	"github.com/qawatake/rwd/internal/ui"
)

// ErrNoRecipes は選択できるレシピが1件もないことを表します
var ErrNoRecipes = errors.New("選択できるレシピがありません")

// ChooserFunc は選択肢を提示し、選ばれたインデックスを返します。
// キャンセルされた場合は ui.ErrCancelled を返します。
type ChooserFunc func(ctx context.Context, title string, options []ui.Option) (int, error)

// TreePrompter はレシピ名のパッケージ階層をたどって1件のレシピを選ばせます
type TreePrompter struct {
	choose ChooserFunc
}

func NewTreePrompter(choose ChooserFunc) *TreePrompter {
	return &TreePrompter{choose: choose}
}

type node struct {
	label    string
	path     string
	parent   *node
	packages []*node
	recipes  []recipe.Descriptor
	index    map[string]*node
}

type action struct {
	up     bool
	pkg    *node
	recipe *recipe.Descriptor
}

// Execute はユーザーがレシピを選ぶまでブロックします。
// キャンセルされた場合は ok が false になり、エラーは返しません。
func (p *TreePrompter) Execute(ctx context.Context, recipes []recipe.Descriptor) (_ recipe.Descriptor, ok bool, _ error) {
	if len(recipes) == 0 {
		return recipe.Descriptor{}, false, ErrNoRecipes
	}

	cur := buildTree(recipes)
	// 最上位がパッケージ1つだけの場合はそこから始める
	if len(cur.recipes) == 0 && len(cur.packages) == 1 {
		cur = cur.packages[0]
		cur.parent = nil
	}

	for {
		if err := ctx.Err(); err != nil {
			return recipe.Descriptor{}, false, err
		}

		options, actions := cur.choices()
		idx, err := p.choose(ctx, cur.title(), options)
		if errors.Is(err, ui.ErrCancelled) {
			return recipe.Descriptor{}, false, nil
		}
		if err != nil {
			return recipe.Descriptor{}, false, err
		}
		if idx < 0 || idx >= len(actions) {
			return recipe.Descriptor{}, false, fmt.Errorf("選択肢の範囲外です: %d", idx)
		}

		switch a := actions[idx]; {
		case a.up:
			cur = cur.parent
		case a.pkg != nil:
			cur = a.pkg
		default:
			return *a.recipe, true, nil
		}
	}
}

func (n *node) title() string {
	if n.path == "" {
		return "Select a recipe"
	}
	return "Select a recipe in " + n.path
}

func (n *node) choices() ([]ui.Option, []action) {
	var options []ui.Option
	var actions []action

	if n.parent != nil {
		options = append(options, ui.Option{Title: "..", Description: "back"})
		actions = append(actions, action{up: true})
	}
	for _, child := range n.packages {
		options = append(options, ui.Option{
			Title:       child.label + ".*",
			Description: fmt.Sprintf("%d recipes", child.count()),
		})
		actions = append(actions, action{pkg: child})
	}
	for i := range n.recipes {
		r := &n.recipes[i]
		options = append(options, ui.Option{Title: r.SimpleName(), Description: r.DisplayName})
		actions = append(actions, action{recipe: r})
	}
	return options, actions
}

func (n *node) count() int {
	c := len(n.recipes)
	for _, child := range n.packages {
		c += child.count()
	}
	return c
}

func buildTree(recipes []recipe.Descriptor) *node {
	root := &node{index: make(map[string]*node)}
	for _, r := range recipes {
		cur := root
		if pkg := r.Package(); pkg != "" {
			for _, seg := range strings.Split(pkg, ".") {
				if seg == "" {
					continue
				}
				child, ok := cur.index[seg]
				if !ok {
					path := seg
					if cur.path != "" {
						path = cur.path + "." + seg
					}
					child = &node{label: seg, path: path, parent: cur, index: make(map[string]*node)}
					cur.index[seg] = child
					cur.packages = append(cur.packages, child)
				}
				cur = child
			}
		}
		cur.recipes = append(cur.recipes, r)
	}
	root.normalize()
	return root
}

// normalize は子を名前順に並べ、レシピを持たない一本道のパッケージをまとめます
func (n *node) normalize() {
	for i, child := range n.packages {
		for len(child.recipes) == 0 && len(child.packages) == 1 {
			grandchild := child.packages[0]
			grandchild.label = child.label + "." + grandchild.label
			grandchild.parent = n
			child = grandchild
		}
		n.packages[i] = child
		child.normalize()
	}
	sort.Slice(n.packages, func(i, j int) bool {
		return n.packages[i].label < n.packages[j].label
	})
	sort.SliceStable(n.recipes, func(i, j int) bool {
		return n.recipes[i].Name < n.recipes[j].Name
	})
	n.index = nil
}
