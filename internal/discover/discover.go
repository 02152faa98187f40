// Package discover は利用可能なレシピとスタイルを一覧表示するタスクです。
// 対話モードでは1件のレシピを選ばせて、そのメタデータを詳しく表示します。
package discover

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/qawatake/rwd/internal/recipe"
	"github.com/qawatake/rwd/internal/verbose"
)

// IndentUnit は詳細表示の1段分のインデントです
const IndentUnit = "\t"

// Environment は利用可能なレシピとスタイルのレジストリです
type Environment interface {
	ListRecipeDescriptors() []recipe.Descriptor
	ListStyles() []recipe.NamedStyles
}

// ActiveResolver はビルドで有効なレシピとスタイルの名前を返します
type ActiveResolver interface {
	ActiveRecipes() []string
	ActiveStyles() []string
}

// Prompter はユーザーに1件のレシピを選ばせます。キャンセル時は ok が false です。
type Prompter interface {
	Execute(ctx context.Context, recipes []recipe.Descriptor) (_ recipe.Descriptor, ok bool, _ error)
}

// Task はdiscoverコマンドの本体です
type Task struct {
	// Interactive が true の場合はレシピを選ばせて詳細を表示します
	Interactive bool

	env      Environment
	active   ActiveResolver
	prompter Prompter
	log      Logger
}

func NewTask(env Environment, active ActiveResolver, prompter Prompter, log Logger) *Task {
	return &Task{
		env:      env,
		active:   active,
		prompter: prompter,
		log:      log,
	}
}

// Run はレポートを出力します。協調オブジェクトのエラーはそのまま返します。
func (t *Task) Run(ctx context.Context) error {
	availableRecipeDescriptors := t.env.ListRecipeDescriptors()

	if t.Interactive {
		return t.runInteractive(ctx, availableRecipeDescriptors)
	}

	activeRecipes := t.active.ActiveRecipes()
	availableStyles := t.env.ListStyles()
	activeStyles := t.active.ActiveStyles()

	t.log.Quiet("Available Recipes:")
	for _, r := range availableRecipeDescriptors {
		t.log.Quiet("\tname: " + r.Name)
	}

	t.log.Quiet("Available Styles:")
	for _, s := range availableStyles {
		t.log.Quiet("\tname: " + s.Name)
	}

	t.log.Quiet("Active Styles:")
	for _, s := range activeStyles {
		t.log.Quiet("\tname: " + s)
	}

	t.log.Quiet("Active Recipes:")
	for _, r := range activeRecipes {
		t.log.Quiet("\tname: " + r)
	}

	t.log.Quiet(fmt.Sprintf("Found %d available recipes and %d available styles.", len(availableRecipeDescriptors), len(availableStyles)))
	t.log.Quiet(fmt.Sprintf("Configured with %d active recipes and %d active styles.", len(activeRecipes), len(activeStyles)))
	return nil
}

func (t *Task) runInteractive(ctx context.Context, recipes []recipe.Descriptor) error {
	if t.prompter == nil {
		return errors.New("対話モードにはプロンプトが必要です")
	}

	t.log.Quiet("Entering interactive mode, Ctrl-C to exit...")
	rd, ok, err := t.prompter.Execute(ctx, recipes)
	if err != nil {
		return err
	}
	if !ok {
		verbose.Println("レシピの選択がキャンセルされました")
		return nil
	}

	t.WriteRecipeDescriptor(rd, true, 0)
	return nil
}

// WriteRecipeDescriptor はレシピを indentLevel 段インデントして出力します。
// verbose でなければ名前だけを出力します。
func (t *Task) WriteRecipeDescriptor(rd recipe.Descriptor, verbose bool, indentLevel int) {
	t.log.Quiet(indent(indentLevel, "name: "+rd.Name))
	if !verbose {
		return
	}

	t.log.Quiet(indent(indentLevel, "displayName: "+rd.DisplayName))
	t.log.Quiet(indent(indentLevel, "description: "+rd.Description))

	suffix := ""
	if len(rd.Options) == 0 {
		suffix = "[]"
	}
	t.log.Quiet(indent(indentLevel, "options: "+suffix))
	for _, od := range rd.Options {
		required := ""
		if od.Required {
			required = "!"
		}
		t.log.Quiet(indent(indentLevel+1, od.Name+": "+od.Type+required))
		t.log.Quiet(indent(indentLevel+2, "displayName: "+od.DisplayName))
		t.log.Quiet(indent(indentLevel+2, "description: "+od.Description))
		// exampleが無い場合も空行を出力する
		example := ""
		if od.HasExample() {
			example = "example: " + *od.Example
		}
		t.log.Quiet(indent(indentLevel+2, example))
	}

	t.log.Quiet(indent(indentLevel, ""))
}

func indent(level int, content string) string {
	return strings.Repeat(IndentUnit, level) + content
}
