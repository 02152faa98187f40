package discover

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/qawatake/rwd/internal/recipe"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeEnvironment struct {
	recipes []recipe.Descriptor
	styles  []recipe.NamedStyles
}

func (e fakeEnvironment) ListRecipeDescriptors() []recipe.Descriptor { return e.recipes }
func (e fakeEnvironment) ListStyles() []recipe.NamedStyles           { return e.styles }

type fakeActive struct {
	recipes []string
	styles  []string
}

func (a fakeActive) ActiveRecipes() []string { return a.recipes }
func (a fakeActive) ActiveStyles() []string  { return a.styles }

type fakePrompter struct {
	pick   int
	cancel bool
	err    error
	got    []recipe.Descriptor
}

func (p *fakePrompter) Execute(_ context.Context, recipes []recipe.Descriptor) (recipe.Descriptor, bool, error) {
	p.got = recipes
	if p.err != nil {
		return recipe.Descriptor{}, false, p.err
	}
	if p.cancel {
		return recipe.Descriptor{}, false, nil
	}
	return recipes[p.pick], true, nil
}

type recordLogger struct {
	lines []string
}

func (l *recordLogger) Quiet(msg string) { l.lines = append(l.lines, msg) }

func strptr(s string) *string { return &s }

func TestRunBatch(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		env    fakeEnvironment
		active fakeActive
		want   []string
	}{
		{
			name: "レシピとスタイルを順番通りに出力する",
			env: fakeEnvironment{
				recipes: []recipe.Descriptor{{Name: "org.a.Foo"}, {Name: "org.b.Bar"}},
				styles:  []recipe.NamedStyles{{Name: "org.s.Style"}},
			},
			active: fakeActive{recipes: []string{"org.b.Bar"}},
			want: []string{
				"Available Recipes:",
				"\tname: org.a.Foo",
				"\tname: org.b.Bar",
				"Available Styles:",
				"\tname: org.s.Style",
				"Active Styles:",
				"Active Recipes:",
				"\tname: org.b.Bar",
				"Found 2 available recipes and 1 available styles.",
				"Configured with 1 active recipes and 0 active styles.",
			},
		},
		{
			name: "何もない場合もヘッダーを出力する",
			want: []string{
				"Available Recipes:",
				"Available Styles:",
				"Active Styles:",
				"Active Recipes:",
				"Found 0 available recipes and 0 available styles.",
				"Configured with 0 active recipes and 0 active styles.",
			},
		},
		{
			name: "利用可能でない有効な名前もそのまま出力する",
			env: fakeEnvironment{
				recipes: []recipe.Descriptor{{Name: "B"}, {Name: "A"}},
			},
			active: fakeActive{recipes: []string{"Missing", "Missing"}, styles: []string{"S"}},
			want: []string{
				"Available Recipes:",
				"\tname: B",
				"\tname: A",
				"Available Styles:",
				"Active Styles:",
				"\tname: S",
				"Active Recipes:",
				"\tname: Missing",
				"\tname: Missing",
				"Found 2 available recipes and 0 available styles.",
				"Configured with 2 active recipes and 1 active styles.",
			},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			log := &recordLogger{}
			err := NewTask(tt.env, tt.active, nil, log).Run(context.Background())
			require.NoError(t, err)
			assert.Equal(t, tt.want, log.lines)
		})
	}
}

func TestRunBatchIsRepeatable(t *testing.T) {
	t.Parallel()

	env := fakeEnvironment{
		recipes: []recipe.Descriptor{{Name: "org.a.Foo"}},
		styles:  []recipe.NamedStyles{{Name: "org.s.Style"}},
	}
	log := &recordLogger{}
	task := NewTask(env, fakeActive{styles: []string{"org.s.Style"}}, nil, log)

	require.NoError(t, task.Run(context.Background()))
	first := append([]string(nil), log.lines...)
	log.lines = nil
	require.NoError(t, task.Run(context.Background()))
	assert.Equal(t, first, log.lines)
}

func TestRunInteractive(t *testing.T) {
	t.Parallel()

	recipes := []recipe.Descriptor{
		{Name: "org.a.Other"},
		{
			Name:        "org.openrewrite.java.ChangeType",
			DisplayName: "Change type",
			Description: "Change a type.",
			Options: []recipe.OptionDescriptor{
				{Name: "oldFullyQualifiedTypeName", Type: "String", Required: true, DisplayName: "Old", Description: "The old type.", Example: strptr("java.util.List")},
				{Name: "ignoreDefinition", Type: "Boolean", DisplayName: "Ignore", Description: "Skip definitions."},
			},
		},
	}

	t.Run("選んだレシピの詳細を出力する", func(t *testing.T) {
		t.Parallel()
		log := &recordLogger{}
		p := &fakePrompter{pick: 1}
		task := NewTask(fakeEnvironment{recipes: recipes}, fakeActive{}, p, log)
		task.Interactive = true

		require.NoError(t, task.Run(context.Background()))
		assert.Equal(t, recipes, p.got)
		assert.Equal(t, []string{
			"Entering interactive mode, Ctrl-C to exit...",
			"name: org.openrewrite.java.ChangeType",
			"displayName: Change type",
			"description: Change a type.",
			"options: ",
			"\toldFullyQualifiedTypeName: String!",
			"\t\tdisplayName: Old",
			"\t\tdescription: The old type.",
			"\t\texample: java.util.List",
			"\tignoreDefinition: Boolean",
			"\t\tdisplayName: Ignore",
			"\t\tdescription: Skip definitions.",
			"\t\t",
			"",
		}, log.lines)
	})

	t.Run("キャンセルしたら何も出力しない", func(t *testing.T) {
		t.Parallel()
		log := &recordLogger{}
		task := NewTask(fakeEnvironment{recipes: recipes}, fakeActive{}, &fakePrompter{cancel: true}, log)
		task.Interactive = true

		require.NoError(t, task.Run(context.Background()))
		assert.Equal(t, []string{"Entering interactive mode, Ctrl-C to exit..."}, log.lines)
	})

	t.Run("プロンプトのエラーを返す", func(t *testing.T) {
		t.Parallel()
		boom := errors.New("boom")
		log := &recordLogger{}
		task := NewTask(fakeEnvironment{recipes: recipes}, fakeActive{}, &fakePrompter{err: boom}, log)
		task.Interactive = true

		err := task.Run(context.Background())
		assert.ErrorIs(t, err, boom)
		assert.Equal(t, []string{"Entering interactive mode, Ctrl-C to exit..."}, log.lines)
	})

	t.Run("プロンプトがない", func(t *testing.T) {
		t.Parallel()
		task := NewTask(fakeEnvironment{recipes: recipes}, fakeActive{}, nil, &recordLogger{})
		task.Interactive = true
		assert.Error(t, task.Run(context.Background()))
	})
}

func TestWriteRecipeDescriptor(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name        string
		rd          recipe.Descriptor
		verbose     bool
		indentLevel int
		want        []string
	}{
		{
			name:    "オプションなし",
			rd:      recipe.Descriptor{Name: "org.a.Foo", DisplayName: "Foo", Description: "desc"},
			verbose: true,
			want: []string{
				"name: org.a.Foo",
				"displayName: Foo",
				"description: desc",
				"options: []",
				"",
			},
		},
		{
			name:        "verboseでなければ名前だけ",
			rd:          recipe.Descriptor{Name: "org.a.Foo", DisplayName: "Foo"},
			indentLevel: 1,
			want:        []string{"\tname: org.a.Foo"},
		},
		{
			name: "インデントを付ける",
			rd: recipe.Descriptor{
				Name:    "org.a.Foo",
				Options: []recipe.OptionDescriptor{{Name: "n", Type: "int", Example: strptr("")}},
			},
			verbose:     true,
			indentLevel: 1,
			want: []string{
				"\tname: org.a.Foo",
				"\tdisplayName: ",
				"\tdescription: ",
				"\toptions: ",
				"\t\tn: int",
				"\t\t\tdisplayName: ",
				"\t\t\tdescription: ",
				"\t\t\texample: ",
				"\t",
			},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			log := &recordLogger{}
			NewTask(fakeEnvironment{}, fakeActive{}, nil, log).WriteRecipeDescriptor(tt.rd, tt.verbose, tt.indentLevel)
			assert.Equal(t, tt.want, log.lines)
		})
	}
}

func TestWriterLogger(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	log := NewWriterLogger(&buf)
	log.Quiet("Available Recipes:")
	log.Quiet("\tname: A")
	assert.Equal(t, strings.Join([]string{"Available Recipes:", "\tname: A", ""}, "\n"), buf.String())
}
