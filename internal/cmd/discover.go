package cmd

import (
	"context"
	"fmt"
	"os"

	"github.com/qawatake/rwd/internal/config"
	"github.com/qawatake/rwd/internal/derrors"
	"github.com/qawatake/rwd/internal/discover"
	"github.com/qawatake/rwd/internal/environment"
	"github.com/qawatake/rwd/internal/extension"
	"github.com/qawatake/rwd/internal/prompt"
	"github.com/qawatake/rwd/internal/ui"
	"github.com/qawatake/rwd/internal/verbose"
	"github.com/spf13/cobra"
)

var (
	interactive     bool
	fuzzy           bool
	activeRecipeArg []string
	activeStyleArg  []string
)

var discoverCmd = &cobra.Command{
	Use:   "discover",
	Short: "利用可能なレシピとスタイルを一覧表示します。",
	Long: `利用可能なレシピとスタイル、有効なレシピとスタイルを一覧表示します。
--interactive を指定するとレシピを1つ選び、そのオプションを詳しく表示します。`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) (err error) {
		defer derrors.Wrap(&err)

		cfg, err := loadConfig()
		if err != nil {
			return fmt.Errorf("設定ファイルの読み込みに失敗しました: %v", err)
		}

		env, err := loadEnvironment(cmd.Context(), cfg)
		if err != nil {
			return fmt.Errorf("レシピの読み込みに失敗しました: %w", err)
		}

		var prompter discover.Prompter
		if interactive {
			prompter = newPrompter(cfg)
		}

		task := discover.NewTask(
			env,
			config.NewActiveResolver(cfg, activeRecipeArg, activeStyleArg),
			prompter,
			discover.NewWriterLogger(cmd.OutOrStdout()),
		)
		task.Interactive = interactive
		return task.Run(cmd.Context())
	},
}

func loadEnvironment(ctx context.Context, cfg *config.Config) (*environment.Environment, error) {
	opts := environment.Options{
		ConfigFile: cfg.ConfigFile,
		Catalogs:   cfg.Catalogs,
	}
	if cfg.Plugins {
		exts, err := extension.NewManager().FindExtensions()
		if err != nil {
			return nil, fmt.Errorf("プラグインの検索に失敗しました: %w", err)
		}
		for _, ext := range exts {
			verbose.Printf("プラグイン %s (%s) を使用します\n", ext.Name, ext.Path)
			opts.Providers = append(opts.Providers, ext)
		}
	}

	if !interactive {
		return environment.Load(ctx, opts)
	}
	// 対話モードではレポートの前にスピナーを表示する
	return ui.WithSpinnerValue("レシピを読み込み中...", func() (*environment.Environment, error) {
		return environment.Load(ctx, opts)
	})
}

func newPrompter(cfg *config.Config) discover.Prompter {
	if fuzzy || cfg.UI.Finder == config.FinderFuzzy {
		return prompt.NewFuzzyPrompter(ui.Find, ui.NewMarkdownRenderer(markdownStyle()))
	}
	if cfg.UI.Accessible {
		return prompt.NewTreePrompter(ui.AccessibleSelect)
	}
	return prompt.NewTreePrompter(ui.Select)
}

func markdownStyle() string {
	if style := os.Getenv("GLAMOUR_STYLE"); style != "" {
		return style
	}
	return "dark"
}

func init() {
	discoverCmd.Flags().BoolVarP(&interactive, "interactive", "i", false, "レシピを対話的に選んで詳細を表示する")
	discoverCmd.Flags().BoolVar(&fuzzy, "fuzzy", false, "パッケージのツリーではなくあいまい検索でレシピを選ぶ")
	discoverCmd.Flags().StringSliceVar(&activeRecipeArg, "active-recipe", nil, "有効なレシピ (設定ファイルの activeRecipes を上書きする)")
	discoverCmd.Flags().StringSliceVar(&activeStyleArg, "active-style", nil, "有効なスタイル (設定ファイルの activeStyles を上書きする)")
	rootCmd.AddCommand(discoverCmd)
}
