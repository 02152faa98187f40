package cmd

import (
	"context"
	"os"

	"github.com/Code-Hex/dd"
	"github.com/qawatake/rwd/internal/config"
	"github.com/qawatake/rwd/internal/verbose"
	"github.com/spf13/cobra"
)

var (
	configPath    string
	verboseOutput bool
)

var rootCmd = &cobra.Command{
	Use:   "rwd",
	Short: "OpenRewriteのレシピとスタイルを探索するCLI",
	Long: `rwdはプロジェクトで利用可能なOpenRewriteのレシピとスタイルを一覧表示します。
対話モードではパッケージごとにレシピを辿り、選んだレシピのオプションを確認できます。`,
	SilenceUsage: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		verbose.SetEnabled(verboseOutput)
	},
}

// Execute executes the root command.
func Execute(ctx context.Context) error {
	return rootCmd.ExecuteContext(ctx)
}

// loadConfig はカレントディレクトリを基準に設定を読み込みます
func loadConfig() (*config.Config, error) {
	wd, err := os.Getwd()
	if err != nil {
		return nil, err
	}
	cfg, err := config.LoadConfig(configPath, wd)
	if err != nil {
		return nil, err
	}
	if verbose.Enabled {
		verbose.Println(dd.Dump(cfg))
	}
	return cfg, nil
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "設定ファイルのパス (デフォルトはプロジェクトルートの "+config.FileName+")")
	rootCmd.PersistentFlags().BoolVarP(&verboseOutput, "verbose", "v", false, "詳細なログを標準エラー出力に表示する")
}
