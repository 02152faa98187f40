package ui

import (
	"context"
	"errors"
	"os"

	"github.com/charmbracelet/huh"
)

// AccessibleSelect はスクリーンリーダー向けのプレーンテキストで選択肢を尋ねます。
// プロンプトは標準エラー出力に書き出します。
func AccessibleSelect(ctx context.Context, title string, options []Option) (int, error) {
	if len(options) == 0 {
		return 0, errors.New("選択肢がありません")
	}

	huhOpts := make([]huh.Option[int], len(options))
	for i, opt := range options {
		label := opt.Title
		if opt.Description != "" {
			label += " - " + opt.Description
		}
		huhOpts[i] = huh.NewOption(label, i)
	}

	var choice int
	sel := huh.NewSelect[int]().
		Title(title).
		Options(huhOpts...).
		Value(&choice)

	form := huh.NewForm(huh.NewGroup(sel)).
		WithAccessible(true).
		WithOutput(os.Stderr)

	if err := form.RunWithContext(ctx); err != nil {
		if errors.Is(err, huh.ErrUserAborted) {
			return 0, ErrCancelled
		}
		return 0, err
	}
	return choice, nil
}
