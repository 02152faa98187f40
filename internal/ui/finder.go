package ui

import (
	"context"
	"errors"

	"github.com/ktr0731/go-fuzzyfinder"
)

// Find はあいまい検索で1件選ばせます。preview はカーソル位置の項目のプレビューを返します。
func Find(ctx context.Context, header string, titles []string, preview func(i, width, height int) string) (int, error) {
	if len(titles) == 0 {
		return 0, errors.New("選択肢がありません")
	}

	idx, err := fuzzyfinder.Find(
		titles,
		func(i int) string {
			return titles[i]
		},
		fuzzyfinder.WithContext(ctx),
		fuzzyfinder.WithHeader(header),
		fuzzyfinder.WithPreviewWindow(func(i, w, h int) string {
			if i < 0 {
				return ""
			}
			return preview(i, w, h)
		}),
	)
	if errors.Is(err, fuzzyfinder.ErrAbort) {
		return 0, ErrCancelled
	}
	if err != nil {
		return 0, err
	}
	return idx, nil
}
