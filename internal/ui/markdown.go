package ui

import (
	"sync"

	"github.com/charmbracelet/glamour"
)

// MarkdownRenderer は幅ごとにglamourのレンダラーを使い回します
type MarkdownRenderer struct {
	mu        sync.Mutex
	style     string
	renderers map[int]*glamour.TermRenderer
}

// NewMarkdownRenderer は指定したglamourの標準スタイル("dark", "light", "notty"など)で描画するレンダラーを作ります
func NewMarkdownRenderer(style string) *MarkdownRenderer {
	return &MarkdownRenderer{
		style:     style,
		renderers: make(map[int]*glamour.TermRenderer),
	}
}

func (r *MarkdownRenderer) Render(md string, width int) (string, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	tr, ok := r.renderers[width]
	if !ok {
		var err error
		tr, err = glamour.NewTermRenderer(
			glamour.WithStandardStyle(r.style),
			glamour.WithWordWrap(width),
			glamour.WithEmoji(),
		)
		if err != nil {
			return "", err
		}
		r.renderers[width] = tr
	}
	return tr.Render(md)
}
