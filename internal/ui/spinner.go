package ui

import (
	"os"
	"time"

	"github.com/briandowns/spinner"
)

// Spinner は読み込み中のスピナーを表示するためのwrapperです。
// レポートを汚さないように標準エラー出力に描画します。
type Spinner struct {
	spinner *spinner.Spinner
}

// NewSpinner は新しいスピナーを作成します
func NewSpinner() *Spinner {
	s := spinner.New(spinner.CharSets[14], 100*time.Millisecond, spinner.WithWriter(os.Stderr))
	return &Spinner{spinner: s}
}

// Start はスピナーを開始します
func (s *Spinner) Start(message string) {
	s.spinner.Suffix = " " + message
	s.spinner.Start()
}

// Stop はスピナーを停止します
func (s *Spinner) Stop() {
	s.spinner.Stop()
}

// WithSpinnerValue は指定された処理中にスピナーを表示し、値を返します
func WithSpinnerValue[T any](message string, fn func() (T, error)) (T, error) {
	s := NewSpinner()
	s.Start(message)
	defer s.Stop()
	return fn()
}
