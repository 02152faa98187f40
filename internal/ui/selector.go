package ui

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
	tty "github.com/mattn/go-tty"
)

// ErrCancelled はユーザーが選択をキャンセルしたことを表します
var ErrCancelled = errors.New("選択がキャンセルされました")

var (
	titleStyle        = lipgloss.NewStyle().MarginLeft(2)
	itemStyle         = lipgloss.NewStyle().PaddingLeft(4)
	selectedItemStyle = lipgloss.NewStyle().PaddingLeft(2).Foreground(lipgloss.Color("170"))
	descStyle         = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	paginationStyle   = list.DefaultStyles().PaginationStyle.PaddingLeft(4)
	helpStyle         = list.DefaultStyles().HelpStyle.PaddingLeft(4).PaddingBottom(1)
	quitTextStyle     = lipgloss.NewStyle().Margin(1, 0, 2, 4)
)

// Option は選択肢の1行です
type Option struct {
	Title       string
	Description string
}

type item struct {
	title, desc string
	index       int
}

func (i item) FilterValue() string { return i.title + " " + i.desc }

type itemDelegate struct{}

func (d itemDelegate) Height() int                             { return 1 }
func (d itemDelegate) Spacing() int                            { return 0 }
func (d itemDelegate) Update(_ tea.Msg, _ *list.Model) tea.Cmd { return nil }
func (d itemDelegate) Render(w io.Writer, m list.Model, index int, listItem list.Item) {
	i, ok := listItem.(item)
	if !ok {
		return
	}

	str := i.title
	if i.desc != "" {
		str += "  " + descStyle.Render(i.desc)
	}
	// パディングとカーソルの分を除いた幅に収める
	if width := m.Width() - 6; width > 0 {
		str = ansi.Truncate(str, width, "…")
	}

	if index == m.Index() {
		fmt.Fprint(w, selectedItemStyle.Render("> "+str))
		return
	}
	fmt.Fprint(w, itemStyle.Render(str))
}

type model struct {
	list     list.Model
	choice   int
	chosen   bool
	quitting bool
	err      error
}

func (m model) Init() tea.Cmd {
	// 最初からフィルタリングモードを開始
	return func() tea.Msg {
		return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'/'}}
	}
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.list.SetWidth(msg.Width)
		return m, nil

	case tea.KeyMsg:
		switch keypress := msg.String(); keypress {
		case "ctrl+c", "esc":
			m.quitting = true
			m.err = ErrCancelled
			return m, tea.Quit

		case "enter":
			i, ok := m.list.SelectedItem().(item)
			if !ok {
				// フィルタに一致する項目が無い
				return m, nil
			}
			m.choice = i.index
			m.chosen = true
			return m, tea.Quit

		case "ctrl+n":
			m.list.CursorDown()
			return m, nil

		case "ctrl+p":
			m.list.CursorUp()
			return m, nil
		}
	}

	var cmd tea.Cmd
	m.list, cmd = m.list.Update(msg)
	return m, cmd
}

func (m model) View() string {
	if m.quitting {
		return quitTextStyle.Render("選択がキャンセルされました。")
	}
	if m.chosen {
		return ""
	}
	return "\n" + m.list.View()
}

func newModel(title string, options []Option) model {
	items := make([]list.Item, len(options))
	for i, opt := range options {
		items[i] = item{
			title: opt.Title,
			desc:  opt.Description,
			index: i,
		}
	}

	const defaultWidth = 80
	const listHeight = 14

	l := list.New(items, itemDelegate{}, defaultWidth, listHeight)
	l.Title = title
	l.SetShowStatusBar(false)
	l.SetFilteringEnabled(true)
	l.Styles.Title = titleStyle
	l.Styles.PaginationStyle = paginationStyle
	l.Styles.HelpStyle = helpStyle

	return model{list: l}
}

// Select はフィルタ可能なリストを端末に表示し、選ばれた選択肢のインデックスを返します。
// 標準出力を汚さないように制御端末(TTY)に描画します。
func Select(ctx context.Context, title string, options []Option) (int, error) {
	if len(options) == 0 {
		return 0, errors.New("選択肢がありません")
	}

	t, err := tty.Open()
	if err != nil {
		return 0, fmt.Errorf("端末を開けませんでした: %w", err)
	}
	defer t.Close()

	p := tea.NewProgram(newModel(title, options),
		tea.WithContext(ctx),
		tea.WithInput(t.Input()),
		tea.WithOutput(t.Output()),
	)
	finalModel, err := p.Run()
	if err != nil {
		return 0, err
	}

	result := finalModel.(model)
	if result.err != nil {
		return 0, result.err
	}
	if !result.chosen {
		return 0, ErrCancelled
	}

	return result.choice, nil
}
