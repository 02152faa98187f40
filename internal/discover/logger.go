package discover

import (
	"fmt"
	"io"
)

// Logger はレポートの出力先です。行はそのまま書き出されます。
type Logger interface {
	Quiet(msg string)
}

type writerLogger struct {
	w io.Writer
}

// NewWriterLogger は1行ずつ w に書き出す Logger を返します
func NewWriterLogger(w io.Writer) Logger {
	return &writerLogger{w: w}
}

func (l *writerLogger) Quiet(msg string) {
	fmt.Fprintln(l.w, msg)
}
