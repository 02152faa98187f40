package verbose

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/log"
)

// Enabled は --verbose が指定されているかどうかです。SetEnabled で切り替えます。
var Enabled bool

var logger = log.NewWithOptions(os.Stderr, log.Options{
	Prefix: "rwd",
	Level:  log.WarnLevel,
})

func SetEnabled(enabled bool) {
	Enabled = enabled
	if enabled {
		logger.SetLevel(log.DebugLevel)
	} else {
		logger.SetLevel(log.WarnLevel)
	}
}

// SetOutput は診断ログの出力先を変更します
func SetOutput(w io.Writer) {
	logger.SetOutput(w)
}

func Printf(format string, args ...any) {
	if Enabled {
		logger.Debug(strings.TrimRight(fmt.Sprintf(format, args...), "\n"))
	}
}

func Println(args ...any) {
	if Enabled {
		logger.Debug(strings.TrimRight(fmt.Sprintln(args...), "\n"))
	}
}

// Warnf は --verbose の有無にかかわらず出力されます
func Warnf(format string, args ...any) {
	logger.Warn(strings.TrimRight(fmt.Sprintf(format, args...), "\n"))
}
