package derrors

import (
	"fmt"

	"github.com/k1LoW/errors"
)

func Wrap(errp *error) {
	if errp == nil || *errp == nil {
		return
	}
	*errp = errors.WithStack(*errp)
}

// Wrapf はエラーにメッセージを付け加えてからスタックトレースを付与します
func Wrapf(errp *error, format string, args ...any) {
	if errp == nil || *errp == nil {
		return
	}
	*errp = errors.WithStack(fmt.Errorf("%s: %w", fmt.Sprintf(format, args...), *errp))
}
