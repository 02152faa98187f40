package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"

	"github.com/k1LoW/errors"
	"github.com/qawatake/rwd/internal/cmd"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	err := cmd.Execute(ctx)
	stop()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %s\n", err)
		if st := errors.StackTraces(err); len(st) > 0 {
			fmt.Fprintf(os.Stderr, "Stack trace:\n%s\n", st)
		}
		os.Exit(1)
	}
}
