package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		var ece *exitCodeError
		if errors.As(err, &ece) {
			if ece.msg != "" {
				fmt.Fprintln(os.Stderr, ece.msg)
			}
			stop()
			os.Exit(ece.code) //nolint:gocritic // stop already called
		}
		fmt.Fprintln(os.Stderr, err.Error())
		stop()
		os.Exit(ExitInvalidArgs) //nolint:gocritic // stop already called
	}
}
