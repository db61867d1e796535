package main

import (
	"fmt"
	"os"

	appErrors "excopy/internal/errors"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, appErrors.UserMessage(err))
		os.Exit(1)
	}
}
