package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/henri123lemoine/chessboard/internal/app"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		if errors.Is(err, app.ErrAborted) {
			os.Exit(130)
		}
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
