package main

import (
	"fmt"
	"os"

	"github.com/arthur-debert/attempt/cmd/attempt"
)

func main() {
	rootCmd := attempt.NewRootCmd()
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, attempt.RenderError(os.Stderr, err))
		os.Exit(1)
	}
}
