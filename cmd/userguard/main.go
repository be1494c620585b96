package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/shandysiswandi/userguard/cmd/userguard/cmd"
)

func main() {
	if err := cmd.NewRootCommand().Execute(); err != nil {
		if !errors.Is(err, cmd.ErrViolation) {
			fmt.Fprintf(os.Stderr, "error: %v\n", err)
		}
		os.Exit(1)
	}
}
