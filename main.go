package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/thenoetrevino/lbl/cmd"
	"github.com/thenoetrevino/lbl/internal/cli"
)

func main() {
	err := cmd.Execute()
	if err == nil {
		return
	}

	// Commands report their own failures; anything else came from cobra
	var exitErr *cli.ExitCodeError
	if !errors.As(err, &exitErr) {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
	}
	os.Exit(cli.ExitCode(err))
}
