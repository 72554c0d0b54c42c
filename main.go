package main

import (
	"context"
	"fmt"
	"os"

	"github.com/thenoetrevino/kanbanpro/cmd"
	"github.com/thenoetrevino/kanbanpro/internal/cli"
)

func main() {
	err := cmd.Execute(context.Background())
	if err != nil && !cli.Reported(err) {
		fmt.Fprintln(os.Stderr, "Error:", err)
	}
	os.Exit(cli.ExitCode(err))
}
