package main

import (
	"fmt"
	"os"

	"github.com/marta/studiobook/internal/app"
	"github.com/marta/studiobook/internal/cli"
)

func main() {
	a, err := app.New()
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to initialize app: %v\n", err)
		os.Exit(1)
	}
	defer a.Close()
	cli.SetApp(a)

	if err := cli.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
