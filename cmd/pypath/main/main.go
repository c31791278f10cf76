package main

import (
	"os"

	"github.com/arthur-debert/pypath/cmd/pypath"
)

func main() {
	rootCmd := pypath.NewRootCmd()
	if err := pypath.Execute(rootCmd, os.Args[1:]); err != nil {
		pypath.PrintError(rootCmd, os.Stderr, err)
		os.Exit(1)
	}
}
