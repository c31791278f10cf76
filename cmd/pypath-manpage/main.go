package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra/doc"

	"github.com/arthur-debert/pypath/cmd/pypath"
	"github.com/arthur-debert/pypath/internal/version"
)

func main() {
	rootCmd := pypath.NewRootCmd()

	header := &doc.GenManHeader{
		Title:   "PYPATH",
		Section: "1",
		Source:  "pypath " + version.Version,
		Manual:  "pypath manual",
	}

	err := doc.GenMan(rootCmd, header, os.Stdout)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error generating man page: %v\n", err)
		os.Exit(1)
	}
}
