// Command gr recursively searches files for a regular expression.
package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/mrdomino/gr/internal/cli"
	"github.com/mrdomino/gr/internal/gr"
)

func main() {
	os.Exit(run())
}

func run() int {
	progName := filepath.Base(os.Args[0])

	opts, err := cli.Parse(os.Args)
	if err != nil {
		fmt.Fprintf(os.Stderr, "%s: %s\n", progName, err)
		cli.Usage(os.Stderr, progName)
		return 2
	}

	if opts.Help {
		cli.Usage(os.Stdout, progName)
		return 2
	}
	if opts.Version {
		fmt.Printf("gr version %s\n", gr.Version)
		return 0
	}

	opts.ProgName = progName
	return gr.Run(opts)
}
