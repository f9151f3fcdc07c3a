// Command vessel renders and inspects vessel view trees headlessly.
package main

import (
	"fmt"
	"os"

	"github.com/go-drift/vessel/cmd/vessel/cmd"
)

func main() {
	if err := cmd.Execute(os.Args[1:]); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
