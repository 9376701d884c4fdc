// Command vectorui renders, previews and replays the widget gallery.
package main

import (
	"fmt"
	"os"

	"github.com/go-drift/vectorui/cmd/vectorui/cmd"
)

func main() {
	if err := cmd.Execute(os.Args[1:]); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
