// Command tilookup locates terminfo entries the way terminal libraries do
// and reports where each one was found.
package main

import "github.com/jpl-au/terminfo/internal/cli"

func main() {
	cli.Execute()
}
