package main

import "github.com/xen-tools/gen-policy/cmd"

// main is the entry point of the gen-policy CLI.
// It transcodes stdin to stdout via the root command.
func main() {
	cmd.Execute()
}
