// Package main is the entry point for the demorun CLI.
package main

import "demorun.dev/pkg/demorun/cmd"

func main() {
	cmd.Execute()
}
