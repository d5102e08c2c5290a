// Package main is the entry point for the srcalias CLI.
package main

import "srcalias.dev/pkg/srcalias/cmd"

func main() {
	cmd.Execute()
}
