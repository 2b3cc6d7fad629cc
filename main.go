// Package main is the entry point for the codemod CLI.
package main

import "codemod.dev/pkg/codemod/cmd"

func main() {
	cmd.Execute()
}
