// Package main is the entry point for the denolint command-line tool.
package main

import "denolint.dev/pkg/denolint/cmd"

func main() {
	cmd.Execute()
}
