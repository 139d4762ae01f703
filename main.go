// Package main is the entry point for the apidiff CLI.
package main

import "apidiff.dev/pkg/apidiff/cmd"

func main() {
	cmd.Execute()
}
