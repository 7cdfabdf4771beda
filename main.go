// Package main is the entry point for the typelint CLI.
package main

import "typelint.dev/pkg/typelint/cmd"

func main() {
	cmd.Execute()
}
