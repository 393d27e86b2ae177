// Package main is the entry point for the DeepUnit CLI.
package main

import "deepunit.dev/pkg/deepunit/cmd"

func main() {
	cmd.Execute()
}
