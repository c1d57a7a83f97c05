// Package main is the entry point for the exfold CLI.
package main

import "exfold.dev/pkg/exfold/cmd"

func main() {
	cmd.Execute()
}
