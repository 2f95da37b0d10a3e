// Package main is the entry point for the selecta binary, an interactive
// fuzzy finder over lines read from standard input.
package main

import "os"

func main() {
	os.Exit(run(os.Args[1:]))
}
