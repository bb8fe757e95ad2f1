// Command cfront is the front end for a small C-like language: it scans a
// source file into tokens and parses the tokens into a parse tree.
//
// Usage:
//
//	cfront lex   [-i] file.c
//	cfront parse [-i] file.c [--format text|json|yaml]
//	cfront version
//
// Exit status is 0 on success, 1 for a lexical or parse error, 2 for a usage
// or configuration error and 3 when the input cannot be read.
package main

import "os"

func main() {
	os.Exit(run(os.Args[1:]))
}
