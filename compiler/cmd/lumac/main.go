package main

import (
	"os"

	"github.com/lumalang/luma/compiler/internal/term"
	"github.com/lumalang/luma/compiler/internal/version"
)

/* ---------- main ---------- */

func main() {
	if len(os.Args) < 2 {
		usage()
		return
	}
	switch os.Args[1] {
	case "version", "--version", "-v":
		term.Printf("%s\n", version.String())
	case "help", "--help", "-h":
		usage()
	case "lex":
		if len(os.Args) < 3 {
			term.Eprintln("usage: lumac lex [--format=pretty|ndjson] [--strict] <file.lu>")
			os.Exit(2)
		}
		os.Exit(cmdLex(os.Args[2:]))
	default:
		term.Eprintf("unknown command: %s\n\n", os.Args[1])
		usage()
		os.Exit(2)
	}
}
