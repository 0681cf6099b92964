package main

import "github.com/lumalang/luma/compiler/internal/term"

func usage() {
	term.Eprintln("lumac — Luma compiler (Stage-0: tokenizer)")
	term.Eprintln("")
	term.Eprintln("Usage:")
	term.Eprintln("  lumac <command> [args]")
	term.Eprintln("")
	term.Eprintln("Commands:")
	term.Eprintln("  version                                   Print version")
	term.Eprintln("  help                                      Show this help")
	term.Eprintln("  lex [--format=pretty|ndjson] [--strict] <file.lu>")
	term.Eprintln("                                            Tokenize a .lu file and print the token stream")
	term.Eprintln("")
	term.Eprintln("Notes:")
	term.Eprintln("  - --strict exits 1 if the stream contains any <Invalid> token.")
	term.Eprintln("  - ndjson emits one JSON object per token, EOF included.")
}
