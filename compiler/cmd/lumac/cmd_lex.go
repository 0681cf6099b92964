package main

import (
	"encoding/json"
	"flag"
	"os"
	"strconv"
	"strings"

	"github.com/lumalang/luma/compiler/internal/diag"
	"github.com/lumalang/luma/compiler/internal/lexer"
	"github.com/lumalang/luma/compiler/internal/term"
)

/* ---------- lex ---------- */

type lexArgs struct {
	file   string
	format string // "pretty" | "ndjson"
	strict bool
}

func parseLexArgs(argv []string) (lexArgs, error) {
	a := lexArgs{format: "pretty"}
	for _, s := range argv {
		switch {
		case s == "--strict":
			a.strict = true
		case strings.HasPrefix(s, "--format="):
			a.format = strings.TrimPrefix(s, "--format=")
			if a.format != "pretty" && a.format != "ndjson" {
				return a, flag.ErrHelp
			}
		case strings.HasPrefix(s, "-"):
			return a, flag.ErrHelp
		case a.file == "":
			a.file = s
		default:
			return a, flag.ErrHelp
		}
	}
	if a.file == "" {
		return a, flag.ErrHelp
	}
	return a, nil
}

// tokenRecord is the ndjson wire form of one token.
type tokenRecord struct {
	Kind string `json:"kind"`
	Lex  string `json:"lex,omitempty"`
	Line int    `json:"line"`
	Col  int    `json:"col"`
}

func cmdLex(args []string) int {
	a, err := parseLexArgs(args)
	if err != nil {
		term.Eprintln("usage: lumac lex [--format=pretty|ndjson] [--strict] <file.lu>")
		return 2
	}

	data, rerr := os.ReadFile(a.file)
	if rerr != nil {
		term.Eprintf("read %s: %v\n", a.file, rerr)
		return 1
	}

	toks := drain(lexer.New(string(data)))

	switch a.format {
	case "ndjson":
		enc := json.NewEncoder(os.Stdout)
		for _, t := range toks {
			_ = enc.Encode(tokenRecord{Kind: t.Kind.String(), Lex: t.Lex, Line: t.Line, Col: t.Col})
		}
	default:
		term.Printf("%s", formatPretty(toks))
	}

	if a.strict {
		bad := invalidDiagnostics(toks)
		for _, d := range bad {
			term.Wprintf(os.Stderr, "%s: %s\n", a.file, d.Error())
		}
		if len(bad) > 0 {
			return 1
		}
	}
	return 0
}

// drain collects the whole token stream, EOF sentinel included.
func drain(lx *lexer.Lexer) []lexer.Token {
	var toks []lexer.Token
	for {
		t := lx.Next()
		toks = append(toks, t)
		if t.Kind == lexer.TokEOF {
			return toks
		}
	}
}

func formatPretty(toks []lexer.Token) string {
	var b strings.Builder
	for _, t := range toks {
		lex := t.Lex
		if len(lex) > 40 {
			lex = lex[:37] + "..."
		}
		if lex == "" {
			term.Bprintf(&b, "%d:%d  %s\n", t.Line, t.Col, t.Kind)
		} else {
			term.Bprintf(&b, "%d:%d  %-18s  %q\n", t.Line, t.Col, t.Kind, lex)
		}
	}
	return b.String()
}

// invalidDiagnostics maps every <Invalid> token to a catalogued diagnostic.
func invalidDiagnostics(toks []lexer.Token) []diag.Diagnostic {
	var out []diag.Diagnostic
	for _, t := range toks {
		if t.Kind != lexer.TokInvalid {
			continue
		}
		ce := diag.MustLookupLexer("invalid_char", "LUX0001", "invalid character")
		out = append(out, diag.Diagnostic{
			Span: diag.Span{Start: diag.Pos{Line: t.Line, Col: t.Col}},
			Msg:  ce.ID + ": " + ce.Title + " " + strconv.Quote(t.Lex),
		})
	}
	return out
}
