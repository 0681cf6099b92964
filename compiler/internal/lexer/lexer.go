package lexer

import (
	"unicode"
)

// Lexer scans a complete Luma source string into tokens. It skips whitespace
// and // line comments, folds reserved words via the keyword table, and
// reports any unrecognized character as a one-character TokInvalid token.
// A Lexer owns its cursor exclusively; calling Next concurrently on the same
// instance is a caller bug.
type Lexer struct {
	src []rune
	i   int

	line int // 1-based, bumped on every consumed '\n'
	col  int // runes consumed on the current line
}

// New returns a Lexer over the complete source text.
// Streaming input is not supported; src must be the whole program.
func New(src string) *Lexer {
	return &Lexer{
		src:  []rune(src),
		line: 1,
		col:  0,
	}
}

func (lx *Lexer) make(kind TokKind, lex string, line, col int) Token {
	return Token{Kind: kind, Lex: lex, Line: line, Col: col}
}

func (lx *Lexer) peek() (rune, bool) {
	if lx.i >= len(lx.src) {
		return 0, false
	}
	return lx.src[lx.i], true
}

func (lx *Lexer) peekAhead(n int) (rune, bool) {
	if lx.i+n >= len(lx.src) {
		return 0, false
	}
	return lx.src[lx.i+n], true
}

func (lx *Lexer) advance() (rune, bool) {
	ch, ok := lx.peek()
	if !ok {
		return 0, false
	}
	lx.i++
	if ch == '\n' {
		lx.line++
		lx.col = 0
	} else {
		lx.col++
	}
	return ch, true
}

func (lx *Lexer) match(expect rune) bool {
	ch, ok := lx.peek()
	if ok && ch == expect {
		lx.advance()
		return true
	}
	return false
}

func (lx *Lexer) atEOF() bool { return lx.i >= len(lx.src) }

// skipBlanks consumes whitespace and // comments until the cursor rests on a
// substantive character or the end of input. Comment bodies are dropped up to
// (not including) the terminating newline, so line counting stays in advance.
func (lx *Lexer) skipBlanks() {
	for {
		ch, ok := lx.peek()
		if !ok {
			return
		}
		if ch == ' ' || ch == '\t' || ch == '\r' || ch == '\n' {
			lx.advance()
			continue
		}
		if ch == '/' {
			if next, ok := lx.peekAhead(1); ok && next == '/' {
				for {
					ch, ok := lx.peek()
					if !ok || ch == '\n' {
						break
					}
					lx.advance()
				}
				continue
			}
		}
		return
	}
}

// Next returns the next token. Once the input is exhausted it keeps
// returning the TokEOF sentinel with an empty lexeme. It never panics on
// user input: anything unrecognized comes back as TokInvalid and scanning
// resumes at the following character.
func (lx *Lexer) Next() Token {
	lx.skipBlanks()

	if lx.atEOF() {
		return lx.make(TokEOF, "", lx.line, lx.col+1)
	}

	start := lx.i
	startLine, startCol := lx.line, lx.col+1

	if ch, _ := lx.peek(); isAlpha(ch) {
		lex := lx.scanIdent()
		if kind, ok := keywordKind(lex); ok {
			return lx.make(kind, lex, startLine, startCol)
		}
		return lx.make(TokIdent, lex, startLine, startCol)
	}

	if ch, _ := lx.peek(); unicode.IsDigit(ch) {
		return lx.make(TokInt, lx.scanNumber(), startLine, startCol)
	}

	// Two-char operators first: '==' '>=' '<=' always win over their
	// one-char prefixes, so look ahead before committing.
	if lx.match('=') {
		if lx.match('=') {
			return lx.make(TokEqEq, "==", startLine, startCol)
		}
		return lx.make(TokAssign, "=", startLine, startCol)
	}
	if lx.match('>') {
		if lx.match('=') {
			return lx.make(TokGe, ">=", startLine, startCol)
		}
		return lx.make(TokGt, ">", startLine, startCol)
	}
	if lx.match('<') {
		if lx.match('=') {
			return lx.make(TokLe, "<=", startLine, startCol)
		}
		return lx.make(TokLt, "<", startLine, startCol)
	}

	// Single-char operators and punctuation.
	if lx.match('*') {
		return lx.make(TokStar, "*", startLine, startCol)
	}
	if lx.match('/') {
		// skipBlanks already ruled out '//' here
		return lx.make(TokSlash, "/", startLine, startCol)
	}
	if lx.match('+') {
		return lx.make(TokPlus, "+", startLine, startCol)
	}
	if lx.match('-') {
		return lx.make(TokMinus, "-", startLine, startCol)
	}
	if lx.match('{') {
		return lx.make(TokLBrace, "{", startLine, startCol)
	}
	if lx.match('}') {
		return lx.make(TokRBrace, "}", startLine, startCol)
	}
	if lx.match('(') {
		return lx.make(TokLParen, "(", startLine, startCol)
	}
	if lx.match(')') {
		return lx.make(TokRParen, ")", startLine, startCol)
	}
	if lx.match(',') {
		return lx.make(TokComma, ",", startLine, startCol)
	}
	if lx.match(':') {
		return lx.make(TokColon, ":", startLine, startCol)
	}
	if lx.match(';') {
		return lx.make(TokSemi, ";", startLine, startCol)
	}

	// Unknown character: hand it back as a one-char Invalid token and let
	// the caller decide whether that kills the parse.
	lx.advance()
	return lx.make(TokInvalid, string(lx.src[start:lx.i]), startLine, startCol)
}

// ----- scanning helpers -----

func isAlpha(r rune) bool { return unicode.IsLetter(r) }
func isAlnum(r rune) bool { return unicode.IsLetter(r) || unicode.IsDigit(r) }

func (lx *Lexer) scanIdent() string {
	start := lx.i
	for {
		r, ok := lx.peek()
		if !ok || !isAlnum(r) {
			break
		}
		lx.advance()
	}
	return string(lx.src[start:lx.i])
}

func (lx *Lexer) scanNumber() string {
	start := lx.i
	for {
		r, ok := lx.peek()
		if !ok || !unicode.IsDigit(r) {
			break
		}
		lx.advance()
	}
	return string(lx.src[start:lx.i])
}
