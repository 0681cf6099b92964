package lexer

import "fmt"

// TokKind enumerates token kinds produced by the lexer.
// Stage-0 covers the full Luma surface syntax; TokFloat and TokStr are
// reserved for float/string literal scanning, which has not landed yet.
type TokKind int

const (
	// Special
	TokInvalid TokKind = iota // unrecognized input character
	TokEOF                    // end of input; repeats forever once reached

	// Literals/identifiers
	TokIdent
	TokInt
	TokFloat // reserved, not yet produced
	TokStr   // reserved, not yet produced

	// Operators/punctuation
	TokAssign // =
	TokEqEq   // ==
	TokStar   // *
	TokSlash  // /
	TokPlus   // +
	TokMinus  // -
	TokGt     // >
	TokGe     // >=
	TokLt     // <
	TokLe     // <=
	TokLBrace // {
	TokRBrace // }
	TokLParen // (
	TokRParen // )
	TokComma  // ,
	TokColon  // :
	TokSemi   // ;

	// Keywords
	TokKwInt
	TokKwDouble
	TokKwString
	TokFunction
	TokReturn
	TokIf
	TokElse
	TokFor
	TokContinue
	TokBreak
)

// kindNames maps every kind to its display form. Punctuation and keywords
// print as their spelling; open classes print as a bracketed class name.
// Printers use this table; the lexer itself never consults it.
var kindNames = [...]string{
	TokInvalid:  "<Invalid>",
	TokEOF:      "<End-Of-Input>",
	TokIdent:    "<Identifier>",
	TokInt:      "<Integer Literal>",
	TokFloat:    "<Float Literal>",
	TokStr:      "<String Literal>",
	TokAssign:   "=",
	TokEqEq:     "==",
	TokStar:     "*",
	TokSlash:    "/",
	TokPlus:     "+",
	TokMinus:    "-",
	TokGt:       ">",
	TokGe:       ">=",
	TokLt:       "<",
	TokLe:       "<=",
	TokLBrace:   "{",
	TokRBrace:   "}",
	TokLParen:   "(",
	TokRParen:   ")",
	TokComma:    ",",
	TokColon:    ":",
	TokSemi:     ";",
	TokKwInt:    "int",
	TokKwDouble: "double",
	TokKwString: "string",
	TokFunction: "function",
	TokReturn:   "return",
	TokIf:       "if",
	TokElse:     "else",
	TokFor:      "for",
	TokContinue: "continue",
	TokBreak:    "break",
}

func (k TokKind) String() string {
	if k >= 0 && int(k) < len(kindNames) && kindNames[k] != "" {
		return kindNames[k]
	}
	return fmt.Sprintf("TokKind(%d)", int(k))
}

// Token is a single lexeme with its start position in the source.
// Line and Col are 1-based; Lex is the exact matched source substring
// (empty only for TokEOF).
type Token struct {
	Kind TokKind
	Lex  string
	Line int
	Col  int
}
