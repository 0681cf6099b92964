package lexer

// keywords is the reserved-word table, built once and never mutated.
// Lookup is exact-match and case-sensitive: "If" is an identifier.
var keywords = map[string]TokKind{
	"int":      TokKwInt,
	"double":   TokKwDouble,
	"string":   TokKwString,
	"function": TokFunction,
	"return":   TokReturn,
	"if":       TokIf,
	"else":     TokElse,
	"for":      TokFor,
	"continue": TokContinue,
	"break":    TokBreak,
}

// keywordKind reports whether s spells a reserved word and, if so, its kind.
func keywordKind(s string) (TokKind, bool) {
	k, ok := keywords[s]
	return k, ok
}
