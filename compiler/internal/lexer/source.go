package lexer

// Source is the minimal token stream a parser consumes: successive calls to
// Next yield one token each, ending with an endlessly repeated TokEOF.
type Source interface {
	Next() Token
}

// lexSource adapts a Lexer to the Source interface.
type lexSource struct {
	lx *Lexer
}

// NewSource returns a Source backed by a fresh Lexer over src.
func NewSource(src string) Source {
	return &lexSource{lx: New(src)}
}

// Next satisfies Source by delegating to the underlying Lexer.
func (s *lexSource) Next() Token {
	return s.lx.Next()
}
