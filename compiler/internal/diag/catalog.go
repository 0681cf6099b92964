package diag

import (
	_ "embed"
	"encoding/json"
	"sync"
)

//go:embed codes.json
var codesJSON []byte

// CodeEntry is a single diagnostic code definition.
type CodeEntry struct {
	ID    string `json:"id"`    // e.g., "LUX0001"
	Title string `json:"title"` // short human title e.g., "invalid character"
	Help  string `json:"help"`  // optional default help text
}

// Registry is the catalog format. Stage-0 only defines lexer codes; parser
// and checker sections will be added when those stages land.
type Registry struct {
	Lexer map[string]CodeEntry `json:"lexer"`
}

var (
	regOnce sync.Once
	reg     Registry
	regErr  error
)

func load() error {
	regOnce.Do(func() {
		if len(codesJSON) == 0 {
			return // empty catalog is allowed
		}
		regErr = json.Unmarshal(codesJSON, &reg)
	})
	return regErr
}

// LookupLexer returns the lexer-domain code entry for key.
func LookupLexer(key string) (CodeEntry, bool) {
	if err := load(); err != nil || reg.Lexer == nil {
		return CodeEntry{}, false
	}
	ce, ok := reg.Lexer[key]
	return ce, ok
}

// MustLookupLexer returns the entry for key if catalogued; otherwise it
// synthesizes one from the defaults so callers keep stable codes even when
// the JSON is temporarily missing an entry.
func MustLookupLexer(key, defaultID, defaultTitle string) CodeEntry {
	if ce, ok := LookupLexer(key); ok {
		return ce
	}
	return CodeEntry{ID: defaultID, Title: defaultTitle}
}
