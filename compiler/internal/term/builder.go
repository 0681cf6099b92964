package term

import (
	"fmt"
	"strings"
)

// Bprintf appends formatted text to a strings.Builder, discarding the
// (n, err) pair that fmt.Fprintf returns.
func Bprintf(b *strings.Builder, format string, a ...any) { _, _ = fmt.Fprintf(b, format, a...) }
