package term

import (
	"fmt"
	"io"
)

// Wprintf writes formatted text to an io.Writer, discarding the (n, err)
// pair that fmt.Fprintf returns.
func Wprintf(w io.Writer, format string, a ...any) { _, _ = fmt.Fprintf(w, format, a...) }
