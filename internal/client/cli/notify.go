package cli

import (
	"fmt"
	"io"
)

// printNotifier shows wizard outcomes as terminal lines.
type printNotifier struct {
	w io.Writer
}

func (n printNotifier) Success(msg string) { fmt.Fprintln(n.w, "[ok]", msg) }

func (n printNotifier) Failure(msg string) { fmt.Fprintln(n.w, "[error]", msg) }
