package cli

import (
	"context"
	"fmt"
	"io"
)

// terminalFeedback rings the terminal bell and prints the result of a scan.
type terminalFeedback struct {
	w io.Writer
}

func newTerminalFeedback(w io.Writer) *terminalFeedback {
	return &terminalFeedback{w: w}
}

func (f *terminalFeedback) Success(_ context.Context, code string) {
	fmt.Fprintf(f.w, "\a  + %s\n", code)
}

func (f *terminalFeedback) Duplicate(_ context.Context, code string) {
	fmt.Fprintf(f.w, "\a\a  ! %s is already in this batch\n", code)
}
