package cmd

import (
	"errors"
	"fmt"
	"io"

	"github.com/fatih/color"

	"github.com/mobilitydb/meos-go/pkg/meos"
)

var (
	red    = color.New(color.FgRed)
	yellow = color.New(color.FgYellow)
	green  = color.New(color.FgGreen)
	bold   = color.New(color.Bold)
)

// Exit codes returned by meosctl.
const (
	exitFailure  = 1
	exitInput    = 2
	exitNoNative = 3
)

// PrintError writes err to w in red, with a hint when the binary lacks the
// native library.
func PrintError(w io.Writer, err error) {
	_, _ = red.Fprintf(w, "✗ %v\n", err)
	if errors.Is(err, meos.ErrNotBuilt) {
		_, _ = yellow.Fprintln(w, "  rebuild with CGO_ENABLED=1 and -tags meos to link "+meos.NativeLibrary)
	}
}

// ExitCode maps err to the process exit status.
func ExitCode(err error) int {
	var pe *meos.ParseError
	var ce *meos.ConstructionError
	switch {
	case errors.Is(err, meos.ErrNotBuilt):
		return exitNoNative
	case errors.As(err, &pe), errors.As(err, &ce):
		return exitInput
	default:
		return exitFailure
	}
}

func success(w io.Writer, format string, args ...any) {
	_, _ = green.Fprintf(w, "✓ "+format+"\n", args...)
}

func warn(w io.Writer, format string, args ...any) {
	_, _ = yellow.Fprintf(w, "⚠ "+format+"\n", args...)
}

func label(w io.Writer, name string, value any) {
	_, _ = bold.Fprintf(w, "%-12s", name+":")
	fmt.Fprintln(w, value)
}
