// 2 Oct 2026
// Messages to the user go to stderr with a level tag in front,
// [INFO] blah, [WARNING] blah. The tags are coloured if stderr
// is a terminal.

package common

import (
	"fmt"
	"io"
	"log"
	"os"

	"github.com/fatih/color"
)

var (
	lgr   = log.New(os.Stderr, "", 0)
	quiet bool

	infoTag = color.New(color.FgGreen).SprintFunc()
	warnTag = color.New(color.FgYellow).SprintFunc()
	errTag  = color.New(color.FgRed, color.Bold).SprintFunc()
)

// SetQuiet turns informational messages off (or on again).
// Warnings and errors are always written.
func SetQuiet(q bool) { quiet = q }

// NoColor switches off the coloured level tags.
func NoColor() { color.NoColor = true }

// SetLogOutput sends messages somewhere other than stderr. Only
// used in testing.
func SetLogOutput(w io.Writer) { lgr.SetOutput(w) }

// Info writes an informational message, unless we are quiet.
func Info(format string, a ...any) {
	if quiet {
		return
	}
	lgr.Print(infoTag("[INFO]"), " ", fmt.Sprintf(format, a...))
}

// Warn is for things that are wrong with the input, but we can
// carry on.
func Warn(format string, a ...any) {
	lgr.Print(warnTag("[WARNING]"), " ", fmt.Sprintf(format, a...))
}

// Error reports an error. It does not exit. That is left to main.
func Error(err error) {
	lgr.Print(errTag("[ERROR]"), " ", err)
}
