package logs

import (
	"fmt"
	"io"
	"os"

	"github.com/reusee/pseudo/cmds"
)

// Writer receives text log records. Diagnostics and dumps go to stdout, so
// logs default to stderr.
type Writer io.Writer

var logFile = cmds.Var[string]("-log-file")

func (Module) Writer() Writer {
	if *logFile == "" {
		return os.Stderr
	}
	f, err := os.OpenFile(*logFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		fmt.Fprintf(os.Stderr, "open log file: %v\n", err)
		return os.Stderr
	}
	return f
}
