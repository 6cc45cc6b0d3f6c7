package kinds

import (
	"fmt"
	"strings"

	pkgerrors "github.com/pkg/errors"
)

type stackTracer interface {
	StackTrace() pkgerrors.StackTrace
}

// captureTrace renders the current goroutine's stack, dropping the innermost
// skip frames (captureTrace itself counts as the first).
func captureTrace(skip int) string {
	st, ok := pkgerrors.New("").(stackTracer)
	if !ok {
		return ""
	}
	frames := st.StackTrace()
	if skip > len(frames) {
		skip = len(frames)
	}
	return strings.TrimPrefix(fmt.Sprintf("%+v", frames[skip:]), "\n")
}
