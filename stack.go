package httperror

import (
	"fmt"
	"strings"

	"github.com/pkg/errors"
)

// constructorDepth is the number of frames between captureStack and the caller
// of a public constructor: captureStack, newHTTPError, the constructor itself.
const constructorDepth = 3

type stackTracer interface {
	StackTrace() errors.StackTrace
}

// captureStack records the stack of the code that called a public constructor.
// It must only be called from newHTTPError.
func captureStack() errors.StackTrace {
	st := errors.New("").(stackTracer).StackTrace()
	if len(st) <= constructorDepth {
		return nil
	}
	return st[constructorDepth:]
}

func formatStack(st errors.StackTrace) string {
	return strings.TrimPrefix(fmt.Sprintf("%+v", st), "\n")
}
