package httperror

import (
	"encoding/json"
	"fmt"

	"github.com/davecgh/go-spew/spew"
)

// maxChainLength bounds the walk over a cause's error chain.
const maxChainLength = 1000

// causeIndent is the indentation used for the structured rendering of a cause.
const causeIndent = "    "

// flatPrinter renders values that have no JSON form. MaxDepth bounds
// self-referencing maps and slices, which fmt would recurse into forever.
var flatPrinter = spew.ConfigState{
	Indent:                  " ",
	MaxDepth:                8,
	DisablePointerAddresses: true,
	DisableCapacities:       true,
	SortKeys:                true,
}

// renderCause returns the indented JSON form of cause, or its flat text form
// when it cannot be encoded. It never panics.
func renderCause(cause any) string {
	if s, ok := renderStructured(cause); ok {
		return s
	}
	return renderFlat(cause)
}

func renderStructured(cause any) (s string, ok bool) {
	defer func() {
		if r := recover(); r != nil {
			s, ok = "", false
		}
	}()

	data, err := json.MarshalIndent(cause, "", causeIndent)
	if err != nil {
		return "", false
	}
	return string(data), true
}

func renderFlat(cause any) (s string) {
	defer func() {
		if r := recover(); r != nil {
			s = fmt.Sprintf("%T", cause)
		}
	}()

	switch v := cause.(type) {
	case error:
		return v.Error()
	case fmt.Stringer:
		return v.String()
	}
	return flatPrinter.Sprint(cause)
}

// chainReaches reports whether target is found in the error chain of cause,
// following both Unwrap() error and Unwrap() []error.
func chainReaches(cause any, target *HTTPError) bool {
	err, ok := cause.(error)
	if !ok || err == nil {
		return false
	}

	pending := []error{err}
	for visited := 0; len(pending) > 0 && visited < maxChainLength; visited++ {
		cur := pending[len(pending)-1]
		pending = pending[:len(pending)-1]

		if herr, ok := cur.(*HTTPError); ok && herr == target {
			return true
		}

		switch u := cur.(type) {
		case interface{ Unwrap() error }:
			if next := u.Unwrap(); next != nil {
				pending = append(pending, next)
			}
		case interface{ Unwrap() []error }:
			for _, next := range u.Unwrap() {
				if next != nil {
					pending = append(pending, next)
				}
			}
		}
	}
	return false
}
