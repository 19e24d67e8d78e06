package zerrors

import (
	"errors"

	"github.com/torlangballe/zstats/zdict"
	"github.com/torlangballe/zstats/zstr"
)

// ContextError is an error with a title and key/values describing what it happened to.
// A wrapped error is reachable with errors.Is/As.
type ContextError struct {
	Title           string
	SubContextError *ContextError
	WrappedError    error `json:"-"`
	KeyValues       zdict.Dict
}

func (e ContextError) Error() string {
	str := e.Title
	if e.WrappedError != nil {
		str = zstr.Concat(": ", str, e.WrappedError.Error())
	}
	if len(e.KeyValues) != 0 {
		str += " (" + e.KeyValues.Join("=", " ") + ")"
	}
	return str
}

func (e ContextError) Unwrap() error {
	if e.SubContextError != nil {
		return *e.SubContextError
	}
	return e.WrappedError
}

// MakeContextError makes a ContextError with dict as key/values.
// An error in parts is wrapped, the rest make up the title.
func MakeContextError(dict zdict.Dict, parts ...any) ContextError {
	var ie ContextError
	var nparts []any
	ie.KeyValues = dict
	for _, p := range parts {
		err, got := p.(error)
		if got {
			ie.WrappedError = err
			ce, gotCE := ContextErrorFromError(err)
			if gotCE {
				ie.SubContextError = &ce
			}
			continue
		}
		nparts = append(nparts, p)
	}
	ie.Title = zstr.Spaced(nparts...)
	return ie
}

func ContextErrorFromError(err error) (ContextError, bool) {
	var ce ContextError
	if errors.As(err, &ce) {
		return ce, true
	}
	return ContextError{}, false
}
