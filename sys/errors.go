package sys

import "github.com/cockroachdb/errors"

// panicError turns a recovered panic value into an error that carries the
// stack of the panicking frame.
func panicError(skip int, r any) error {
	if err, ok := r.(error); ok {
		return errors.WrapWithDepthf(skip+1, err, "panic")
	}
	return errors.NewWithDepthf(skip+1, "panic: %v", r)
}

// Guard calls fn and returns its error, or the panic it raised converted to an error.
func Guard(fn func() error) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = panicError(2, r)
		}
	}()
	return fn()
}
