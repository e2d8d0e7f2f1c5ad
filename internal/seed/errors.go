package seed

import (
	"errors"
	"fmt"
)

// Kind classifies a seeding failure.
type Kind string

const (
	KindConfig  Kind = "config"
	KindConnect Kind = "connect"
	KindAddress Kind = "address"
	KindQuery   Kind = "query"
	KindInsert  Kind = "insert"
	KindVerify  Kind = "verify"
)

// Error is the single failure type returned by both seeders.
type Error struct {
	Kind Kind
	Op   string
	Err  error
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s: %s: %v", e.Op, e.Kind, e.Err)
}

func (e *Error) Unwrap() error {
	return e.Err
}

// Wrap tags err with kind and op. A nil err stays nil.
func Wrap(kind Kind, op string, err error) error {
	if err == nil {
		return nil
	}
	return &Error{Kind: kind, Op: op, Err: err}
}

// KindOf returns the kind of the first *Error in err's chain, or "".
func KindOf(err error) Kind {
	var seedErr *Error
	if errors.As(err, &seedErr) {
		return seedErr.Kind
	}
	return ""
}
