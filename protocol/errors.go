package protocol

import (
	"errors"
	"fmt"
)

// ErrorKind classifies every failure the engine reports
type ErrorKind int

const (
	Unknown ErrorKind = iota
	InvalidArgument
	InsufficientFunds
	InsufficientSupply
	CapacityExceeded
	NotFound
	InvalidSelection
	IllegalAction
	DomainError
	TypeMismatch
)

var kindNames = []string{
	"unknown",
	"invalid argument",
	"insufficient funds",
	"insufficient supply",
	"capacity exceeded",
	"not found",
	"invalid selection",
	"illegal action",
	"domain error",
	"type mismatch",
}

func (k ErrorKind) String() string {
	if k < 0 || int(k) >= len(kindNames) {
		return kindNames[Unknown]
	}
	return kindNames[k]
}

// Error is a failure tagged with its kind
type Error struct {
	Kind ErrorKind
	Msg  string
}

func (e *Error) Error() string {
	if e.Msg == "" {
		return e.Kind.String()
	}
	return e.Kind.String() + ": " + e.Msg
}

// Is matches any *Error of the same kind when target carries no message,
// so the sentinels below can be used with errors.Is.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	return t.Kind == e.Kind && (t.Msg == "" || t.Msg == e.Msg)
}

var (
	ErrInvalidArgument    = &Error{Kind: InvalidArgument}
	ErrInsufficientFunds  = &Error{Kind: InsufficientFunds}
	ErrInsufficientSupply = &Error{Kind: InsufficientSupply}
	ErrCapacityExceeded   = &Error{Kind: CapacityExceeded}
	ErrNotFound           = &Error{Kind: NotFound}
	ErrInvalidSelection   = &Error{Kind: InvalidSelection}
	ErrIllegalAction      = &Error{Kind: IllegalAction}
	ErrDomain             = &Error{Kind: DomainError}
	ErrTypeMismatch       = &Error{Kind: TypeMismatch}
)

// Errorf builds a tagged error
func Errorf(kind ErrorKind, format string, a ...interface{}) error {
	return &Error{Kind: kind, Msg: fmt.Sprintf(format, a...)}
}

// KindOf returns the kind of the first tagged error in err's chain, or Unknown
func KindOf(err error) ErrorKind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return Unknown
}
