package order

import "errors"

// error codes surfaced to controllers

type ErrCode string

const (
	ErrValidation        ErrCode = "VALIDATION"
	ErrNoStock           ErrCode = "NO_STOCK"
	ErrIllegalTransition ErrCode = "ILLEGAL_TRANSITION"
	ErrNotFound          ErrCode = "NOT_FOUND"
	ErrNotOwner          ErrCode = "NOT_OWNER"
)

type codedError struct {
	code ErrCode
	msg  string
}

func (e codedError) Error() string {
	if e.msg != "" {
		return e.msg
	}
	return string(e.code)
}
func (e codedError) Code() ErrCode { return e.code }

func makeErr(c ErrCode, msg string) error { return codedError{code: c, msg: msg} }

// Code extracts the error code, "" for uncoded errors.
func Code(err error) ErrCode {
	var ce interface{ Code() ErrCode }
	if errors.As(err, &ce) {
		return ce.Code()
	}
	return ""
}
