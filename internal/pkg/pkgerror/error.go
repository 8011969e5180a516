package pkgerror

import "errors"

type Code int

const (
	CodeUnknown Code = iota
	CodeInvalidInput
	CodeNotFound
	CodeUnprocessable
	CodeUnavailable
)

// Business is an error whose message is safe to show to API clients.
type Business struct {
	msg  string
	code Code
	err  error
}

func NewBusiness(msg string, code Code) *Business {
	return &Business{msg: msg, code: code}
}

// WrapBusiness keeps err reachable through errors.Is/As.
func WrapBusiness(err error, msg string, code Code) *Business {
	return &Business{msg: msg, code: code, err: err}
}

func (b *Business) Error() string {
	if b.err != nil {
		return b.msg + ": " + b.err.Error()
	}
	return b.msg
}

func (b *Business) Message() string { return b.msg }

func (b *Business) Code() Code { return b.code }

func (b *Business) Unwrap() error { return b.err }

func AsBusiness(err error) (*Business, bool) {
	var b *Business
	if errors.As(err, &b) {
		return b, true
	}
	return nil, false
}
