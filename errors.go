package hcaptcha

import "errors"

var (
	// ErrRequestFailed reports that no usable answer came back: the request could
	// not be sent, the transport failed, or the body was not JSON. The underlying
	// cause stays in the chain.
	ErrRequestFailed = errors.New("hcaptcha request failed")

	// ErrInvalidResponse reports a JSON body that is neither a success nor a failure.
	ErrInvalidResponse = errors.New("hcaptcha response has unexpected shape")
)
