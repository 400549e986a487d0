package hcaptcha

// ErrorCode is a siteverify error code. Codes not listed here are kept as-is.
// See https://docs.hcaptcha.com/#siteverify-error-codes-table.
type ErrorCode string

const (
	MissingInputSecret           ErrorCode = "missing-input-secret"
	InvalidInputSecret           ErrorCode = "invalid-input-secret"
	MissingInputResponse         ErrorCode = "missing-input-response"
	InvalidInputResponse         ErrorCode = "invalid-input-response"
	ExpiredInputResponse         ErrorCode = "expired-input-response"
	AlreadySeenResponse          ErrorCode = "already-seen-response"
	BadRequest                   ErrorCode = "bad-request"
	MissingRemoteIP              ErrorCode = "missing-remoteip"
	InvalidRemoteIP              ErrorCode = "invalid-remoteip"
	NotUsingDummyPasscode        ErrorCode = "not-using-dummy-passcode"
	SitekeySecretMismatch        ErrorCode = "sitekey-secret-mismatch"
	InvalidOrAlreadySeenResponse ErrorCode = "invalid-or-already-seen-response"
)

var descriptions = map[ErrorCode]string{
	MissingInputSecret:           "Your secret key is missing.",
	InvalidInputSecret:           "Your secret key is invalid or malformed.",
	MissingInputResponse:         "The response parameter (verification token) is missing.",
	InvalidInputResponse:         "The response parameter (verification token) is invalid or malformed.",
	ExpiredInputResponse:         "The response parameter (verification token) is expired.",
	AlreadySeenResponse:          "The response parameter (verification token) was already verified once.",
	BadRequest:                   "The request is invalid or malformed.",
	MissingRemoteIP:              "The remoteip parameter is missing.",
	InvalidRemoteIP:              "The remoteip parameter is not a valid IP address or blinded value.",
	NotUsingDummyPasscode:        "You have used a testing sitekey but have not used its matching secret.",
	SitekeySecretMismatch:        "The sitekey is not registered with the provided secret.",
	InvalidOrAlreadySeenResponse: "The response parameter has already been checked, or has another issue.",
}

// Description returns the documented meaning of the code, or the code itself
// when it is not a known one.
func (c ErrorCode) Description() string {
	if d, ok := descriptions[c]; ok {
		return d
	}
	return string(c)
}
