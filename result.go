package hcaptcha

import (
	"fmt"

	"github.com/Solvro/lib-backend-hcaptcha/internal/verifier"
)

// Result is either Success or Failure.
//
//	switch r := res.(type) {
//	case hcaptcha.Success:
//	case hcaptcha.Failure:
//	}
type Result interface {
	// Passed reports the siteverify "success" flag.
	Passed() bool
	result()
}

// Success is returned when the token was accepted.
type Success struct {
	// ChallengeTS is the challenge timestamp, ISO 8601.
	ChallengeTS string
	// Hostname of the site where the challenge was solved. Untrusted input.
	Hostname string
}

// Failure is returned when siteverify rejected the request.
type Failure struct {
	// ChallengeTS and Hostname are empty when the service did not get far enough
	// to look at the token, e.g. for a bad secret.
	ChallengeTS string
	Hostname    string
	ErrorCodes  []ErrorCode
}

func (Success) Passed() bool { return true }
func (Success) result()      {}

func (Failure) Passed() bool { return false }
func (Failure) result()      {}

// HasCode reports whether code is among the failure's error codes.
func (f Failure) HasCode(code ErrorCode) bool {
	for _, c := range f.ErrorCodes {
		if c == code {
			return true
		}
	}
	return false
}

func (f Failure) String() string {
	return fmt.Sprintf("hcaptcha verification failed: %v", f.ErrorCodes)
}

func parseResult(raw verifier.Response) (Result, error) {
	if raw.Success == nil {
		return nil, fmt.Errorf("%w: missing success", ErrInvalidResponse)
	}

	if *raw.Success {
		if raw.ChallengeTS == nil {
			return nil, fmt.Errorf("%w: success without challenge_ts", ErrInvalidResponse)
		}
		if raw.Hostname == nil {
			return nil, fmt.Errorf("%w: success without hostname", ErrInvalidResponse)
		}
		return Success{
			ChallengeTS: *raw.ChallengeTS,
			Hostname:    *raw.Hostname,
		}, nil
	}

	if raw.ErrorCodes == nil || len(*raw.ErrorCodes) == 0 {
		return nil, fmt.Errorf("%w: failure without error-codes", ErrInvalidResponse)
	}
	codes := make([]ErrorCode, 0, len(*raw.ErrorCodes))
	for _, c := range *raw.ErrorCodes {
		codes = append(codes, ErrorCode(c))
	}
	f := Failure{ErrorCodes: codes}
	if raw.ChallengeTS != nil {
		f.ChallengeTS = *raw.ChallengeTS
	}
	if raw.Hostname != nil {
		f.Hostname = *raw.Hostname
	}
	return f, nil
}
