package verifier

import "context"

// Request holds the siteverify form fields. RemoteIP and SiteKey are sent only when set.
type Request struct {
	Secret   string
	Response string
	RemoteIP string
	SiteKey  string
}

// Response is the siteverify body as decoded, before any shape checks.
// Pointer fields distinguish a missing key from its zero value.
type Response struct {
	Success     *bool     `json:"success"`
	ChallengeTS *string   `json:"challenge_ts"`
	Hostname    *string   `json:"hostname"`
	ErrorCodes  *[]string `json:"error-codes"`
}

// Verifier posts a single siteverify request.
type Verifier interface {
	Verify(ctx context.Context, req Request) (Response, error)
}
