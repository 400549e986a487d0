package verifier

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
)

// HCaptchaEndpoint is the public hCaptcha siteverify URL.
const HCaptchaEndpoint = "https://api.hcaptcha.com/siteverify"

type HCaptcha struct {
	Endpoint string
	Client   *http.Client
}

func NewHCaptcha(endpoint string, client *http.Client) *HCaptcha {
	if endpoint == "" {
		endpoint = HCaptchaEndpoint
	}
	if client == nil {
		client = http.DefaultClient
	}
	return &HCaptcha{
		Endpoint: endpoint,
		Client:   client,
	}
}

// Form encodes req the way siteverify expects it.
func Form(req Request) url.Values {
	form := url.Values{}
	form.Set("secret", req.Secret)
	form.Set("response", req.Response)
	if req.RemoteIP != "" {
		form.Set("remoteip", req.RemoteIP)
	}
	if req.SiteKey != "" {
		form.Set("sitekey", req.SiteKey)
	}
	return form
}

func (h *HCaptcha) Verify(ctx context.Context, req Request) (Response, error) {
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, h.Endpoint, strings.NewReader(Form(req).Encode()))
	if err != nil {
		return Response{}, fmt.Errorf("build siteverify request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := h.Client.Do(httpReq)
	if err != nil {
		return Response{}, err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return Response{}, fmt.Errorf("read siteverify body: %w", err)
	}

	// The whole body must be a single JSON value; trailing data is a parse error.
	var raw Response
	if err := json.Unmarshal(body, &raw); err != nil {
		return Response{}, fmt.Errorf("hcaptcha decode error (status %d): %w", resp.StatusCode, err)
	}
	return raw, nil
}
