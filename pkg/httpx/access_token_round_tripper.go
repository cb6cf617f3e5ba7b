package httpx

import (
	"fmt"
	"net/http"
)

const headerNameAccessToken = "X-Access-Token" //nolint:gosec // header name, not a credential

// AccessTokenRoundTripper injects a static access token into every request.
type AccessTokenRoundTripper struct {
	next  http.RoundTripper
	token string
}

func NewAccessTokenRoundTripper(
	next http.RoundTripper,
	token string,
) AccessTokenRoundTripper {
	return AccessTokenRoundTripper{
		next:  next,
		token: token,
	}
}

// RoundTrip implements http.RoundTripper interface.
func (rt AccessTokenRoundTripper) RoundTrip(req *http.Request) (*http.Response, error) {
	if rt.token != "" {
		req.Header.Set(headerNameAccessToken, rt.token)
	}

	resp, err := rt.next.RoundTrip(req)
	if err != nil {
		return nil, fmt.Errorf("next.RoundTrip: %w", err)
	}

	return resp, nil
}
