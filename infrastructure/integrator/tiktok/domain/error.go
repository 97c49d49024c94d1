package tiktokdomain

import "fmt"

// APIError is a business API failure, either a non-zero envelope code or a
// non-200 HTTP status.
type APIError struct {
	Code       int    `json:"code"`
	Message    string `json:"message"`
	RequestID  string `json:"request_id"`
	HTTPStatus int    `json:"-"`
}

func (e *APIError) Error() string {
	return fmt.Sprintf("tiktok api error %d: %s (request_id=%s)", e.Code, e.Message, e.RequestID)
}

// IsRateLimited reports the too-many-requests code family.
func (e *APIError) IsRateLimited() bool {
	return e.Code == 40100 || e.HTTPStatus == 429
}

// IsAuthError reports invalid or expired access token codes.
func (e *APIError) IsAuthError() bool {
	return e.Code == 40001 || e.Code == 40104 || e.Code == 40105
}
