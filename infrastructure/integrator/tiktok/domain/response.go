package tiktokdomain

import jsoniter "github.com/json-iterator/go"

// Response is the envelope every business API endpoint answers with.
// A non-zero Code means the request failed even under HTTP 200.
type Response struct {
	Code      int                 `json:"code"`
	Message   string              `json:"message"`
	RequestID string              `json:"request_id"`
	Data      jsoniter.RawMessage `json:"data"`
}

// PageInfo paginates list endpoints. Report and metadata endpoints expose
// total_number/total_page; the video search also sets page.
type PageInfo struct {
	Page        int `json:"page"`
	PageSize    int `json:"page_size"`
	TotalNumber int `json:"total_number"`
	TotalPage   int `json:"total_page"`
}

// Page is the data block shared by list endpoints.
type Page[T any] struct {
	List     []T      `json:"list"`
	PageInfo PageInfo `json:"page_info"`
}
