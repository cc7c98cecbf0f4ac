package model

// WebResponse is the success envelope for every endpoint
type WebResponse struct {
	Data   any     `json:"data"`
	Paging *Paging `json:"paging,omitempty"`
}

// Paging describes the page window of a list response
type Paging struct {
	Page      int   `json:"page"`       // Current page, 1-based
	TotalPage int   `json:"total_page"` // ceil(total_item / size)
	TotalItem int64 `json:"total_item"` // Total matching rows
}
