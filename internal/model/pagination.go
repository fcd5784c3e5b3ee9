package model

// Pagination represents a pagination display parameters
type Pagination struct {
	Number int64 `json:"number,omitempty"`
	Active bool  `json:"active,omitempty"`
	Dots   bool  `json:"dots,omitempty"`
}
