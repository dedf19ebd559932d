package models

// Department groups employees. Names are not unique.
type Department struct {
	ID          int64  `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
}
