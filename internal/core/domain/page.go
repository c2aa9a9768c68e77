package domain

// Page is the common pagination envelope for list endpoints.
type Page[T any] struct {
	Data       []T   `json:"data"`
	Total      int64 `json:"total"`
	Page       int   `json:"page"`
	TotalPages int   `json:"totalPages"`
}

func NewPage[T any](data []T, total int64, page, limit int) *Page[T] {
	totalPages := 0
	if limit > 0 {
		totalPages = int((total + int64(limit) - 1) / int64(limit))
	}
	return &Page[T]{
		Data:       data,
		Total:      total,
		Page:       page,
		TotalPages: totalPages,
	}
}
