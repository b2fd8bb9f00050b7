package models

const (
	DefaultPage  = 1
	DefaultLimit = 10
	MaxLimit     = 100
)

type PageRequest struct {
	Page  int
	Limit int
}

// Normalize fills in defaults for unset fields.
func (p PageRequest) Normalize() PageRequest {
	if p.Page < 1 {
		p.Page = DefaultPage
	}
	if p.Limit < 1 {
		p.Limit = DefaultLimit
	}
	if p.Limit > MaxLimit {
		p.Limit = MaxLimit
	}
	return p
}

func (p PageRequest) Skip() int64 {
	return int64((p.Page - 1) * p.Limit)
}

type Meta struct {
	Page       int   `json:"page"`
	Limit      int   `json:"limit"`
	TotalDocs  int64 `json:"totalDocs"`
	TotalPages int   `json:"totalPages"`
}

type Paginated[T any] struct {
	Data []T `json:"data"`
	Meta Meta `json:"meta"`
}

func NewPaginated[T any](items []T, totalDocs int64, page PageRequest) Paginated[T] {
	if items == nil {
		items = []T{}
	}
	return Paginated[T]{
		Data: items,
		Meta: Meta{
			Page:       page.Page,
			Limit:      page.Limit,
			TotalDocs:  totalDocs,
			TotalPages: TotalPages(totalDocs, page.Limit),
		},
	}
}

// TotalPages is ceil(totalDocs / limit).
func TotalPages(totalDocs int64, limit int) int {
	if limit < 1 || totalDocs <= 0 {
		return 0
	}
	return int((totalDocs + int64(limit) - 1) / int64(limit))
}
