package pagination

const (
	DefaultPageSize = 10
	MaxPageSize     = 100
)

// PagedResponse is one page of a list, in the shape the remote services answer with.
type PagedResponse[T any] struct {
	Docs       []T   `json:"docs"`
	TotalDocs  int64 `json:"totalDocs"`
	Limit      int   `json:"limit"`
	Page       int   `json:"page"`
	TotalPages int   `json:"totalPages"`
}

type PageRequest struct {
	Page     int `form:"page" json:"page" binding:"omitempty,min=1"`
	PageSize int `form:"limit" json:"limit" binding:"omitempty,min=1"`
}

// ApplyLimits fills in defaultSize and caps the page size at maxSize. Non-positive
// bounds fall back to DefaultPageSize and MaxPageSize.
func (p *PageRequest) ApplyLimits(defaultSize, maxSize int) {
	if defaultSize <= 0 {
		defaultSize = DefaultPageSize
	}
	if maxSize <= 0 {
		maxSize = MaxPageSize
	}
	if p.Page <= 0 {
		p.Page = 1
	}
	if p.PageSize <= 0 {
		p.PageSize = defaultSize
	}
	if p.PageSize > maxSize {
		p.PageSize = maxSize
	}
}

// TotalPages returns ceil(total/pageSize), 0 when either side is not positive.
func TotalPages(total int64, pageSize int) int {
	if total <= 0 || pageSize <= 0 {
		return 0
	}
	return int((total + int64(pageSize) - 1) / int64(pageSize))
}

// Position is the 1-based rank of the index-th item of page across the whole list.
func Position(page, pageSize, index int) int {
	if page < 1 {
		page = 1
	}
	return pageSize*(page-1) + index + 1
}
