package usecase

import "github.com/wekeepgrowing/semo-todo/internal/domain/entity"

// PageLimits bounds the page size requested by clients.
type PageLimits struct {
	Default int
	Max     int
}

// Apply clamps p into the configured range.
func (l PageLimits) Apply(p entity.PaginationParams) entity.PaginationParams {
	p.NormalizeWith(l.Default, l.Max)
	return p
}
