package queryparams

// ListParams liste uçlarında kullanılan sayfalama ve sıralama parametreleri.
type ListParams struct {
	Page    int    `query:"page"`
	PerPage int    `query:"per_page"`
	SortBy  string `query:"sort_by"`
	OrderBy string `query:"order_by"` // asc | desc
	Search  string `query:"search"`
}

const (
	DefaultPerPage = 20
	MaxPerPage     = 100
)

// DefaultListParams verilen sıralama kolonu ile varsayılan parametre üretir.
func DefaultListParams(sortBy string) ListParams {
	return ListParams{Page: 1, PerPage: DefaultPerPage, SortBy: sortBy, OrderBy: "asc"}
}

// Validate parametreleri güvenli aralıklara çeker.
func (p *ListParams) Validate() {
	if p.Page < 1 {
		p.Page = 1
	}
	if p.PerPage < 1 {
		p.PerPage = DefaultPerPage
	}
	if p.PerPage > MaxPerPage {
		p.PerPage = MaxPerPage
	}
	if p.OrderBy != "asc" && p.OrderBy != "desc" {
		p.OrderBy = "asc"
	}
}

// Offset SQL OFFSET değerini hesaplar.
func (p ListParams) Offset() int {
	return (p.Page - 1) * p.PerPage
}

// PaginationMeta sayfalama üst verisi.
type PaginationMeta struct {
	CurrentPage int   `json:"current_page"`
	PerPage     int   `json:"per_page"`
	TotalItems  int64 `json:"total_items"`
	TotalPages  int   `json:"total_pages"`
}

// PaginatedResult sayfalanmış liste yanıtı.
type PaginatedResult struct {
	Data interface{}    `json:"data"`
	Meta PaginationMeta `json:"meta"`
}

// CalculateTotalPages toplam sayfa sayısını hesaplar.
func CalculateTotalPages(totalItems int64, perPage int) int {
	if perPage <= 0 {
		return 0
	}
	pages := int(totalItems) / perPage
	if int(totalItems)%perPage != 0 {
		pages++
	}
	return pages
}
