// Package queryparams liste uçları için ortak sayfalama/filtreleme
// parametrelerini ve sonuç zarfını tanımlar.
package queryparams

import "strings"

const (
	DefaultPage    = 1
	DefaultPerPage = 10
	MaxPerPage     = 100
	DefaultOrderBy = "desc"
)

// ListParams liste istekleri için query parametrelerini taşır.
type ListParams struct {
	Search  string `query:"search"`
	Filter  string `query:"filter"` // all, sent, not_sent, accepted, declined, pending_rsvp, checked_in
	SortBy  string `query:"sortBy"`
	OrderBy string `query:"sortOrder"`
	Page    int    `query:"page"`
	PerPage int    `query:"limit"`
}

// DefaultListParams verilen sıralama alanıyla varsayılan parametreleri üretir.
func DefaultListParams(sortBy string) ListParams {
	return ListParams{
		Filter:  "all",
		SortBy:  sortBy,
		OrderBy: DefaultOrderBy,
		Page:    DefaultPage,
		PerPage: DefaultPerPage,
	}
}

// Validate parametreleri güvenli aralıklara çeker.
func (p *ListParams) Validate() {
	if p.Page < 1 {
		p.Page = DefaultPage
	}
	if p.PerPage < 1 {
		p.PerPage = DefaultPerPage
	}
	if p.PerPage > MaxPerPage {
		p.PerPage = MaxPerPage
	}
	p.OrderBy = strings.ToLower(p.OrderBy)
	if p.OrderBy != "asc" && p.OrderBy != "desc" {
		p.OrderBy = DefaultOrderBy
	}
	if p.Filter == "" {
		p.Filter = "all"
	}
	p.Search = strings.TrimSpace(p.Search)
}

// CalculateOffset sayfalama için offset değerini hesaplar.
func (p *ListParams) CalculateOffset() int {
	return (p.Page - 1) * p.PerPage
}

// PaginationMeta sayfalama üst verisini taşır.
type PaginationMeta struct {
	CurrentPage int   `json:"page"`
	PerPage     int   `json:"limit"`
	TotalItems  int64 `json:"total"`
	TotalPages  int   `json:"totalPages"`
	HasNext     bool  `json:"hasNext"`
	HasPrev     bool  `json:"hasPrev"`
}

// PaginatedResult liste uçlarının standart dönüş zarfıdır.
type PaginatedResult struct {
	Data interface{}    `json:"data"`
	Meta PaginationMeta `json:"pagination"`
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

// NewMeta sayfalama üst verisini üretir.
func NewMeta(params ListParams, totalItems int64) PaginationMeta {
	totalPages := CalculateTotalPages(totalItems, params.PerPage)
	return PaginationMeta{
		CurrentPage: params.Page,
		PerPage:     params.PerPage,
		TotalItems:  totalItems,
		TotalPages:  totalPages,
		HasNext:     params.Page < totalPages,
		HasPrev:     params.Page > 1,
	}
}
