package filter

import "github.com/namenest/namenest/pkg/names"

// DefaultPerPage is the number of records per page when a caller does
// not provide a positive value.
const DefaultPerPage = 20

// Page is a window into a filtered collection.
type Page struct {
	Items      []names.Record `json:"items"`
	Page       int            `json:"page"`
	PerPage    int            `json:"perPage"`
	Total      int            `json:"total"`
	TotalPages int            `json:"totalPages"`
}

// Paginate returns the page of records with the given 1-based number.
// Page numbers below 1 are treated as 1. A page beyond the last one
// has no items but still reports totals.
func Paginate(records []names.Record, page, perPage int) Page {
	if perPage < 1 {
		perPage = DefaultPerPage
	}
	if page < 1 {
		page = 1
	}
	total := len(records)
	res := Page{
		Items:      []names.Record{},
		Page:       page,
		PerPage:    perPage,
		Total:      total,
		TotalPages: total / perPage,
	}
	if total%perPage != 0 {
		res.TotalPages++
	}

	// page - 1 < TotalPages keeps the multiplication below total
	if page > res.TotalPages {
		return res
	}
	start := (page - 1) * perPage
	end := start + min(perPage, total-start)
	res.Items = records[start:end:end]
	return res
}
