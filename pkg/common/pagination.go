package common

import (
	"fmt"
	"math"
	"net/http"
	"strconv"
)

// MaxPageSize caps page_size and limit
const MaxPageSize = 1000

// PaginationParams is a window over an ordered listing.
// A zero Limit means no limit.
type PaginationParams struct {
	Offset int
	Limit  int

	// Page and PageSize are set when the client paged by number
	Page     int
	PageSize int
}

// ExtractPaginationParams reads either page/page_size or offset/limit from the query string.
// page/page_size wins when both are present.
func ExtractPaginationParams(r *http.Request) (PaginationParams, error) {
	query := r.URL.Query()
	var params PaginationParams

	page, err := queryInt(query.Get("page"), "page", 1)
	if err != nil {
		return params, err
	}
	pageSize, err := queryInt(query.Get("page_size"), "page_size", 1)
	if err != nil {
		return params, err
	}

	if page > 0 || pageSize > 0 {
		if page == 0 {
			page = 1
		}
		if pageSize == 0 {
			pageSize = 20
		}
		if pageSize > MaxPageSize {
			pageSize = MaxPageSize
		}
		if page-1 > math.MaxInt/pageSize {
			return params, fmt.Errorf("page %d is out of range", page)
		}
		params.Page = page
		params.PageSize = pageSize
		params.Offset = (page - 1) * pageSize
		params.Limit = pageSize
		return params, nil
	}

	if params.Offset, err = queryInt(query.Get("offset"), "offset", 0); err != nil {
		return params, err
	}
	if params.Limit, err = queryInt(query.Get("limit"), "limit", 1); err != nil {
		return params, err
	}
	if params.Limit > MaxPageSize {
		params.Limit = MaxPageSize
	}
	return params, nil
}

func queryInt(raw, name string, min int) (int, error) {
	if raw == "" {
		return 0, nil
	}
	value, err := strconv.Atoi(raw)
	if err != nil || value < min {
		return 0, fmt.Errorf("%s must be an integer of at least %d", name, min)
	}
	return value, nil
}

// CalculateTotalPages calculates total number of pages
func CalculateTotalPages(total, pageSize int) int {
	if pageSize <= 0 {
		return 0
	}
	pages := total / pageSize
	if total%pageSize > 0 {
		pages++
	}
	return pages
}

// BuildPaginationMeta builds pagination metadata for a window over total items
func BuildPaginationMeta(params PaginationParams, total int) *PaginationInfo {
	info := &PaginationInfo{
		Offset:  params.Offset,
		Limit:   params.Limit,
		Total:   total,
		HasPrev: params.Offset > 0,
		HasNext: params.Limit > 0 && params.Offset+params.Limit < total,
	}
	if params.PageSize > 0 {
		info.Page = params.Page
		info.PageSize = params.PageSize
		info.TotalPages = CalculateTotalPages(total, params.PageSize)
	}
	return info
}
