package dto

import (
	"net/http"
	"strconv"

	"galerij/shared/constant"
	"galerij/shared/failure"
)

const (
	SortDirAsc  = "ASC"
	SortDirDesc = "DESC"
)

// QueryParams carries paging and ordering for list queries. Only Page and Limit come from
// the request; SortBy and SortDir are set by services from fixed column names.
type QueryParams struct {
	Page    int    `json:"page"`
	Limit   int    `json:"limit"`
	SortBy  string `json:"-"`
	SortDir string `json:"-"`
}

// FromRequest reads page and limit from the query string. Absent values stay zero, which
// means "no paging". Values that are not positive integers are rejected.
//
//	q := dto.QueryParams{}
//	if err := q.FromRequest(r); err != nil { ... }
func (q *QueryParams) FromRequest(r *http.Request) error {
	queryParams := r.URL.Query()

	if page := queryParams.Get(constant.RequestParamPage); page != "" {
		pageInt, err := strconv.Atoi(page)
		if err != nil || pageInt < 1 {
			return failure.InvalidPageParam
		}

		q.Page = pageInt
	}

	if limit := queryParams.Get(constant.RequestParamLimit); limit != "" {
		limitInt, err := strconv.Atoi(limit)
		if err != nil || limitInt < 1 {
			return failure.InvalidLimitParam
		}

		q.Limit = limitInt
	}

	return nil
}

// IsPaged reports whether a limit was requested.
func (q QueryParams) IsPaged() bool {
	return q.Limit > 0
}
