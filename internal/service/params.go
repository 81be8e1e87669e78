package service

import (
	"strings"

	"go-appmanager/internal/repository/dao"
	"go-appmanager/internal/util/errcode"
)

// ListParams are the raw list controls as the handler decoded them.
// Order uses the "field" / "-field" convention; IDs carries the optional
// id__in filter (HasIDs distinguishes "absent" from "empty").
type ListParams struct {
	Page   int
	Limit  int
	Order  string
	IDs    []int64
	HasIDs bool
}

// PageMeta is echoed back under _metadata on every list response.
type PageMeta struct {
	Page         int    `json:"page"`
	Limit        int    `json:"limit"`
	Order        string `json:"order"`
	TotalRecords int64  `json:"total_records"`
}

var appOrderColumns = map[string]string{
	"id": "id", "name": "name", "online": "online",
	"created": "created", "updated": "updated",
}

var menuItemOrderColumns = map[string]string{
	"id": "id", "name": "name", "sequence": "sequence",
	"created": "created", "updated": "updated",
}

// buildFilter validates the list controls against the per-entity order
// whitelist. Any bad value rejects the whole request with the list
// search code.
func buildFilter(p ListParams, badSearchCode string, columns map[string]string) (dao.ListFilter, *errcode.Error) {
	if p.Page < 0 || p.Limit < 0 || p.Limit > 200 {
		return dao.ListFilter{}, errcode.BadRequest(badSearchCode)
	}
	order := ""
	if p.Order != "" {
		field := p.Order
		dir := "ASC"
		if strings.HasPrefix(field, "-") {
			field = field[1:]
			dir = "DESC"
		}
		col, ok := columns[field]
		if !ok {
			return dao.ListFilter{}, errcode.BadRequest(badSearchCode)
		}
		order = col + " " + dir
	}
	return dao.ListFilter{
		Page:   p.Page,
		Limit:  p.Limit,
		Order:  order,
		IDs:    p.IDs,
		HasIDs: p.HasIDs,
	}, nil
}

func pageMeta(p ListParams, total int64) PageMeta {
	page := p.Page
	if page <= 0 {
		page = 1
	}
	limit := p.Limit
	if limit <= 0 {
		limit = 20
	}
	order := p.Order
	if order == "" {
		order = "id"
	}
	return PageMeta{Page: page, Limit: limit, Order: order, TotalRecords: total}
}

// intersect keeps the members of a that are also in b, preserving a's
// order. Both filters constrain the same column, so the sets must be
// merged before the query is issued.
func intersect(a, b []int64) []int64 {
	in := make(map[int64]struct{}, len(b))
	for _, v := range b {
		in[v] = struct{}{}
	}
	out := make([]int64, 0, len(a))
	for _, v := range a {
		if _, ok := in[v]; ok {
			out = append(out, v)
		}
	}
	return out
}
