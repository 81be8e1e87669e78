package dao

// ListFilter carries the caller-facing list controls after the service
// layer has validated them. Order is a ready-to-use ORDER BY expression
// taken from a whitelist; IDs is the optional id__in filter and applies
// only when HasIDs is set, so an empty intersection still restricts.
type ListFilter struct {
	Page   int
	Limit  int
	Order  string
	IDs    []int64
	HasIDs bool
}

func (f ListFilter) offset() int {
	page := f.Page
	if page <= 0 {
		page = 1
	}
	return (page - 1) * f.limit()
}

func (f ListFilter) limit() int {
	if f.Limit <= 0 || f.Limit > 200 {
		return 20
	}
	return f.Limit
}

func (f ListFilter) order() string {
	if f.Order == "" {
		return "id ASC"
	}
	return f.Order
}
