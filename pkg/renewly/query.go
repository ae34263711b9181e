package renewly

import (
	"net/url"
	"strconv"
)

// ListParams expresses the common options of list endpoints: page size,
// sorting, and resource-specific filters. The zero value is usable; nil
// *ListParams is accepted everywhere and means "no options".
type ListParams struct {
	// Limit is the requested page size. Zero lets the server choose.
	Limit int

	// Sort is the sort_by input, symbolic or raw. See SortBy and SortByRaw.
	Sort Sort

	// Filters holds additional query parameters (customer_id, status,
	// created_at_min, ...). Multiple values for one key are joined by the
	// server's convention of repeating the parameter.
	Filters map[string][]string
}

// NewListParams creates an empty ListParams.
func NewListParams() *ListParams {
	return &ListParams{
		Filters: make(map[string][]string),
	}
}

// WithLimit sets the requested page size.
func (p *ListParams) WithLimit(limit int) *ListParams {
	p.Limit = limit

	return p
}

// WithSort sets a symbolic sort value.
func (p *ListParams) WithSort(v SortValue) *ListParams {
	p.Sort = SortBy(v)

	return p
}

// WithSortRaw sets a raw sort string, validated at dispatch time against the
// resource's legal set.
func (p *ListParams) WithSortRaw(s string) *ListParams {
	p.Sort = SortByRaw(s)

	return p
}

// WithFilter appends filter values for a key.
func (p *ListParams) WithFilter(key string, values ...string) *ListParams {
	if p.Filters == nil {
		p.Filters = make(map[string][]string)
	}

	p.Filters[key] = append(p.Filters[key], values...)

	return p
}

// Values renders the params as a query string mapping, normalizing the sort
// entry against the resource's legal set. A nil receiver yields empty values.
func (p *ListParams) Values(set SortSet) (url.Values, error) {
	values := url.Values{}
	if p == nil {
		return values, nil
	}

	if p.Limit > 0 {
		values.Set("limit", strconv.Itoa(p.Limit))
	}

	for key, vs := range p.Filters {
		for _, v := range vs {
			values.Add(key, v)
		}
	}

	err := NormalizeSort(values, p.Sort, set)
	if err != nil {
		return nil, err
	}

	return values, nil
}
