package fortie

import (
	"strconv"
	"time"
)

// QueryParams is an ordered set of query parameters. Keys keep the order
// in which they were first set.
type QueryParams struct {
	keys   []string
	values map[string]string
}

// NewQueryParams creates an empty parameter set.
func NewQueryParams() *QueryParams {
	return &QueryParams{values: make(map[string]string)}
}

// Set assigns value to key. Setting an existing key keeps its position.
func (q *QueryParams) Set(key, value string) *QueryParams {
	if q.values == nil {
		q.values = make(map[string]string)
	}

	if _, ok := q.values[key]; !ok {
		q.keys = append(q.keys, key)
	}

	q.values[key] = value

	return q
}

// Get returns the value for key and whether it is present.
func (q *QueryParams) Get(key string) (string, bool) {
	if q == nil {
		return "", false
	}

	value, ok := q.values[key]

	return value, ok
}

// Len returns the number of parameters.
func (q *QueryParams) Len() int {
	if q == nil {
		return 0
	}

	return len(q.keys)
}

// Each calls fn for every parameter in insertion order.
func (q *QueryParams) Each(fn func(key, value string)) {
	if q == nil {
		return
	}

	for _, key := range q.keys {
		fn(key, q.values[key])
	}
}

// WithPage sets the page parameter.
func (q *QueryParams) WithPage(page int) *QueryParams {
	return q.Set("page", strconv.Itoa(page))
}

// WithLimit sets the number of records per page.
func (q *QueryParams) WithLimit(limit int) *QueryParams {
	return q.Set("limit", strconv.Itoa(limit))
}

// WithOffset sets the record offset.
func (q *QueryParams) WithOffset(offset int) *QueryParams {
	return q.Set("offset", strconv.Itoa(offset))
}

// WithSortBy sets the field to sort by.
func (q *QueryParams) WithSortBy(field string) *QueryParams {
	return q.Set("sortby", field)
}

// WithSortOrder sets the sort order, "ascending" or "descending".
func (q *QueryParams) WithSortOrder(order string) *QueryParams {
	return q.Set("sortorder", order)
}

// WithFilter sets a predefined list filter such as "active".
func (q *QueryParams) WithFilter(filter string) *QueryParams {
	return q.Set("filter", filter)
}

// WithLastModified restricts the list to records changed after t.
func (q *QueryParams) WithLastModified(t time.Time) *QueryParams {
	return q.Set("lastmodified", t.Format("2006-01-02 15:04"))
}

// WithFinancialYear selects a financial year by id.
func (q *QueryParams) WithFinancialYear(id int) *QueryParams {
	return q.Set("financialyear", strconv.Itoa(id))
}
