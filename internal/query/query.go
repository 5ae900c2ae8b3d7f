// Package query implements the generic search/sort/paginate engine behind
// every POST /{entity}/list endpoint. Each entity supplies a Descriptor; the
// engine does the rest, so the seven list handlers share one implementation.
package query

import (
	"errors"
	"fmt"
	"slices"
	"strings"

	"gorm.io/gorm"
)

var (
	// ErrInvalidSortField is returned when sort_field is not a sortable
	// column of the entity. The value is never interpolated into SQL.
	ErrInvalidSortField = errors.New("invalid sort field")
	// ErrInvalidSortDirection is returned when sort_direction is neither
	// "asc" nor "desc".
	ErrInvalidSortDirection = errors.New("invalid sort direction")
)

// RelatedSearch matches the search text against a column of a related table,
// via a correlated EXISTS sub-query. Filtering this way (instead of a join)
// keeps the paginated total correct.
type RelatedSearch struct {
	Table      string // related table, e.g. "drivers"
	ForeignKey string // FK column on the base table, e.g. "driver_id"
	Column     string // searched column on the related table
}

// Descriptor is the per-entity configuration driving List.
type Descriptor struct {
	Table          string
	SearchFields   []string
	RelatedSearch  []RelatedSearch
	Sortable       []string
	DefaultSort    string
	DefaultPerPage int
	Preloads       []string
}

// Params is the client-controlled portion of a list request.
type Params struct {
	SearchText    string `json:"searchtext"`
	SortField     string `json:"sort_field"`
	SortDirection string `json:"sort_direction"`
	Page          int    `json:"page"`
	PerPage       int    `json:"per_page"`
}

// Result is one page of a filtered listing. Total counts the whole filtered
// set, not just this page.
type Result[T any] struct {
	Items   []T
	Total   int64
	Page    int
	PerPage int
}

// List runs the filtered, sorted, paginated query described by desc and p.
//
// Sort policy: an explicit sort_field/sort_direction pair is the primary
// order, with the entity's default field appended ascending as a tie-break.
// (The behavior this replaces re-applied the default sort after the explicit
// one, silently overriding it.) A page past the end of the result set is not
// an error; it yields an empty page with the correct Total.
func List[T any](db *gorm.DB, desc Descriptor, p Params) (Result[T], error) {
	res := Result[T]{
		Items:   []T{},
		Page:    p.Page,
		PerPage: p.PerPage,
	}
	if res.Page < 1 {
		res.Page = 1
	}
	if res.PerPage < 1 {
		res.PerPage = desc.DefaultPerPage
	}

	order, err := orderClauses(desc, p)
	if err != nil {
		return res, err
	}

	tx := db.Model(new(T))
	if search := strings.TrimSpace(p.SearchText); search != "" {
		tx = tx.Where(searchConditions(db, desc, search))
	}

	if err := tx.Count(&res.Total).Error; err != nil {
		return res, err
	}

	for _, preload := range desc.Preloads {
		tx = tx.Preload(preload)
	}
	for _, clause := range order {
		tx = tx.Order(clause)
	}

	offset := (res.Page - 1) * res.PerPage
	if err := tx.Offset(offset).Limit(res.PerPage).Find(&res.Items).Error; err != nil {
		return res, err
	}
	return res, nil
}

// searchConditions builds one OR-group of case-insensitive substring matches
// over the entity's fixed searchable field set.
func searchConditions(db *gorm.DB, desc Descriptor, search string) *gorm.DB {
	pattern := "%" + strings.ToLower(search) + "%"
	group := db.Session(&gorm.Session{NewDB: true})
	first := true

	add := func(expr string) {
		if first {
			group = group.Where(expr, pattern)
			first = false
		} else {
			group = group.Or(expr, pattern)
		}
	}

	for _, field := range desc.SearchFields {
		add(fmt.Sprintf("LOWER(%s.%s) LIKE ?", desc.Table, field))
	}
	for _, rel := range desc.RelatedSearch {
		add(fmt.Sprintf(
			"EXISTS (SELECT 1 FROM %s WHERE %s.id = %s.%s AND LOWER(%s.%s) LIKE ?)",
			rel.Table, rel.Table, desc.Table, rel.ForeignKey, rel.Table, rel.Column,
		))
	}
	return group
}

// orderClauses validates the requested sort against the descriptor and
// resolves the final ordering. A custom sort only applies when both field and
// direction are present, matching the list request contract.
func orderClauses(desc Descriptor, p Params) ([]string, error) {
	if p.SortField == "" || p.SortDirection == "" {
		return []string{desc.DefaultSort + " asc"}, nil
	}

	if !slices.Contains(desc.Sortable, p.SortField) {
		return nil, fmt.Errorf("%w: %q", ErrInvalidSortField, p.SortField)
	}
	direction := strings.ToLower(p.SortDirection)
	if direction != "asc" && direction != "desc" {
		return nil, fmt.Errorf("%w: %q", ErrInvalidSortDirection, p.SortDirection)
	}

	clauses := []string{p.SortField + " " + direction}
	if p.SortField != desc.DefaultSort {
		clauses = append(clauses, desc.DefaultSort+" asc")
	}
	return clauses, nil
}
