package models

import (
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"gorm.io/gorm"
)

const (
	defaultPerPage = 25
	maxPerPage     = 200
)

// ListParams carries pagination, sorting and equality filters for register
// listings.
type ListParams struct {
	Page    int
	PerPage int
	SortBy  string
	SortDir string
	Filters map[string]string
	Search  string
}

// ParseListParams reads paging/sorting/filter values from the query string.
// Only the keys named in allowedFilters become WHERE clauses; everything
// else is ignored so callers cannot filter on arbitrary columns.
func ParseListParams(r *http.Request, allowedFilters ...string) (ListParams, error) {
	q := r.URL.Query()
	params := ListParams{
		Page:    1,
		PerPage: defaultPerPage,
		SortBy:  "id",
		SortDir: "asc",
		Filters: map[string]string{},
		Search:  strings.TrimSpace(q.Get("search")),
	}

	if v := q.Get("page"); v != "" {
		page, err := strconv.Atoi(v)
		if err != nil || page < 1 {
			return params, fmt.Errorf("invalid page %q", v)
		}
		params.Page = page
	}
	if v := q.Get("per_page"); v != "" {
		perPage, err := strconv.Atoi(v)
		if err != nil || perPage < 1 {
			return params, fmt.Errorf("invalid per_page %q", v)
		}
		if perPage > maxPerPage {
			perPage = maxPerPage
		}
		params.PerPage = perPage
	}
	if v := q.Get("sort_by"); v != "" {
		params.SortBy = v
	}
	if v := strings.ToLower(q.Get("sort_dir")); v == "desc" {
		params.SortDir = "desc"
	}

	for _, key := range allowedFilters {
		if v := q.Get(key); v != "" {
			params.Filters[key] = v
		}
	}
	return params, nil
}

// PagedResponse is the envelope for register listings.
type PagedResponse struct {
	Data       interface{} `json:"data"`
	Total      int64       `json:"total"`
	Page       int         `json:"page"`
	PerPage    int         `json:"perPage"`
	TotalPages int         `json:"totalPages"`
}

// ListService pages one model's table with the caller's filters applied.
type ListService struct {
	db    *gorm.DB
	model interface{}
	// sortable whitelists ORDER BY columns; an unknown sort_by falls back
	// to id so raw query input never reaches the SQL string.
	sortable map[string]bool
}

func NewListService(db *gorm.DB, model interface{}, sortableColumns ...string) *ListService {
	sortable := map[string]bool{"id": true, "created_at": true, "updated_at": true}
	for _, c := range sortableColumns {
		sortable[c] = true
	}
	return &ListService{db: db, model: model, sortable: sortable}
}

// GetPage runs the filtered count + page query into dest (a pointer to a
// slice of the service's model).
func (s *ListService) GetPage(params ListParams, dest interface{}, searchColumns ...string) (*PagedResponse, error) {
	query := s.db.Model(s.model)
	for column, value := range params.Filters {
		query = query.Where(fmt.Sprintf("%s = ?", column), value)
	}
	if params.Search != "" && len(searchColumns) > 0 {
		clause := make([]string, len(searchColumns))
		args := make([]interface{}, len(searchColumns))
		for i, col := range searchColumns {
			clause[i] = fmt.Sprintf("%s ILIKE ?", col)
			args[i] = "%" + params.Search + "%"
		}
		query = query.Where(strings.Join(clause, " OR "), args...)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, err
	}

	sortBy := params.SortBy
	if !s.sortable[sortBy] {
		sortBy = "id"
	}
	order := sortBy + " asc"
	if params.SortDir == "desc" {
		order = sortBy + " desc"
	}

	offset := (params.Page - 1) * params.PerPage
	if err := query.Order(order).Limit(params.PerPage).Offset(offset).Find(dest).Error; err != nil {
		return nil, err
	}

	totalPages := int((total + int64(params.PerPage) - 1) / int64(params.PerPage))
	return &PagedResponse{
		Data:       dest,
		Total:      total,
		Page:       params.Page,
		PerPage:    params.PerPage,
		TotalPages: totalPages,
	}, nil
}
