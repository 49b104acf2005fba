package persistence

import (
	"errors"
	"fmt"
	"regexp"
	"strings"

	"github.com/stockflow/backend/internal/domain/shared"
	"gorm.io/gorm"
)

// columnNamePattern guards ORDER BY input against injection. Anything that is
// not a plain column identifier falls back to the default ordering.
var columnNamePattern = regexp.MustCompile(`^[a-z_][a-z0-9_]*$`)

// applyFilter applies search, exact-match filters, ordering and pagination to
// a query. searchColumns lists the columns matched by Filter.Search with ILIKE.
func applyFilter(query *gorm.DB, filter shared.Filter, searchColumns ...string) *gorm.DB {
	query = applyFilterWithoutPagination(query, filter, searchColumns...)

	if filter.PageSize > 0 {
		page := filter.Page
		if page < 1 {
			page = 1
		}
		query = query.Offset((page - 1) * filter.PageSize).Limit(filter.PageSize)
	}

	return query
}

// applyFilterWithoutPagination is applyFilter minus offset/limit, for COUNT queries.
func applyFilterWithoutPagination(query *gorm.DB, filter shared.Filter, searchColumns ...string) *gorm.DB {
	if filter.Search != "" && len(searchColumns) > 0 {
		pattern := "%" + filter.Search + "%"
		clauses := make([]string, 0, len(searchColumns))
		args := make([]interface{}, 0, len(searchColumns))
		for _, col := range searchColumns {
			clauses = append(clauses, col+" ILIKE ?")
			args = append(args, pattern)
		}
		query = query.Where(strings.Join(clauses, " OR "), args...)
	}

	for key, value := range filter.Filters {
		if columnNamePattern.MatchString(key) {
			query = query.Where(fmt.Sprintf("%s = ?", key), value)
		}
	}

	orderBy := filter.OrderBy
	if !columnNamePattern.MatchString(orderBy) {
		orderBy = "created_at"
	}
	dir := "DESC"
	if strings.EqualFold(filter.OrderDir, "asc") {
		dir = "ASC"
	}
	query = query.Order(fmt.Sprintf("%s %s", orderBy, dir))

	return query
}

// notFound translates gorm's sentinel into the domain not-found error.
func notFound(err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return shared.ErrNotFound
	}
	return err
}
