package customer

import (
	"fmt"
	"math"
	"strings"
)

const (
	DefaultPage  = 1
	DefaultLimit = 10
)

// sortColumns maps the accepted sortBy values onto column names. Identifiers
// cannot be bound as parameters, so nothing outside this map ever reaches
// the ORDER BY clause.
var sortColumns = map[string]string{
	"id":          "id",
	"firstName":   "first_name",
	"lastName":    "last_name",
	"phoneNumber": "phone_number",
}

// likeEscaper makes the search term match literally under ILIKE ... ESCAPE '\'.
var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// ListQuery is a page query and its matching count query.
type ListQuery struct {
	Query      string
	Args       []interface{}
	CountQuery string
	CountArgs  []interface{}
	Page       int
	Limit      int
	Offset     int
}

func sortColumn(sortBy string) string {
	if col, ok := sortColumns[sortBy]; ok {
		return col
	}
	return "id"
}

func sortDirection(order string) string {
	switch strings.ToLower(strings.TrimSpace(order)) {
	case "desc", "descending":
		return "DESC"
	default:
		return "ASC"
	}
}

// BuildListQuery turns listing parameters into parameterized statements.
// Search terms, limit and offset are always bound; only the allow-listed
// sort column and direction are written into the statement text.
func BuildListQuery(p ListParams) ListQuery {
	page := p.Page
	if page < 1 {
		page = DefaultPage
	}
	limit := p.Limit
	if limit < 1 {
		limit = DefaultLimit
	}
	offset := pageOffset(page, limit)

	where := []string{}
	args := []interface{}{}

	if p.Search != "" {
		pattern := "%" + likeEscaper.Replace(p.Search) + "%"
		where = append(where, fmt.Sprintf(
			`(first_name ILIKE $%d ESCAPE '\' OR last_name ILIKE $%d ESCAPE '\' OR phone_number ILIKE $%d ESCAPE '\')`,
			len(args)+1, len(args)+2, len(args)+3,
		))
		args = append(args, pattern, pattern, pattern)
	}

	whereClause := ""
	if len(where) > 0 {
		whereClause = " WHERE " + strings.Join(where, " AND ")
	}

	countArgs := make([]interface{}, len(args))
	copy(countArgs, args)

	query := "SELECT id, first_name, last_name, phone_number FROM customers" + whereClause
	query += fmt.Sprintf(" ORDER BY %s %s", sortColumn(p.SortBy), sortDirection(p.Order))
	query += fmt.Sprintf(" LIMIT $%d OFFSET $%d", len(args)+1, len(args)+2)
	args = append(args, limit, offset)

	return ListQuery{
		Query:      query,
		Args:       args,
		CountQuery: "SELECT COUNT(*) FROM customers" + whereClause,
		CountArgs:  countArgs,
		Page:       page,
		Limit:      limit,
		Offset:     offset,
	}
}

// pageOffset returns (page-1)*limit, saturating at math.MaxInt so a page
// past the end reads as empty instead of wrapping around to the first rows.
func pageOffset(page, limit int) int {
	if !PageInRange(page, limit) {
		return math.MaxInt
	}
	return (page - 1) * limit
}

// PageInRange reports whether (page-1)*limit fits in an int.
func PageInRange(page, limit int) bool {
	if page < 1 || limit < 1 {
		return true
	}
	return page-1 <= math.MaxInt/limit
}

// TotalPages is ceil(total / limit).
func TotalPages(total int64, limit int) int {
	if limit < 1 || total <= 0 {
		return 0
	}
	return int((total + int64(limit) - 1) / int64(limit))
}
