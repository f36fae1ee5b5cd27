package database

import (
	"fmt"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/akyairhashvil/salestrack/internal/models"
)

const leadColumns = `id, name, status, value, notes, email, phone, business_name, address, created_at`

type LeadQuery struct {
	columns string
	filters []string
	args    []interface{}
	orderBy string
	limit   int
}

func NewLeadQuery() *LeadQuery {
	return &LeadQuery{columns: leadColumns}
}

func (q *LeadQuery) Where(filter string, args ...interface{}) *LeadQuery {
	q.filters = append(q.filters, filter)
	q.args = append(q.args, args...)
	return q
}

func (q *LeadQuery) WhereStatus(status models.LeadStatus) *LeadQuery {
	if status == "" {
		return q
	}
	return q.Where("status = ?", string(status))
}

// WhereSearch matches the term case-insensitively against name and business
// name. SQLite's LOWER only folds ASCII, so a term with other letters is not
// added to the SQL; FindLeads filters those rows with matchesSearch instead.
func (q *LeadQuery) WhereSearch(term string) *LeadQuery {
	term = strings.TrimSpace(term)
	if term == "" || !isASCII(term) {
		return q
	}
	pattern := "%" + escapeLike(strings.ToLower(term)) + "%"
	return q.Where(`(LOWER(name) LIKE ? ESCAPE '\' OR LOWER(COALESCE(business_name, '')) LIKE ? ESCAPE '\')`, pattern, pattern)
}

func (q *LeadQuery) WhereCreatedSince(since time.Time) *LeadQuery {
	return q.Where("created_at >= ?", toMillis(since))
}

// Select replaces the lead column list, e.g. with COUNT(*).
func (q *LeadQuery) Select(columns string) *LeadQuery {
	q.columns = columns
	return q
}

func (q *LeadQuery) OrderBy(orderBy string) *LeadQuery {
	q.orderBy = orderBy
	return q
}

func (q *LeadQuery) Limit(limit int) *LeadQuery {
	q.limit = limit
	return q
}

func (q *LeadQuery) Build() (string, []interface{}) {
	query := fmt.Sprintf("SELECT %s FROM leads", q.columns)
	if len(q.filters) > 0 {
		query += " WHERE " + strings.Join(q.filters, " AND ")
	}
	if q.orderBy != "" {
		query += " ORDER BY " + q.orderBy
	}
	if q.limit > 0 {
		query += fmt.Sprintf(" LIMIT %d", q.limit)
	}
	return query, q.args
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

func escapeLike(s string) string {
	return likeEscaper.Replace(s)
}

func isASCII(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] >= utf8.RuneSelf {
			return false
		}
	}
	return true
}

// matchesSearch is the Unicode-aware form of WhereSearch, applied in Go.
func matchesSearch(l models.Lead, term string) bool {
	term = strings.ToLower(strings.TrimSpace(term))
	return strings.Contains(strings.ToLower(l.Name), term) ||
		strings.Contains(strings.ToLower(l.BusinessName), term)
}
