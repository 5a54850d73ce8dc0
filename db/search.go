// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package db

import (
	"errors"
	"fmt"
	"strings"
)

// ErrEmptyFilter is returned when a search names neither title nor category
var ErrEmptyFilter = errors.New("at least one of title or category is required")

// QuestionFilter holds the optional search terms for questions.
// Blank terms are ignored.
type QuestionFilter struct {
	Title    string
	Category string
}

// IsEmpty reports whether no search term is set
func (f QuestionFilter) IsEmpty() bool {
	return strings.TrimSpace(f.Title) == "" && strings.TrimSpace(f.Category) == ""
}

// whereBuilder keeps predicates and their bound values in lockstep.
// Each placeholder number is the position of its value in args.
type whereBuilder struct {
	fold    string
	clauses []string
	args    []any
}

// containsFold adds a case-insensitive substring match on column
func (b *whereBuilder) containsFold(column, value string) {
	b.args = append(b.args, "%"+escapeLike(value)+"%")
	b.clauses = append(b.clauses, fmt.Sprintf(`%[1]s(%[2]s) LIKE %[1]s($%[3]d) ESCAPE '\'`, b.fold, column, len(b.args)))
}

func (b *whereBuilder) String() string {
	if len(b.clauses) == 0 {
		return ""
	}
	return " WHERE " + strings.Join(b.clauses, " AND ")
}

// BuildSearchQuery assembles the question search statement and its arguments
// for the given dialect
func BuildSearchQuery(dialect string, filter QuestionFilter) (string, []any, error) {
	if filter.IsEmpty() {
		return "", nil, ErrEmptyFilter
	}

	b := whereBuilder{fold: foldFunc(dialect)}
	if title := strings.TrimSpace(filter.Title); title != "" {
		b.containsFold("title", title)
	}
	if category := strings.TrimSpace(filter.Category); category != "" {
		b.containsFold("category", category)
	}

	query := "SELECT id, title, category, description FROM questions" + b.String() + " ORDER BY id"
	return query, b.args, nil
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// escapeLike makes LIKE wildcards in user input match literally
func escapeLike(s string) string {
	return likeEscaper.Replace(s)
}
