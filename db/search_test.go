// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package db

import (
	"errors"
	"reflect"
	"testing"
)

func TestBuildSearchQuery(t *testing.T) {
	tests := []struct {
		name      string
		filter    QuestionFilter
		wantQuery string
		wantArgs  []any
	}{
		{
			name:      "title only",
			filter:    QuestionFilter{Title: "loop"},
			wantQuery: `SELECT id, title, category, description FROM questions WHERE LOWER(title) LIKE LOWER($1) ESCAPE '\' ORDER BY id`,
			wantArgs:  []any{"%loop%"},
		},
		{
			name:      "category only uses the first placeholder",
			filter:    QuestionFilter{Category: "go"},
			wantQuery: `SELECT id, title, category, description FROM questions WHERE LOWER(category) LIKE LOWER($1) ESCAPE '\' ORDER BY id`,
			wantArgs:  []any{"%go%"},
		},
		{
			name:      "title and category",
			filter:    QuestionFilter{Title: "loop", Category: "go"},
			wantQuery: `SELECT id, title, category, description FROM questions WHERE LOWER(title) LIKE LOWER($1) ESCAPE '\' AND LOWER(category) LIKE LOWER($2) ESCAPE '\' ORDER BY id`,
			wantArgs:  []any{"%loop%", "%go%"},
		},
		{
			name:      "blank title is ignored",
			filter:    QuestionFilter{Title: "  ", Category: "go"},
			wantQuery: `SELECT id, title, category, description FROM questions WHERE LOWER(category) LIKE LOWER($1) ESCAPE '\' ORDER BY id`,
			wantArgs:  []any{"%go%"},
		},
		{
			name:      "wildcards are escaped",
			filter:    QuestionFilter{Title: `50%_off\`},
			wantQuery: `SELECT id, title, category, description FROM questions WHERE LOWER(title) LIKE LOWER($1) ESCAPE '\' ORDER BY id`,
			wantArgs:  []any{`%50\%\_off\\%`},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			query, args, err := BuildSearchQuery(DialectPostgres, tt.filter)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if query != tt.wantQuery {
				t.Errorf("query mismatch\n got: %s\nwant: %s", query, tt.wantQuery)
			}
			if !reflect.DeepEqual(args, tt.wantArgs) {
				t.Errorf("args = %v, want %v", args, tt.wantArgs)
			}
		})
	}
}

func TestBuildSearchQuery_SQLiteFold(t *testing.T) {
	query, args, err := BuildSearchQuery(DialectSQLite, QuestionFilter{Title: "über", Category: "élan"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	want := `SELECT id, title, category, description FROM questions WHERE unicode_fold(title) LIKE unicode_fold($1) ESCAPE '\' AND unicode_fold(category) LIKE unicode_fold($2) ESCAPE '\' ORDER BY id`
	if query != want {
		t.Errorf("query mismatch\n got: %s\nwant: %s", query, want)
	}
	if !reflect.DeepEqual(args, []any{"%über%", "%élan%"}) {
		t.Errorf("unexpected args %v", args)
	}
}

func TestBuildSearchQuery_EmptyFilter(t *testing.T) {
	for _, f := range []QuestionFilter{{}, {Title: " ", Category: "\t"}} {
		_, _, err := BuildSearchQuery(DialectSQLite, f)
		if !errors.Is(err, ErrEmptyFilter) {
			t.Errorf("filter %+v: expected ErrEmptyFilter, got %v", f, err)
		}
	}
}
