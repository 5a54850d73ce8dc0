// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package db

import (
	"database/sql/driver"

	"golang.org/x/text/cases"
	"modernc.org/sqlite"
)

// sqliteFoldFunc is the SQL name of the Unicode case folding function
// registered with the sqlite driver. SQLite's own LOWER only folds ASCII.
const sqliteFoldFunc = "unicode_fold"

func init() {
	sqlite.MustRegisterDeterministicScalarFunction(sqliteFoldFunc, 1, foldValue)
}

// foldValue folds text values; NULL and non-text values pass through
func foldValue(_ *sqlite.FunctionContext, args []driver.Value) (driver.Value, error) {
	switch v := args[0].(type) {
	case string:
		return foldString(v), nil
	case []byte:
		return foldString(string(v)), nil
	default:
		return v, nil
	}
}

// A Caser holds state, so each call gets its own
func foldString(s string) string {
	return cases.Fold().String(s)
}

// foldFunc names the SQL function used for case-insensitive matching
func foldFunc(dialect string) string {
	if dialect == DialectSQLite {
		return sqliteFoldFunc
	}
	return "LOWER"
}
