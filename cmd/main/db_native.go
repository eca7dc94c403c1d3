//go:build !cgo_sqlite

package main

import (
	"database/sql"
	"strings"

	_ "modernc.org/sqlite"
)

// initDB opens the gallery database with the pure Go driver. The DSN uses
// the mattn-style query flags, which are translated to the pragmas
// modernc.org/sqlite understands.
func initDB(dataSource string) (*sql.DB, error) {
	return sql.Open("sqlite", nativeDSN(dataSource))
}

func nativeDSN(dataSource string) string {
	path, query, found := strings.Cut(dataSource, "?")
	if !found {
		return dataSource
	}
	var pragmas []string
	for _, param := range strings.Split(query, "&") {
		key, value, _ := strings.Cut(param, "=")
		switch key {
		case "_journal_mode":
			pragmas = append(pragmas, "_pragma=journal_mode("+value+")")
		case "_busy_timeout":
			pragmas = append(pragmas, "_pragma=busy_timeout("+value+")")
		default:
			pragmas = append(pragmas, param)
		}
	}
	return path + "?" + strings.Join(pragmas, "&")
}
