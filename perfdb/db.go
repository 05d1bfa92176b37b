// Copyright 2023 The gcache Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package perfdb stores aggregation results in a local SQLite
// database, as an alternative to the CSV outputs for ad-hoc querying.
//
// The database mirrors the CSV semantics: each export replaces the
// perf_raw, perf_mean, and perf_std tables wholesale, so re-running
// an aggregation is idempotent.
package perfdb

import (
	"database/sql"
	"fmt"
	"strings"

	"github.com/aclements/go-gg/table"
	_ "github.com/mattn/go-sqlite3"

	"github.com/chenhao-ye/gcache/perfstat"
)

// DB is a handle to an export database.
type DB struct {
	sql *sql.DB
}

// Open opens (creating if necessary) the SQLite database at path.
func Open(path string) (*DB, error) {
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, err
	}
	return &DB{sql: db}, nil
}

// Close closes the underlying database.
func (db *DB) Close() error {
	return db.sql.Close()
}

// StoreTables replaces the perf_raw, perf_mean, and perf_std tables
// with the contents of ts. All three are written in one transaction:
// either the database reflects the whole aggregation or none of it.
func (db *DB) StoreTables(ts *perfstat.Tables) error {
	tx, err := db.sql.Begin()
	if err != nil {
		return err
	}
	for _, out := range []struct {
		name string
		t    *table.Table
		cols []string
	}{
		{"perf_raw", ts.Raw, ts.RawCols()},
		{"perf_mean", ts.Mean, ts.AggCols()},
		{"perf_std", ts.Std, ts.AggCols()},
	} {
		if err := storeTable(tx, out.name, out.t, out.cols); err != nil {
			tx.Rollback()
			return fmt.Errorf("storing %s: %v", out.name, err)
		}
	}
	return tx.Commit()
}

func storeTable(tx *sql.Tx, name string, t *table.Table, cols []string) error {
	if _, err := tx.Exec("DROP TABLE IF EXISTS " + name); err != nil {
		return err
	}

	defs := make([]string, len(cols))
	marks := make([]string, len(cols))
	for i, col := range cols {
		typ, err := sqlType(t, col)
		if err != nil {
			return err
		}
		defs[i] = col + " " + typ
		marks[i] = "?"
	}
	create := fmt.Sprintf("CREATE TABLE %s (%s)", name, strings.Join(defs, ", "))
	if _, err := tx.Exec(create); err != nil {
		return fmt.Errorf("create table: %v", err)
	}

	insert, err := tx.Prepare(fmt.Sprintf("INSERT INTO %s VALUES (%s)",
		name, strings.Join(marks, ", ")))
	if err != nil {
		return err
	}
	defer insert.Close()

	args := make([]interface{}, len(cols))
	for i := 0; i < t.Len(); i++ {
		for j, col := range cols {
			args[j] = value(t, col, i)
		}
		if _, err := insert.Exec(args...); err != nil {
			return err
		}
	}
	return nil
}

func sqlType(t *table.Table, col string) (string, error) {
	switch t.Column(col).(type) {
	case []int, []int64:
		return "INTEGER", nil
	case []float64:
		return "REAL", nil
	case []string:
		return "TEXT", nil
	case nil:
		return "", fmt.Errorf("no column %q in table", col)
	default:
		return "", fmt.Errorf("column %q has unsupported type %T", col, t.Column(col))
	}
}

func value(t *table.Table, col string, i int) interface{} {
	switch c := t.Column(col).(type) {
	case []int:
		return c[i]
	case []int64:
		return c[i]
	case []float64:
		return c[i]
	case []string:
		return c[i]
	}
	panic("unreachable: column types checked by sqlType")
}
