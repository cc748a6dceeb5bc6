/*
Package sqlite3adapter provides an implementation of the
Adapter interface in the sqldataset package that works
over an SQLite3 database file.
*/
package sqlite3adapter

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/anuragkanade/LanguageDetectionEnglishDutch/dataset/sqldataset"

	// Import of sqlite3 driver
	_ "github.com/mattn/go-sqlite3"
)

type adapter struct {
	db *sql.DB
}

/*
New takes a path to an SQLite3 database file and the maximum number of
open connections (0 for no limit) and returns an Adapter that works
on the file's database or an error if it fails to open as an sqlite3 database.
*/
func New(path string, maxConns int) (sqldataset.Adapter, error) {
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, err
	}
	db.SetMaxOpenConns(maxConns)
	return &adapter{db}, nil
}

func (a *adapter) ColumnName(featureName string) (string, error) {
	return sqldataset.ColumnName(featureName)
}

func (a *adapter) CreateSampleTable(ctx context.Context, columns []string) error {
	createStmt, err := a.db.PrepareContext(ctx, sqldataset.CreateTableStatement(columns, "BOOLEAN", "INTEGER PRIMARY KEY AUTOINCREMENT"))
	if err != nil {
		return fmt.Errorf("preparing samples creation statement: %v", err)
	}
	defer createStmt.Close()
	_, err = createStmt.ExecContext(ctx)
	if err != nil {
		return fmt.Errorf("ensuring samples table exists: %v", err)
	}
	return nil
}

func (a *adapter) AddSamples(ctx context.Context, rows [][]bool, columns []string) (int, error) {
	if len(columns) == 0 {
		return 0, fmt.Errorf("no features to store")
	}
	var added int
	for c, chunk := range sqldataset.Chunks(rows) {
		stmt := sqldataset.InsertStatement(columns, len(chunk), func(int) string { return "?" })
		_, err := a.db.ExecContext(ctx, stmt, sqldataset.Flatten(chunk)...)
		if err != nil {
			return added, fmt.Errorf("inserting the %dth chunk of %d samples: %v", c+1, len(chunk), err)
		}
		added += len(chunk)
	}
	return added, nil
}

func (a *adapter) IterateOnSamples(ctx context.Context, columns []string, lambda func(int, []bool) (bool, error)) error {
	rows, err := a.db.QueryContext(ctx, sqldataset.SelectStatement(columns))
	if err != nil {
		return err
	}
	defer rows.Close()
	for j := 0; rows.Next(); j++ {
		values := make([]bool, len(columns))
		dest := make([]interface{}, len(columns))
		for i := range values {
			dest[i] = &values[i]
		}
		err = rows.Scan(dest...)
		if err != nil {
			return err
		}
		ok, err := lambda(j, values)
		if err != nil {
			return err
		}
		if !ok {
			break
		}
	}
	err = rows.Err()
	if err != nil {
		return err
	}
	return rows.Close()
}

func (a *adapter) CountSamples(ctx context.Context) (int, error) {
	var count int
	err := a.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM `+sqldataset.SamplesTable).Scan(&count)
	return count, err
}

func (a *adapter) Close() error {
	return a.db.Close()
}
