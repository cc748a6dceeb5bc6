/*
Package pgadapter provides an implementation of the
Adapter interface in the sqldataset package that works
over a PostgreSQL database.
*/
package pgadapter

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/anuragkanade/LanguageDetectionEnglishDutch/dataset/sqldataset"

	// Import of PostgreSQL driver
	_ "github.com/lib/pq"
)

type adapter struct {
	db *sql.DB
}

/*
New takes a PostgreSQL database connection URL and returns
an Adapter that works on the database or an error if it fails to connect to it.
*/
func New(url string) (sqldataset.Adapter, error) {
	db, err := sql.Open("postgres", url)
	if err != nil {
		return nil, err
	}
	return &adapter{db}, nil
}

func (a *adapter) ColumnName(featureName string) (string, error) {
	return sqldataset.ColumnName(featureName)
}

func (a *adapter) CreateSampleTable(ctx context.Context, columns []string) error {
	createStmt, err := a.db.PrepareContext(ctx, sqldataset.CreateTableStatement(columns, "BOOLEAN", "SERIAL PRIMARY KEY"))
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
	tx, err := a.db.BeginTx(ctx, nil)
	if err != nil {
		return 0, err
	}
	var added int
	for c, chunk := range sqldataset.Chunks(rows) {
		stmt := sqldataset.InsertStatement(columns, len(chunk), placeholder)
		_, err = tx.ExecContext(ctx, stmt, sqldataset.Flatten(chunk)...)
		if err != nil {
			tx.Rollback()
			return 0, fmt.Errorf("inserting the %dth chunk of %d samples: %v", c+1, len(chunk), err)
		}
		added += len(chunk)
	}
	err = tx.Commit()
	if err != nil {
		return 0, err
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
	return rows.Err()
}

func (a *adapter) CountSamples(ctx context.Context) (int, error) {
	var count int
	err := a.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM `+sqldataset.SamplesTable).Scan(&count)
	return count, err
}

func (a *adapter) Close() error {
	return a.db.Close()
}

func placeholder(i int) string {
	return fmt.Sprintf("$%d", i+1)
}
