package sqldataset

import (
	"bytes"
	"context"
	"fmt"
	"strings"
)

/*
Adapter is an interface providing the methods
needed to implement a Set with a database backend.
*/
type Adapter interface {
	ColumnName(string) (string, error)

	CreateSampleTable(ctx context.Context, columns []string) error

	AddSamples(ctx context.Context, rows [][]bool, columns []string) (int, error)
	IterateOnSamples(ctx context.Context, columns []string, lambda func(int, []bool) (bool, error)) error
	CountSamples(ctx context.Context) (int, error)

	Close() error
}

const (
	// SamplesTable is the name of the table holding the samples
	SamplesTable = "samples"

	// MaxSampleInsertionsPerStatement is the maximum number
	// of samples that are allowed to be added with a single
	// insert command with the AddSamples method of an adapter.
	// Trying to add more will result in making more insertion commands
	MaxSampleInsertionsPerStatement = 10
)

/*
ColumnName validates a feature name to be used as a quoted column name
and returns it.
*/
func ColumnName(featureName string) (string, error) {
	if featureName == "id" {
		return "", fmt.Errorf(`'%s' is reserved and cannot be used as feature name`, featureName)
	}
	if strings.ContainsAny(featureName, `"`) {
		return "", fmt.Errorf(`feature name '%s' contains invalid character '"'`, featureName)
	}
	return featureName, nil
}

/*
CreateTableStatement returns the statement creating the samples table
with the given boolean columns and the given definition for the id column.
*/
func CreateTableStatement(columns []string, columnType, idDefinition string) string {
	var buf bytes.Buffer
	buf.WriteString("CREATE TABLE IF NOT EXISTS " + SamplesTable + "(")
	for _, c := range columns {
		buf.WriteString(fmt.Sprintf(`"%s" %s NOT NULL, `, c, columnType))
	}
	buf.WriteString(`"id" ` + idDefinition + `)`)
	return buf.String()
}

/*
InsertStatement returns a statement inserting the given number of rows
into the samples table, using placeholder to render the i-th (zero-based)
parameter.
*/
func InsertStatement(columns []string, rows int, placeholder func(int) string) string {
	var buf bytes.Buffer
	buf.WriteString(`INSERT INTO ` + SamplesTable + ` ("`)
	buf.WriteString(strings.Join(columns, `", "`))
	buf.WriteString(`") VALUES `)
	for r := 0; r < rows; r++ {
		if r > 0 {
			buf.WriteString(", ")
		}
		buf.WriteString("(")
		for c := range columns {
			if c > 0 {
				buf.WriteString(", ")
			}
			buf.WriteString(placeholder(r*len(columns) + c))
		}
		buf.WriteString(")")
	}
	return buf.String()
}

// SelectStatement returns a query for the given columns of every sample, in insertion order
func SelectStatement(columns []string) string {
	return `SELECT "` + strings.Join(columns, `", "`) + `" FROM ` + SamplesTable + ` ORDER BY "id"`
}

/*
Chunks splits rows in consecutive chunks of at most
MaxSampleInsertionsPerStatement rows each
*/
func Chunks(rows [][]bool) [][][]bool {
	var chunks [][][]bool
	for len(rows) > MaxSampleInsertionsPerStatement {
		chunks = append(chunks, rows[:MaxSampleInsertionsPerStatement])
		rows = rows[MaxSampleInsertionsPerStatement:]
	}
	if len(rows) > 0 {
		chunks = append(chunks, rows)
	}
	return chunks
}

// Flatten returns the values of the rows as statement arguments
func Flatten(rows [][]bool) []interface{} {
	var args []interface{}
	for _, r := range rows {
		for _, v := range r {
			args = append(args, v)
		}
	}
	return args
}
