package psqlbuilder

import "github.com/Masterminds/squirrel"

// builder is a squirrel statement builder preconfigured for PostgreSQL
// placeholders ($1, $2, ...).
var builder = squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)

// Select returns a SELECT builder with PostgreSQL placeholders.
func Select(columns ...string) squirrel.SelectBuilder {
	return builder.Select(columns...)
}

// Insert returns an INSERT builder with PostgreSQL placeholders.
func Insert(into string) squirrel.InsertBuilder {
	return builder.Insert(into)
}

// Update returns an UPDATE builder with PostgreSQL placeholders.
func Update(table string) squirrel.UpdateBuilder {
	return builder.Update(table)
}

// Delete returns a DELETE builder with PostgreSQL placeholders.
func Delete(from string) squirrel.DeleteBuilder {
	return builder.Delete(from)
}
