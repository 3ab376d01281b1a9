package psqlbuilder

import (
	sq "github.com/Masterminds/squirrel"
)

// builder squirrel-builder с плейсхолдерами $1, $2, ... для Postgres
var builder = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

// Select возвращает SELECT-builder
func Select(columns ...string) sq.SelectBuilder {
	return builder.Select(columns...)
}

// Insert возвращает INSERT-builder
func Insert(table string) sq.InsertBuilder {
	return builder.Insert(table)
}

// Update возвращает UPDATE-builder
func Update(table string) sq.UpdateBuilder {
	return builder.Update(table)
}

// Delete возвращает DELETE-builder
func Delete(table string) sq.DeleteBuilder {
	return builder.Delete(table)
}
