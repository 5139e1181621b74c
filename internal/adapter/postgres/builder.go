package postgres

import "github.com/Masterminds/squirrel"

// psql is the statement builder shared by all repositories.
var psql = squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)

// Builder returns a squirrel statement builder using $N placeholders.
func Builder() squirrel.StatementBuilderType {
	return psql
}
