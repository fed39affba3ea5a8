package postgres

import (
	"context"
	"fmt"
	"strings"

	"github.com/Masterminds/squirrel"
	"github.com/georgysavva/scany/v2/pgxscan"
)

// Builder returns a squirrel statement builder using $n placeholders.
func Builder() squirrel.StatementBuilderType {
	return squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// ContainsPattern returns a LIKE pattern matching term anywhere, with the
// wildcards in term taken literally. Pair it with ESCAPE '\'.
func ContainsPattern(term string) string {
	return "%" + likeEscaper.Replace(term) + "%"
}

// Paginate applies limit/offset, clamping limit into [1, maxLimit].
func Paginate(q squirrel.SelectBuilder, limit, offset, defaultLimit, maxLimit int) squirrel.SelectBuilder {
	if limit <= 0 {
		limit = defaultLimit
	}
	if limit > maxLimit {
		limit = maxLimit
	}
	if offset < 0 {
		offset = 0
	}
	return q.Limit(uint64(limit)).Offset(uint64(offset))
}

// SelectAll runs a built query and scans every row into dst (a pointer to a slice).
func SelectAll(ctx context.Context, q Querier, dst any, b squirrel.Sqlizer) error {
	sql, args, err := b.ToSql()
	if err != nil {
		return fmt.Errorf("build query: %w", err)
	}
	return pgxscan.Select(ctx, q, dst, sql, args...)
}

// Count runs a built COUNT(*) query.
func Count(ctx context.Context, q Querier, b squirrel.Sqlizer) (int, error) {
	sql, args, err := b.ToSql()
	if err != nil {
		return 0, fmt.Errorf("build count query: %w", err)
	}
	var n int
	if err := q.QueryRow(ctx, sql, args...).Scan(&n); err != nil {
		return 0, err
	}
	return n, nil
}
