package repositories

import (
	"context"

	"github.com/jackc/pgx/v5"
)

type TableRepository struct {
	conn *pgx.Conn
}

func NewTableRepository(conn *pgx.Conn) *TableRepository {
	return &TableRepository{conn: conn}
}

// SelectRows runs a projection query and returns one value slice per row, in
// the projection's column order. Values come back exactly as the driver
// decoded them; coercing them into exportable form is the caller's concern.
func (r *TableRepository) SelectRows(ctx context.Context, query string, columnCount int) ([][]interface{}, error) {
	rows, err := r.conn.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([][]interface{}, 0)
	for rows.Next() {
		values := make([]interface{}, columnCount)
		valuePtrs := make([]interface{}, columnCount)
		for i := range values {
			valuePtrs[i] = &values[i]
		}

		if err := rows.Scan(valuePtrs...); err != nil {
			return nil, err
		}

		out = append(out, values)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return out, nil
}
