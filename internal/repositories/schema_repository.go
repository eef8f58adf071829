package repositories

import (
	"context"

	"github.com/jackc/pgx/v5"

	"github.com/niurkamc1962/backend-migracion/internal/models"
)

type SchemaRepository struct {
	conn *pgx.Conn
}

func NewSchemaRepository(conn *pgx.Conn) *SchemaRepository {
	return &SchemaRepository{conn: conn}
}

// GetTables returns the names of all base tables, alphabetically.
func (r *SchemaRepository) GetTables(ctx context.Context) ([]string, error) {
	query := `
		SELECT table_name
		FROM information_schema.tables
		WHERE table_schema = 'public'
		AND table_type = 'BASE TABLE'
		ORDER BY table_name
	`

	rows, err := r.conn.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	tables := make([]string, 0)
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return nil, err
		}
		tables = append(tables, name)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return tables, nil
}

// GetColumns returns the structure of one table in ordinal order. An empty
// result means the table does not exist.
func (r *SchemaRepository) GetColumns(ctx context.Context, table string) ([]models.ColumnDescriptor, error) {
	query := `
		SELECT column_name, data_type, character_maximum_length, is_nullable
		FROM information_schema.columns
		WHERE table_schema = 'public' AND table_name = $1
		ORDER BY ordinal_position
	`

	rows, err := r.conn.Query(ctx, query, table)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	columns := make([]models.ColumnDescriptor, 0)
	for rows.Next() {
		var col models.ColumnDescriptor
		var nullable string
		if err := rows.Scan(&col.ColumnName, &col.DataType, &col.MaxLength, &nullable); err != nil {
			return nil, err
		}
		col.IsNullable = nullable == "YES"
		columns = append(columns, col)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return columns, nil
}
