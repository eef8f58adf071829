package repositories

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"

	"github.com/niurkamc1962/backend-migracion/internal/models"
)

// Foreign key edges run from the table holding the constraint (parent) to
// the table it references (child). The ORDER BY keeps enumeration stable
// across calls so filtered results are always a subset of the full catalog.
const relationshipQuery = `
	SELECT
		tc.table_name,
		kcu.column_name,
		ccu.table_name AS referenced_table,
		ccu.column_name AS referenced_column
	FROM information_schema.table_constraints AS tc
	JOIN information_schema.key_column_usage AS kcu
		ON tc.constraint_name = kcu.constraint_name
		AND tc.table_schema = kcu.table_schema
	JOIN information_schema.constraint_column_usage AS ccu
		ON ccu.constraint_name = tc.constraint_name
		AND ccu.table_schema = tc.table_schema
	WHERE tc.constraint_type = 'FOREIGN KEY'
		AND tc.table_schema = 'public'
`

const relationshipOrder = `
	ORDER BY tc.table_name, tc.constraint_name, kcu.ordinal_position
`

type RelationRepository struct {
	conn *pgx.Conn
}

func NewRelationRepository(conn *pgx.Conn) *RelationRepository {
	return &RelationRepository{conn: conn}
}

// GetAllRelationships returns every foreign key edge in the database.
func (r *RelationRepository) GetAllRelationships(ctx context.Context) ([]models.RelationshipEdge, error) {
	return r.queryEdges(ctx, relationshipQuery+relationshipOrder)
}

// GetRelationshipsForTable returns the edges where the table appears on
// either side. An empty result does not distinguish a table without foreign
// keys from a table that does not exist.
func (r *RelationRepository) GetRelationshipsForTable(ctx context.Context, table string) ([]models.RelationshipEdge, error) {
	query := relationshipQuery + `
		AND (tc.table_name = $1 OR ccu.table_name = $1)
	` + relationshipOrder

	return r.queryEdges(ctx, query, table)
}

func (r *RelationRepository) queryEdges(ctx context.Context, query string, args ...interface{}) ([]models.RelationshipEdge, error) {
	rows, err := r.conn.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	edges := make([]models.RelationshipEdge, 0)
	for rows.Next() {
		var edge models.RelationshipEdge
		if err := rows.Scan(&edge.ParentTable, &edge.ParentColumn, &edge.ChildTable, &edge.ChildColumn); err != nil {
			return nil, err
		}
		edges = append(edges, edge)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return edges, nil
}

// IsForeignKey reports whether the column holds a foreign key constraint on
// the given table.
func (r *RelationRepository) IsForeignKey(ctx context.Context, table, column string) (bool, error) {
	query := `
		SELECT EXISTS (
			SELECT 1
			FROM information_schema.table_constraints tc
			JOIN information_schema.key_column_usage kcu
				ON tc.constraint_name = kcu.constraint_name
				AND tc.table_schema = kcu.table_schema
			WHERE tc.constraint_type = 'FOREIGN KEY'
				AND tc.table_schema = 'public'
				AND tc.table_name = $1
				AND kcu.column_name = $2
		)
	`

	var exists bool
	if err := r.conn.QueryRow(ctx, query, table, column).Scan(&exists); err != nil {
		return false, err
	}

	return exists, nil
}

// GetLinkTarget returns the table a foreign key column points at, or ""
// when the column holds no foreign key.
func (r *RelationRepository) GetLinkTarget(ctx context.Context, table, column string) (string, error) {
	query := `
		SELECT ccu.table_name
		FROM information_schema.table_constraints AS tc
		JOIN information_schema.key_column_usage AS kcu
			ON tc.constraint_name = kcu.constraint_name
			AND tc.table_schema = kcu.table_schema
		JOIN information_schema.constraint_column_usage AS ccu
			ON ccu.constraint_name = tc.constraint_name
			AND ccu.table_schema = tc.table_schema
		WHERE tc.constraint_type = 'FOREIGN KEY'
			AND tc.table_schema = 'public'
			AND tc.table_name = $1
			AND kcu.column_name = $2
		LIMIT 1
	`

	var target string
	err := r.conn.QueryRow(ctx, query, table, column).Scan(&target)
	if errors.Is(err, pgx.ErrNoRows) {
		return "", nil
	}
	if err != nil {
		return "", err
	}

	return target, nil
}
