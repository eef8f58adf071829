package services

import (
	"context"
	"fmt"
	"time"

	"github.com/niurkamc1962/backend-migracion/internal/config"
	"github.com/niurkamc1962/backend-migracion/internal/database"
	"github.com/niurkamc1962/backend-migracion/internal/models"
	"github.com/niurkamc1962/backend-migracion/internal/repositories"
)

const queryTimeout = 30 * time.Second

type SchemaService struct {
	cfg *config.Config
}

func NewSchemaService(cfg *config.Config) *SchemaService {
	return &SchemaService{cfg: cfg}
}

// ListTables connects with the given params and returns every base table
// with the total count.
func (s *SchemaService) ListTables(ctx context.Context, params models.ConnectionParams) (*models.TableList, error) {
	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	spec, err := database.NewConnSpec(params, s.cfg)
	if err != nil {
		return nil, err
	}

	conn, err := database.Connect(ctx, spec)
	if err != nil {
		return nil, err
	}
	defer conn.Close(ctx)

	tables, err := repositories.NewSchemaRepository(conn).GetTables(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list tables: %w", err)
	}

	return &models.TableList{Tables: tables, TotalTables: len(tables)}, nil
}

// DescribeTable returns the column structure of one table. An empty slice
// means the table does not exist; the handler turns that into a not found.
func (s *SchemaService) DescribeTable(ctx context.Context, params models.ConnectionParams, table string) ([]models.ColumnDescriptor, error) {
	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	spec, err := database.NewConnSpec(params, s.cfg)
	if err != nil {
		return nil, err
	}

	conn, err := database.Connect(ctx, spec)
	if err != nil {
		return nil, err
	}
	defer conn.Close(ctx)

	columns, err := repositories.NewSchemaRepository(conn).GetColumns(ctx, table)
	if err != nil {
		return nil, fmt.Errorf("failed to describe table %s: %w", table, err)
	}

	return columns, nil
}
