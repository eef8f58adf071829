package services

import (
	"context"
	"fmt"

	"github.com/niurkamc1962/backend-migracion/internal/config"
	"github.com/niurkamc1962/backend-migracion/internal/database"
	"github.com/niurkamc1962/backend-migracion/internal/models"
	"github.com/niurkamc1962/backend-migracion/internal/repositories"
)

type RelationService struct {
	cfg *config.Config
}

func NewRelationService(cfg *config.Config) *RelationService {
	return &RelationService{cfg: cfg}
}

// AllRelationships returns every foreign key edge in the connected database.
func (s *RelationService) AllRelationships(ctx context.Context, params models.ConnectionParams) ([]models.RelationshipEdge, error) {
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

	edges, err := repositories.NewRelationRepository(conn).GetAllRelationships(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list relationships: %w", err)
	}

	return edges, nil
}

// TableRelationships returns the foreign key edges that touch one table, on
// either side of the constraint.
func (s *RelationService) TableRelationships(ctx context.Context, params models.ConnectionParams, table string) ([]models.RelationshipEdge, error) {
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

	edges, err := repositories.NewRelationRepository(conn).GetRelationshipsForTable(ctx, table)
	if err != nil {
		return nil, fmt.Errorf("failed to list relationships for table %s: %w", table, err)
	}

	return edges, nil
}

// CheckColumn reports whether table.column is a foreign key and, when it is,
// the table a Link field for it should point at.
func (s *RelationService) CheckColumn(ctx context.Context, params models.ConnectionParams, table, column string) (*models.ColumnLink, error) {
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

	repo := repositories.NewRelationRepository(conn)

	isFK, err := repo.IsForeignKey(ctx, table, column)
	if err != nil {
		return nil, fmt.Errorf("failed to check column %s.%s: %w", table, column, err)
	}
	if !isFK {
		return &models.ColumnLink{IsForeignKey: false}, nil
	}

	target, err := repo.GetLinkTarget(ctx, table, column)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve link target for %s.%s: %w", table, column, err)
	}

	return &models.ColumnLink{
		IsForeignKey:       true,
		ReferenceTable:     target,
		SuggestedFieldtype: FieldTypeLink,
	}, nil
}
