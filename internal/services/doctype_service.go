package services

import (
	"context"
	"fmt"
	"log"
	"strings"

	"github.com/niurkamc1962/backend-migracion/internal/config"
	"github.com/niurkamc1962/backend-migracion/internal/database"
	"github.com/niurkamc1962/backend-migracion/internal/models"
	"github.com/niurkamc1962/backend-migracion/internal/storage"
	"github.com/niurkamc1962/backend-migracion/internal/utils"
)

type DoctypeService struct {
	cfg   *config.Config
	store *storage.ArtifactStore
}

type DoctypeRequest struct {
	Params       models.ConnectionParams `json:"params" binding:"required"`
	Fields       []models.FieldSpec      `json:"fields" binding:"required"`
	Module       string                  `json:"module"`
	IsChildTable bool                    `json:"is_child_table"`
}

func NewDoctypeService(cfg *config.Config, store *storage.ArtifactStore) *DoctypeService {
	return &DoctypeService{cfg: cfg, store: store}
}

// Generate builds a doctype document for a table from the caller's field
// specs and persists it next to the table exports. Field definitions come
// from the request, never from the live schema; the connection is opened
// only to prove the credentials reach the database.
func (s *DoctypeService) Generate(ctx context.Context, req *DoctypeRequest, table string) (*models.TableDocument, *storage.WriteError, error) {
	if !isValidIdentifier(table) {
		return nil, nil, fmt.Errorf("%w: %s", ErrInvalidIdentifier, table)
	}

	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	spec, err := database.NewConnSpec(req.Params, s.cfg)
	if err != nil {
		return nil, nil, err
	}

	conn, err := database.Connect(ctx, spec)
	if err != nil {
		return nil, nil, err
	}
	defer conn.Close(ctx)

	doc := assembleDocument(table, req)

	filename := fmt.Sprintf("doctype_%s.json", table)
	if _, err := s.store.WriteJSON(filename, doc); err != nil {
		log.Printf("failed to write doctype artifact for %s: %v", table, err)
		return doc, &storage.WriteError{Table: table, Err: err}, nil
	}

	return doc, nil, nil
}

// assembleDocument resolves every field spec and wraps the result in the
// platform's document envelope.
func assembleDocument(table string, req *DoctypeRequest) *models.TableDocument {
	fields := make([]models.FieldDescriptor, 0, len(req.Fields))
	fieldOrder := make([]string, 0, len(req.Fields))

	for _, spec := range req.Fields {
		field := resolveField(spec)
		fields = append(fields, field)
		fieldOrder = append(fieldOrder, field.FieldName)
	}

	module := req.Module
	if module == "" {
		module = "Siscont"
	}

	istable := 0
	if req.IsChildTable {
		istable = 1
	}

	return &models.TableDocument{
		Doctype:    "DocType",
		Name:       table,
		Module:     module,
		Custom:     1,
		IsTable:    istable,
		Owner:      "Administrator",
		Engine:     "InnoDB",
		FieldOrder: fieldOrder,
		Fields:     fields,
		Permissions: []models.DocPermission{
			{Role: "System Manager", Read: 1, Write: 1, Create: 1, Delete: 1},
		},
	}
}

// resolveField applies the override-then-map rules for one column: an
// override name is lowercased as given, a derived name is snake_cased, and
// the label keeps the casing of whichever name was used.
func resolveField(spec models.FieldSpec) models.FieldDescriptor {
	fieldType := MapFieldType(spec.DataType)
	if spec.OverrideType != "" {
		if IsValidFieldType(spec.OverrideType) {
			fieldType = spec.OverrideType
		} else {
			log.Printf("ignoring unknown fieldtype %q for column %s, using %s", spec.OverrideType, spec.ColumnName, fieldType)
		}
	}

	name := utils.ToSnakeCase(spec.ColumnName)
	label := spec.ColumnName
	if spec.OverrideName != "" {
		name = strings.ToLower(spec.OverrideName)
		label = spec.OverrideName
	}

	return models.FieldDescriptor{
		FieldName: name,
		Label:     label,
		FieldType: fieldType,
		Required:  spec.Required,
	}
}
