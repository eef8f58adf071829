package services

import (
	"context"
	"errors"
	"fmt"
	"log"
	"regexp"
	"strings"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgtype"

	"github.com/niurkamc1962/backend-migracion/internal/config"
	"github.com/niurkamc1962/backend-migracion/internal/database"
	"github.com/niurkamc1962/backend-migracion/internal/models"
	"github.com/niurkamc1962/backend-migracion/internal/repositories"
	"github.com/niurkamc1962/backend-migracion/internal/storage"
)

const (
	datetimeLayout = "2006-01-02 15:04:05"
	timeLayout     = "15:04:05"
)

var (
	ErrNoRequiredFields  = errors.New("at least one required field is needed to export")
	ErrTableNotFound     = errors.New("table does not exist")
	ErrInvalidIdentifier = errors.New("invalid identifier")
)

type ExportService struct {
	cfg   *config.Config
	store *storage.ArtifactStore
	qb    squirrel.StatementBuilderType
}

type ExportRequest struct {
	Params models.ConnectionParams `json:"params" binding:"required"`
	Fields []models.FieldSpec      `json:"fields" binding:"required"`
}

func NewExportService(cfg *config.Config, store *storage.ArtifactStore) *ExportService {
	return &ExportService{
		cfg:   cfg,
		store: store,
		qb:    squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
	}
}

// Export dumps the required fields of a table as JSON records and writes the
// result to the artifact directory. The returned WriteError, when non-nil,
// rides along with an otherwise complete export instead of failing it.
func (s *ExportService) Export(ctx context.Context, req *ExportRequest, table string) (*models.TableExport, *storage.WriteError, error) {
	columns := requiredColumns(req.Fields)
	if len(columns) == 0 {
		return nil, nil, ErrNoRequiredFields
	}

	if !isValidIdentifier(table) {
		return nil, nil, fmt.Errorf("%w: %s", ErrInvalidIdentifier, table)
	}
	for _, col := range columns {
		if !isValidIdentifier(col) {
			return nil, nil, fmt.Errorf("%w: %s", ErrInvalidIdentifier, col)
		}
	}

	query, err := s.buildProjection(table, columns)
	if err != nil {
		return nil, nil, err
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

	rawRows, err := repositories.NewTableRepository(conn).SelectRows(ctx, query, len(columns))
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "42P01" {
			return nil, nil, fmt.Errorf("%w: %s", ErrTableNotFound, table)
		}
		return nil, nil, fmt.Errorf("failed to export table %s: %w", table, err)
	}

	records := make([]map[string]interface{}, 0, len(rawRows))
	for _, values := range rawRows {
		record := make(map[string]interface{}, len(columns))
		for i, col := range columns {
			record[col] = convertValue(values[i])
		}
		records = append(records, record)
	}

	export := &models.TableExport{TableName: table, Rows: records}

	artifact := models.TableArtifact{TableName: table, Data: records}
	if _, err := s.store.WriteJSON(table+".json", artifact); err != nil {
		log.Printf("failed to write export artifact for %s: %v", table, err)
		return export, &storage.WriteError{Table: table, Err: err}, nil
	}

	return export, nil, nil
}

// requiredColumns filters the field specs down to the columns marked
// required, preserving their order.
func requiredColumns(fields []models.FieldSpec) []string {
	columns := make([]string, 0, len(fields))
	for _, field := range fields {
		if field.Required {
			columns = append(columns, field.ColumnName)
		}
	}
	return columns
}

// buildProjection assembles the SELECT for the requested columns, quoting
// every identifier so mixed-case names survive.
func (s *ExportService) buildProjection(table string, columns []string) (string, error) {
	quoted := make([]string, len(columns))
	for i, col := range columns {
		quoted[i] = pgx.Identifier{col}.Sanitize()
	}

	query, _, err := s.qb.Select(quoted...).From(pgx.Identifier{table}.Sanitize()).ToSql()
	if err != nil {
		return "", fmt.Errorf("failed to build export query: %w", err)
	}

	return query, nil
}

// convertValue coerces a scanned value into something json.Marshal always
// accepts, in the formats the frontend expects. Values with no better
// rendering fall back to their textual representation.
func convertValue(v interface{}) interface{} {
	switch v := v.(type) {
	case nil:
		return nil
	case pgtype.Numeric:
		if v.NaN {
			return "NaN"
		}
		if v.InfinityModifier != pgtype.Finite {
			return v.InfinityModifier.String()
		}
		f, err := v.Float64Value()
		if err != nil {
			return fmt.Sprintf("%ve%d", v.Int, v.Exp)
		}
		return f.Float64
	case time.Time:
		return v.Format(datetimeLayout)
	case pgtype.Time:
		return time.UnixMicro(v.Microseconds).UTC().Format(timeLayout)
	case [16]byte:
		return uuid.UUID(v).String()
	case []byte:
		return strings.ToValidUTF8(string(v), "")
	case string, bool, int16, int32, int64, float32, float64, map[string]interface{}, []interface{}:
		return v
	default:
		return fmt.Sprintf("%v", v)
	}
}

// isValidIdentifier checks if a string is a valid PostgreSQL identifier
func isValidIdentifier(name string) bool {
	if name == "" || len(name) > 63 {
		return false
	}
	matched, _ := regexp.MatchString(`^[a-zA-Z_][a-zA-Z0-9_$]*$`, name)
	return matched
}
