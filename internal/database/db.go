package database

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/url"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/niurkamc1962/backend-migracion/internal/config"
	"github.com/niurkamc1962/backend-migracion/internal/models"
)

var (
	ErrIncompleteConfig = errors.New("SQL_USER and SQL_PORT environment variables are required")
	ErrConnectionFailed = errors.New("could not connect to database")
)

// ConnSpec is the full set of values needed to reach a database: the three
// client-supplied params merged with the user and port the server is
// configured with.
type ConnSpec struct {
	Host     string
	Port     string
	User     string
	Password string
	Database string
}

// NewConnSpec merges the request params with the process configuration.
// Incomplete client params and incomplete server config are reported as
// distinct errors so the handler can pick the right status.
func NewConnSpec(params models.ConnectionParams, cfg *config.Config) (ConnSpec, error) {
	if err := params.Validate(); err != nil {
		return ConnSpec{}, err
	}
	if cfg.SQLUser == "" || cfg.SQLPort == "" {
		return ConnSpec{}, ErrIncompleteConfig
	}

	return ConnSpec{
		Host:     params.Host,
		Port:     cfg.SQLPort,
		User:     cfg.SQLUser,
		Password: params.Password,
		Database: params.Database,
	}, nil
}

// Connect opens a single connection for the duration of one request. The
// caller owns the connection and must close it on every exit path.
func Connect(ctx context.Context, spec ConnSpec) (*pgx.Conn, error) {
	// Use url.UserPassword to properly encode username and password
	userInfo := url.UserPassword(spec.User, spec.Password)
	dsn := fmt.Sprintf(
		"postgres://%s@%s:%s/%s?sslmode=disable",
		userInfo.String(),
		spec.Host,
		spec.Port,
		url.PathEscape(spec.Database),
	)

	connCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	conn, err := pgx.Connect(connCtx, dsn)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) {
			return nil, fmt.Errorf("%w: %s (SQLSTATE %s)", ErrConnectionFailed, pgErr.Message, pgErr.Code)
		}
		return nil, fmt.Errorf("%w: %v", ErrConnectionFailed, err)
	}

	if err := conn.Ping(connCtx); err != nil {
		conn.Close(ctx)
		return nil, fmt.Errorf("%w: %v", ErrConnectionFailed, err)
	}

	log.Printf("Connected to database: postgres://%s:***@%s:%s/%s", spec.User, spec.Host, spec.Port, spec.Database)
	return conn, nil
}
