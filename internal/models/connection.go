package models

import "errors"

var ErrMissingConnParam = errors.New("host, database and password are required")

// ConnectionParams identifies the database a request runs against. The SQL
// user and port are server configuration, never supplied by the client.
type ConnectionParams struct {
	Host     string `json:"host" binding:"required"`
	Database string `json:"database" binding:"required"`
	Password string `json:"password" binding:"required"`
}

func (p ConnectionParams) Validate() error {
	if p.Host == "" || p.Database == "" || p.Password == "" {
		return ErrMissingConnParam
	}
	return nil
}
