package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/niurkamc1962/backend-migracion/internal/database"
	"github.com/niurkamc1962/backend-migracion/internal/models"
	"github.com/niurkamc1962/backend-migracion/internal/responses"
	"github.com/niurkamc1962/backend-migracion/internal/services"
)

// failOperation translates a service error into the right response: client
// mistakes are 400, an absent table is 404, everything touching the server
// environment or the database connection is 500.
func failOperation(c *gin.Context, err error) {
	switch {
	case errors.Is(err, models.ErrMissingConnParam):
		responses.Fail(c, http.StatusBadRequest, err, "Missing connection parameters")
	case errors.Is(err, services.ErrInvalidIdentifier):
		responses.Fail(c, http.StatusBadRequest, err, "Invalid identifier")
	case errors.Is(err, services.ErrNoRequiredFields):
		responses.Fail(c, http.StatusBadRequest, err, "No required fields selected")
	case errors.Is(err, services.ErrTableNotFound):
		responses.Fail(c, http.StatusNotFound, err, "Table not found")
	case errors.Is(err, database.ErrIncompleteConfig):
		responses.Fail(c, http.StatusInternalServerError, err, "Server database configuration is incomplete")
	case errors.Is(err, database.ErrConnectionFailed):
		responses.Fail(c, http.StatusInternalServerError, err, "Failed to connect to database")
	default:
		responses.Fail(c, http.StatusInternalServerError, err, "Unexpected error")
	}
}
