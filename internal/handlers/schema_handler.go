package handlers

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/niurkamc1962/backend-migracion/internal/models"
	"github.com/niurkamc1962/backend-migracion/internal/responses"
	"github.com/niurkamc1962/backend-migracion/internal/services"
)

type SchemaHandler struct {
	schemaService *services.SchemaService
}

func NewSchemaHandler(schemaService *services.SchemaService) *SchemaHandler {
	return &SchemaHandler{
		schemaService: schemaService,
	}
}

// Connect handles POST /conectar-params. It proves the params reach the
// database and returns the table list in the same round trip.
func (h *SchemaHandler) Connect(c *gin.Context) {
	var params models.ConnectionParams
	if err := c.ShouldBindJSON(&params); err != nil {
		responses.Fail(c, http.StatusBadRequest, err, "Invalid request body: host, database and password are required")
		return
	}

	list, err := h.schemaService.ListTables(c.Request.Context(), params)
	if err != nil {
		failOperation(c, err)
		return
	}

	responses.Success(c, http.StatusOK, gin.H{
		"tables": list.Tables,
		"parameters": gin.H{
			"host":     params.Host,
			"database": params.Database,
		},
	}, "Connection established successfully")
}

// ListTables handles POST /tables
func (h *SchemaHandler) ListTables(c *gin.Context) {
	var params models.ConnectionParams
	if err := c.ShouldBindJSON(&params); err != nil {
		responses.Fail(c, http.StatusBadRequest, err, "Invalid request body: host, database and password are required")
		return
	}

	list, err := h.schemaService.ListTables(c.Request.Context(), params)
	if err != nil {
		failOperation(c, err)
		return
	}

	responses.Success(c, http.StatusOK, list, "Tables retrieved successfully")
}

// DescribeTable handles POST /table-structure/:table
func (h *SchemaHandler) DescribeTable(c *gin.Context) {
	table := c.Param("table")

	var params models.ConnectionParams
	if err := c.ShouldBindJSON(&params); err != nil {
		responses.Fail(c, http.StatusBadRequest, err, "Invalid request body: host, database and password are required")
		return
	}

	columns, err := h.schemaService.DescribeTable(c.Request.Context(), params, table)
	if err != nil {
		failOperation(c, err)
		return
	}

	if len(columns) == 0 {
		responses.Fail(c, http.StatusNotFound, nil, fmt.Sprintf("Table %s does not exist", table))
		return
	}

	responses.Success(c, http.StatusOK, columns, "Table structure retrieved successfully")
}
