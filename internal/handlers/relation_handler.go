package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/niurkamc1962/backend-migracion/internal/models"
	"github.com/niurkamc1962/backend-migracion/internal/responses"
	"github.com/niurkamc1962/backend-migracion/internal/services"
)

type RelationHandler struct {
	relationService *services.RelationService
}

func NewRelationHandler(relationService *services.RelationService) *RelationHandler {
	return &RelationHandler{
		relationService: relationService,
	}
}

// AllRelationships handles POST /all-relation
func (h *RelationHandler) AllRelationships(c *gin.Context) {
	var params models.ConnectionParams
	if err := c.ShouldBindJSON(&params); err != nil {
		responses.Fail(c, http.StatusBadRequest, err, "Invalid request body: host, database and password are required")
		return
	}

	edges, err := h.relationService.AllRelationships(c.Request.Context(), params)
	if err != nil {
		failOperation(c, err)
		return
	}

	responses.Success(c, http.StatusOK, edges, "Relationships retrieved successfully")
}

// TableRelationships handles POST /table-relation/:table
func (h *RelationHandler) TableRelationships(c *gin.Context) {
	table := c.Param("table")

	var params models.ConnectionParams
	if err := c.ShouldBindJSON(&params); err != nil {
		responses.Fail(c, http.StatusBadRequest, err, "Invalid request body: host, database and password are required")
		return
	}

	edges, err := h.relationService.TableRelationships(c.Request.Context(), params, table)
	if err != nil {
		failOperation(c, err)
		return
	}

	responses.Success(c, http.StatusOK, edges, "Relationships retrieved successfully")
}

// CheckColumn handles POST /table-relation/:table/column/:column
func (h *RelationHandler) CheckColumn(c *gin.Context) {
	table := c.Param("table")
	column := c.Param("column")

	var params models.ConnectionParams
	if err := c.ShouldBindJSON(&params); err != nil {
		responses.Fail(c, http.StatusBadRequest, err, "Invalid request body: host, database and password are required")
		return
	}

	link, err := h.relationService.CheckColumn(c.Request.Context(), params, table, column)
	if err != nil {
		failOperation(c, err)
		return
	}

	responses.Success(c, http.StatusOK, link, "Column checked successfully")
}
