package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/niurkamc1962/backend-migracion/internal/responses"
	"github.com/niurkamc1962/backend-migracion/internal/services"
)

type DoctypeHandler struct {
	doctypeService *services.DoctypeService
}

func NewDoctypeHandler(doctypeService *services.DoctypeService) *DoctypeHandler {
	return &DoctypeHandler{
		doctypeService: doctypeService,
	}
}

// GenerateDoctype handles POST /generate-doctype/:table
func (h *DoctypeHandler) GenerateDoctype(c *gin.Context) {
	table := c.Param("table")

	var req services.DoctypeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		responses.Fail(c, http.StatusBadRequest, err, "Invalid request body: params and fields are required")
		return
	}

	doc, writeErr, err := h.doctypeService.Generate(c.Request.Context(), &req, table)
	if err != nil {
		failOperation(c, err)
		return
	}

	if writeErr != nil {
		responses.Partial(c, http.StatusOK, doc, "Doctype generated but the artifact could not be written", writeErr)
		return
	}

	responses.Success(c, http.StatusOK, doc, "Doctype generated successfully")
}
