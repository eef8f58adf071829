package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/niurkamc1962/backend-migracion/internal/responses"
	"github.com/niurkamc1962/backend-migracion/internal/services"
)

type ExportHandler struct {
	exportService *services.ExportService
}

func NewExportHandler(exportService *services.ExportService) *ExportHandler {
	return &ExportHandler{
		exportService: exportService,
	}
}

// ExportTable handles POST /table-data/:table. The fields marked required in
// the payload select the columns to export.
func (h *ExportHandler) ExportTable(c *gin.Context) {
	table := c.Param("table")

	var req services.ExportRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		responses.Fail(c, http.StatusBadRequest, err, "Invalid request body: params and fields are required")
		return
	}

	export, writeErr, err := h.exportService.Export(c.Request.Context(), &req, table)
	if err != nil {
		failOperation(c, err)
		return
	}

	if writeErr != nil {
		responses.Partial(c, http.StatusOK, export, "Table exported but the artifact could not be written", writeErr)
		return
	}

	responses.Success(c, http.StatusOK, export, "Table exported successfully")
}
