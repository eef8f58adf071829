package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/niurkamc1962/backend-migracion/internal/handlers"
)

type ExportRoutes struct {
	handler *handlers.ExportHandler
}

func NewExportRoutes(handler *handlers.ExportHandler) *ExportRoutes {
	return &ExportRoutes{handler: handler}
}

func (r *ExportRoutes) RegisterRoutes(router *gin.RouterGroup) {
	router.POST("/table-data/:table", r.handler.ExportTable)
}
