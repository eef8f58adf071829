package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/niurkamc1962/backend-migracion/internal/handlers"
)

type SchemaRoutes struct {
	handler *handlers.SchemaHandler
}

func NewSchemaRoutes(handler *handlers.SchemaHandler) *SchemaRoutes {
	return &SchemaRoutes{handler: handler}
}

func (r *SchemaRoutes) RegisterRoutes(router *gin.RouterGroup) {
	router.POST("/conectar-params", r.handler.Connect)
	router.POST("/tables", r.handler.ListTables)
	router.POST("/table-structure/:table", r.handler.DescribeTable)
}
