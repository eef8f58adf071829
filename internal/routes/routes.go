package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/niurkamc1962/backend-migracion/internal/handlers"
)

func RegisterRoutes(router *gin.Engine, schemaHandler *handlers.SchemaHandler, relationHandler *handlers.RelationHandler, exportHandler *handlers.ExportHandler, doctypeHandler *handlers.DoctypeHandler) {
	api := router.Group("")

	schemaRoutes := NewSchemaRoutes(schemaHandler)
	schemaRoutes.RegisterRoutes(api)

	relationRoutes := NewRelationRoutes(relationHandler)
	relationRoutes.RegisterRoutes(api)

	exportRoutes := NewExportRoutes(exportHandler)
	exportRoutes.RegisterRoutes(api)

	doctypeRoutes := NewDoctypeRoutes(doctypeHandler)
	doctypeRoutes.RegisterRoutes(api)

	router.GET("/", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status": "ok",
		})
	})
}
