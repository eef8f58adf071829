package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/niurkamc1962/backend-migracion/internal/handlers"
)

type RelationRoutes struct {
	handler *handlers.RelationHandler
}

func NewRelationRoutes(handler *handlers.RelationHandler) *RelationRoutes {
	return &RelationRoutes{handler: handler}
}

func (r *RelationRoutes) RegisterRoutes(router *gin.RouterGroup) {
	relation := router.Group("/table-relation")
	{
		relation.POST("/:table", r.handler.TableRelationships)
		relation.POST("/:table/column/:column", r.handler.CheckColumn)
	}

	router.POST("/all-relation", r.handler.AllRelationships)
}
