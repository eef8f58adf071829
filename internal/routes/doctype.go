package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/niurkamc1962/backend-migracion/internal/handlers"
)

type DoctypeRoutes struct {
	handler *handlers.DoctypeHandler
}

func NewDoctypeRoutes(handler *handlers.DoctypeHandler) *DoctypeRoutes {
	return &DoctypeRoutes{handler: handler}
}

func (r *DoctypeRoutes) RegisterRoutes(router *gin.RouterGroup) {
	router.POST("/generate-doctype/:table", r.handler.GenerateDoctype)
}
