package server

import (
	"fmt"
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	_ "github.com/joho/godotenv/autoload"

	"github.com/niurkamc1962/backend-migracion/internal/config"
	"github.com/niurkamc1962/backend-migracion/internal/handlers"
	"github.com/niurkamc1962/backend-migracion/internal/routes"
	"github.com/niurkamc1962/backend-migracion/internal/services"
	"github.com/niurkamc1962/backend-migracion/internal/storage"
)

type Server struct {
	port string
	cfg  *config.Config
}

func NewServer() *http.Server {
	cfg := config.Load()

	s := &Server{
		port: cfg.Port,
		cfg:  cfg,
	}

	// Dependency injection
	store := storage.NewArtifactStore(cfg.OutputDir)
	schemaService := services.NewSchemaService(cfg)
	relationService := services.NewRelationService(cfg)
	exportService := services.NewExportService(cfg, store)
	doctypeService := services.NewDoctypeService(cfg, store)

	schemaHandler := handlers.NewSchemaHandler(schemaService)
	relationHandler := handlers.NewRelationHandler(relationService)
	exportHandler := handlers.NewExportHandler(exportService)
	doctypeHandler := handlers.NewDoctypeHandler(doctypeService)

	// Initialize Gin router
	router := gin.Default()
	router.Use(cors.New(config.CORS(cfg)))
	routes.RegisterRoutes(router, schemaHandler, relationHandler, exportHandler, doctypeHandler) // register all routes

	// Create and configure the HTTP server
	server := &http.Server{
		Addr:         fmt.Sprintf(":%s", s.port),
		Handler:      router,
		IdleTimeout:  time.Minute,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 30 * time.Second,
	}

	return server
}
