package main

import (
	"law_console_go/config"
	"law_console_go/db"
	"law_console_go/handlers"
	"law_console_go/services"
	"law_console_go/store"
	"log"

	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
)

func main() {
	// Load configuration
	cfg := config.Load()

	// Initialize fixture database (read-only financeiro/agenda collaborators)
	if err := db.Initialize(cfg.DBPath, cfg.Environment); err != nil {
		log.Fatalf("Failed to initialize fixture database: %v", err)
	}
	defer db.Close()

	if err := services.SeedFixtures(db.DB); err != nil {
		log.Fatalf("Failed to seed fixtures: %v", err)
	}

	// Collection store and change notification bus
	bus := store.NewBus()
	st, err := store.New(cfg.DataDir, bus)
	if err != nil {
		log.Fatalf("Failed to initialize collection store: %v", err)
	}
	if err := st.Watch(); err != nil {
		log.Fatalf("Failed to start storage watcher: %v", err)
	}
	defer st.Close()

	// Read-models and mutation services
	queries := services.NewQueryService(st, bus)
	defer queries.Close()
	queries.StartBackgroundRefresh(cfg.RefreshInterval)

	api := handlers.NewAPI(
		queries,
		services.NewCaseService(st),
		services.NewClientService(st),
		services.NewTaskService(st),
	)

	// Create Echo instance
	e := echo.New()

	// Middleware
	e.Use(echomiddleware.RequestLoggerWithConfig(echomiddleware.RequestLoggerConfig{
		LogURI:    true,
		LogStatus: true,
		LogValuesFunc: func(c echo.Context, v echomiddleware.RequestLoggerValues) error {
			log.Printf("%d %s", v.Status, v.URI)
			return nil
		},
	}))
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.CORSWithConfig(echomiddleware.CORSConfig{
		AllowOrigins: cfg.AllowedOrigins,
	}))

	// Read-model queries (dashboard and breakdowns)
	e.GET("/api/dashboard/stats", api.GetDashboardStats)
	e.GET("/api/processos/by-status", api.GetStatusBreakdown)
	e.GET("/api/processos/by-area", api.GetAreaBreakdown)
	e.GET("/api/processos/recentes", api.GetRecentCases)
	e.GET("/api/processos/by-period", api.GetPeriodStats)

	// Case collection
	e.GET("/api/processos", api.GetCases)
	e.GET("/api/processos/:id", api.GetCase)
	e.POST("/api/processos", api.CreateCase)
	e.PUT("/api/processos/:id", api.UpdateCase)
	e.DELETE("/api/processos/:id", api.DeleteCase)

	// Client collection
	e.GET("/api/clientes", api.GetClients)
	e.POST("/api/clientes", api.CreateClient)
	e.PUT("/api/clientes/:id", api.UpdateClient)

	// Task collection
	e.GET("/api/tarefas", api.GetTasks)
	e.POST("/api/tarefas", api.CreateTask)
	e.PUT("/api/tarefas/:id/concluir", api.CompleteTask)

	// Read-only fixtures
	e.GET("/api/financeiro", handlers.GetInvoices)
	e.GET("/api/agenda", handlers.GetAppointments)

	// Reports
	e.GET("/api/reports/processos", api.ExportCasesReport)

	// Start server
	log.Printf("Server starting on port %s", cfg.ServerPort)
	if err := e.Start(":" + cfg.ServerPort); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
