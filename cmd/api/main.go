package main

import (
	"context"
	"log"
	"strings"
	"time"

	"github.com/gofiber/contrib/otelfiber"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/gofiber/swagger"
	_ "github.com/joho/godotenv/autoload"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"vetapi/docs"
	"vetapi/internal/auth"
	"vetapi/internal/config"
	"vetapi/internal/database"
	"vetapi/internal/database/migration"
	handlers "vetapi/internal/http/handler"
	"vetapi/internal/http/middleware"
	"vetapi/internal/otel"
	"vetapi/internal/repository/postgres"
	"vetapi/internal/service"
	"vetapi/internal/storage"
)

// @title Veterinary Clinic API
// @version 1.0
// @BasePath /
func main() {
	// Load configuration from environment variables (.env auto-loaded if present)
	cfg := config.Load()

	ctx := context.Background()

	// Tracing first so the instrumented DB driver picks up the provider
	shutdownTracing, err := otel.Init(ctx, time.UTC)
	if err != nil {
		log.Fatalf("failed to initialize tracing: %v", err)
	}
	defer func() {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = shutdownTracing(shutdownCtx)
	}()

	// PostgreSQL connection (pooled via database/sql, instrumented with otelsql)
	db, err := database.NewPostgres(cfg.Database)
	if err != nil {
		log.Fatalf("failed to connect to database: %v", err)
	}
	defer db.Close()

	if err := migration.EnsureMigrated(ctx, db, time.UTC, cfg.Database.Host); err != nil {
		log.Fatalf("failed to migrate database: %v", err)
	}

	// S3-compatible object storage for attachments and report files
	objStore, err := storage.NewMinIO(cfg.MinIO)
	if err != nil {
		log.Fatalf("failed to initialize object storage: %v", err)
	}

	clientRepo := postgres.NewClientPostgres(db)
	patientRepo := postgres.NewPatientPostgres(db)
	recordRepo := postgres.NewMedicalRecordPostgres(db)
	vaccinationRepo := postgres.NewVaccinationPostgres(db)
	surgeryRepo := postgres.NewSurgeryPostgres(db)
	bloodReportRepo := postgres.NewBloodReportPostgres(db)
	inventoryRepo := postgres.NewInventoryPostgres(db)
	supplierRepo := postgres.NewSupplierPostgres(db)
	medicineRepo := postgres.NewMedicinePostgres(db)
	saleRepo := postgres.NewSalePostgres(db)
	appointmentRepo := postgres.NewAppointmentPostgres(db)
	staffRepo := postgres.NewStaffPostgres(db)

	supplierSvc := service.NewSupplierService(supplierRepo)
	inventorySvc := service.NewInventoryService(inventoryRepo, supplierRepo, supplierSvc)
	medicineSvc := service.NewMedicineService(medicineRepo, inventoryRepo, inventorySvc)
	patientSvc := service.NewPatientService(patientRepo, clientRepo, recordRepo, objStore)
	clientSvc := service.NewClientService(clientRepo, patientRepo, patientSvc)
	recordSvc := service.NewMedicalRecordService(recordRepo, patientRepo, objStore)
	vaccinationSvc := service.NewVaccinationService(vaccinationRepo, patientRepo)
	surgerySvc := service.NewSurgeryService(surgeryRepo, patientRepo)
	bloodReportSvc := service.NewBloodReportService(bloodReportRepo, patientRepo)
	saleSvc := service.NewSaleService(saleRepo)
	appointmentSvc := service.NewAppointmentService(appointmentRepo)
	staffSvc := service.NewStaffService(staffRepo, auth.NewTokenIssuer(cfg.Auth.JWTSecret, cfg.Auth.TokenExpiryMins))

	app := fiber.New(fiber.Config{
		ErrorHandler: handlers.ErrorHandler(),
	})

	// Global middleware: request ids, JSON request logs, traces, metrics
	app.Use(middleware.RequestID())
	app.Use(middleware.Logger())
	app.Use(otelfiber.Middleware())

	promMiddleware, err := middleware.NewPrometheusMiddleware(prometheus.DefaultRegisterer)
	if err != nil {
		log.Fatalf("failed to register metrics: %v", err)
	}
	app.Use(promMiddleware.Handler())
	app.Get("/metrics", adaptor.HTTPHandler(promhttp.Handler()))

	handlers.RegisterRoutes(app, db, objStore, handlers.Services{
		Clients:        clientSvc,
		Patients:       patientSvc,
		MedicalRecords: recordSvc,
		Vaccinations:   vaccinationSvc,
		Surgeries:      surgerySvc,
		BloodReports:   bloodReportSvc,
		Inventory:      inventorySvc,
		Suppliers:      supplierSvc,
		Medicines:      medicineSvc,
		Sales:          saleSvc,
		Appointments:   appointmentSvc,
		Staffs:         staffSvc,
	})

	// Swagger UI with dynamic host and scheme
	app.Get("/swagger/*", func(c *fiber.Ctx) error {
		scheme := c.Protocol()
		if proto := c.Get("X-Forwarded-Proto"); proto != "" {
			scheme = strings.Split(proto, ",")[0]
		}

		docs.SwaggerInfo.Host = c.Get("Host")
		docs.SwaggerInfo.Schemes = []string{scheme}

		return swagger.HandlerDefault(c)
	})

	addr := ":" + cfg.Port

	if err := app.Listen(addr); err != nil {
		log.Fatalf("failed to start server: %v", err)
	}
}
