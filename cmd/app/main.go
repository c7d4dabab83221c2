package main

import (
	"database/sql"
	"fmt"
	"log/slog"
	"os"

	"freightline/cmd"
	httpadapter "freightline/internal/adapters/in/http"
	"freightline/internal/adapters/out/postgres/carrierrepo"
	"freightline/internal/adapters/out/postgres/facilityrepo"
	"freightline/internal/adapters/out/postgres/orderrepo"
	"freightline/internal/adapters/out/postgres/receiptrepo"
	"freightline/internal/adapters/out/postgres/routerepo"
	"freightline/internal/adapters/out/postgres/shipmentrepo"
	"freightline/internal/adapters/out/postgres/stockrepo"
	"freightline/internal/jobs"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/labstack/gommon/log"
	_ "github.com/lib/pq"
	gorm_postgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func main() {
	configs := getConfigs()
	logger := slog.New(slog.NewTextHandler(os.Stdout, nil))

	gormDB := mustOpenDatabase(configs)

	app := cmd.NewCompositionRoot(configs, gormDB, logger)

	jobManager := jobs.NewJobManager(app.CreateAuditStockCommandHandler(), logger)
	if err := jobManager.StartAll(); err != nil {
		log.Fatalf("Failed to start background jobs: %v", err)
	}
	defer jobManager.StopAll()

	startWebServer(&app, configs.HTTPPort)
}

func getConfigs() cmd.Config {
	config := cmd.Config{
		HTTPPort:     goDotEnvVariable("HTTP_PORT"),
		DBHost:       goDotEnvVariable("DB_HOST"),
		DBPort:       goDotEnvVariable("DB_PORT"),
		DBUser:       goDotEnvVariable("DB_USER"),
		DBPassword:   goDotEnvVariable("DB_PASSWORD"),
		DBName:       goDotEnvVariable("DB_NAME"),
		DBSslMode:    goDotEnvVariable("DB_SSLMODE"),
		ProofBaseURL: goDotEnvVariable("PROOF_BASE_URL"),
	}
	return config
}

func goDotEnvVariable(key string) string {
	err := godotenv.Load(".env")
	if err != nil {
		log.Fatalf("Error loading .env file")
	}
	return os.Getenv(key)
}

// mustOpenDatabase probes the connection with the plain driver first, so a
// misconfigured DSN fails with a driver error instead of a GORM one, then
// opens the GORM session and migrates the schema.
func mustOpenDatabase(configs cmd.Config) *gorm.DB {
	dsn := fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		configs.DBHost, configs.DBPort, configs.DBUser,
		configs.DBPassword, configs.DBName, configs.DBSslMode,
	)

	probe, err := sql.Open("postgres", dsn)
	if err != nil {
		log.Fatalf("Failed to open database: %v", err)
	}
	if err = probe.Ping(); err != nil {
		log.Fatalf("Failed to reach database: %v", err)
	}
	_ = probe.Close()

	gormDB, err := gorm.Open(gorm_postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Fatalf("Failed to open GORM session: %v", err)
	}

	err = gormDB.AutoMigrate(
		&facilityrepo.FacilityDTO{},
		&routerepo.EdgeDTO{},
		&carrierrepo.CarrierDTO{},
		&orderrepo.OrderDTO{},
		&shipmentrepo.ShipmentDTO{},
		&shipmentrepo.LegDTO{},
		&stockrepo.StockRecordDTO{},
		&stockrepo.StorageSlotDTO{},
		&stockrepo.AuditEntryDTO{},
		&receiptrepo.ReceiptDTO{},
		&receiptrepo.ReceiptLineDTO{},
	)
	if err != nil {
		log.Fatalf("Failed to migrate schema: %v", err)
	}

	return gormDB
}

func startWebServer(app *cmd.CompositionRoot, port string) {
	e := echo.New()

	server := httpadapter.NewServer(
		app.CreatePlanShipmentCommandHandler(),
		app.CreateStartLegCommandHandler(),
		app.CreateCompleteLegCommandHandler(),
		app.CreateFailLegCommandHandler(),
		app.CreateReassignLegCommandHandler(),
		app.CreateCancelOrderCommandHandler(),
		app.CreatePostInboundReceiptCommandHandler(),
		app.CreatePostOutboundReceiptCommandHandler(),
		app.CreateCreateFacilityCommandHandler(),
		app.CreateCreateStorageSlotCommandHandler(),
		app.CreateCreateRouteEdgeCommandHandler(),
		app.CreateCreateCarrierCommandHandler(),
		app.CreateGetCurrentLegQueryHandler(),
		app.CreateGetStockRecordQueryHandler(),
		app.CreateGetStockReportQueryHandler(),
	)
	server.RegisterRoutes(e)

	e.Logger.Fatal(e.Start(fmt.Sprintf("0.0.0.0:%s", port)))
}
