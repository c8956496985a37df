package main

import (
	"fmt"
	"log/slog"
	"os"
	"time"

	"shipping/cmd"
	httpadapter "shipping/internal/adapters/in/http"
	"shipping/internal/adapters/out/postgres"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/labstack/gommon/log"
)

func main() {
	configs := getConfigs()
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))

	gormDB, err := postgres.NewGormDB(configs.DBConnectionString())
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	if err = postgres.RunMigrations(gormDB); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}

	publisher, err := cmd.NewStatusChangedPublisher(configs, logger)
	if err != nil {
		log.Fatalf("Failed to connect Kafka publisher: %v", err)
	}
	defer func() {
		_ = publisher.Close()
	}()

	root := cmd.NewCompositionRoot(gormDB, publisher, logger)

	jobManager := root.CreateJobManager(configs.OverdueScanSchedule, configs.OverdueThreshold)
	if err = jobManager.StartAll(); err != nil {
		log.Fatalf("Failed to start background jobs: %v", err)
	}
	defer jobManager.StopAll()

	startWebServer(&root, configs.HTTPPort)
}

func getConfigs() cmd.Config {
	config := cmd.Config{
		HTTPPort:                goDotEnvVariable("HTTP_PORT"),
		DBHost:                  goDotEnvVariable("DB_HOST"),
		DBPort:                  goDotEnvVariable("DB_PORT"),
		DBUser:                  goDotEnvVariable("DB_USER"),
		DBPassword:              goDotEnvVariable("DB_PASSWORD"),
		DBName:                  goDotEnvVariable("DB_NAME"),
		DBSslMode:               goDotEnvVariable("DB_SSLMODE"),
		KafkaHost:               goDotEnvVariable("KAFKA_HOST"),
		KafkaStatusChangedTopic: goDotEnvVariable("KAFKA_STATUS_CHANGED_TOPIC"),
		OverdueScanSchedule:     goDotEnvVariable("OVERDUE_SCAN_SCHEDULE"),
	}

	threshold, err := time.ParseDuration(goDotEnvVariable("OVERDUE_THRESHOLD"))
	if err != nil {
		log.Fatalf("Invalid OVERDUE_THRESHOLD value: %v", err)
	}
	config.OverdueThreshold = threshold

	return config
}

func goDotEnvVariable(key string) string {
	err := godotenv.Load(".env")
	if err != nil {
		log.Fatalf("Error loading .env file")
	}
	return os.Getenv(key)
}

func startWebServer(root *cmd.CompositionRoot, port string) {
	server, err := httpadapter.NewServer(
		root.CreateRegisterOrderCommandHandler(),
		root.CreateUpdateShipmentStatusCommandHandler(),
		root.CreateCreateShipmentCommandHandler(),
		root.CreateEditShipmentCommandHandler(),
		root.CreateGetShipmentQueryHandler(),
		root.CreateGetNextStatusesQueryHandler(),
	)
	if err != nil {
		log.Fatalf("Failed to construct HTTP server: %v", err)
	}

	e := echo.New()
	server.RegisterRoutes(e)

	e.Logger.Fatal(e.Start(fmt.Sprintf("0.0.0.0:%s", port)))
}
