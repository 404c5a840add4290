package main

import (
	"flag"
	"log"
	"time"

	"github.com/fekuna/omnipos-pricing-service/config"
	"github.com/fekuna/omnipos-pricing-service/migrations"
	"github.com/fekuna/omnipos-pricing-service/pkg/logger"
	"github.com/fekuna/omnipos-pricing-service/pkg/postgres"
	"github.com/pressly/goose/v3"
	"go.uber.org/zap"
)

// Usage: migrate [up|down|status|version]
func main() {
	flag.Parse()
	command := "up"
	if flag.NArg() > 0 {
		command = flag.Arg(0)
	}

	cfg, err := config.LoadEnv()
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	appLogger := logger.NewZapLogger(&logger.ZapLoggerConfig{
		IsDevelopment: cfg.Server.AppEnv == "dev",
		Encoding:      cfg.Logger.Encoding,
		Level:         cfg.Logger.Level,
	})
	defer appLogger.Sync()

	db, err := postgres.NewPostgres(&postgres.Config{
		Host:            cfg.Postgres.Host,
		Port:            cfg.Postgres.Port,
		User:            cfg.Postgres.User,
		Password:        cfg.Postgres.Password,
		DBName:          cfg.Postgres.DBName,
		SSLMode:         cfg.Postgres.SSLMode,
		MaxOpenConns:    1,
		MaxIdleConns:    1,
		ConnMaxLifetime: time.Minute,
	})
	if err != nil {
		appLogger.Fatal("Could not connect to database", zap.Error(err))
	}
	defer db.Close()

	goose.SetBaseFS(migrations.FS)
	if err := goose.SetDialect("postgres"); err != nil {
		appLogger.Fatal("Could not set goose dialect", zap.Error(err))
	}

	if err := goose.Run(command, db.DB, "."); err != nil {
		appLogger.Fatal("Migration failed", zap.String("command", command), zap.Error(err))
	}
	appLogger.Info("Migration finished", zap.String("command", command))
}
