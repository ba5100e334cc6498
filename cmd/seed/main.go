package main

import (
	"context"
	"database/sql"
	"flag"
	"log/slog"
	"os"
	"time"

	"github.com/joho/godotenv"

	"github.com/facilitta/workforce-manager/backend/internal/config"
	"github.com/facilitta/workforce-manager/backend/internal/repository"
	"github.com/facilitta/workforce-manager/backend/internal/seed"

	_ "github.com/jackc/pgx/v5/stdlib"
)

func main() {
	var op int
	var n int
	var csvPath string

	flag.IntVar(&op, "op", 0, "operation (1: seed random users, 2: seed random postos with employees, 3: import employees from CSV)")
	flag.IntVar(&n, "n", 5, "number of records to insert")
	flag.StringVar(&csvPath, "csv", "", "path of the employee CSV file for op 3")
	flag.Parse()

	logger := slog.New(slog.NewTextHandler(os.Stdout, nil))

	_ = godotenv.Load()

	cfg, err := config.LoadConfig()
	if err != nil {
		logger.Error("unable to load configuration", slog.String("error", err.Error()))
		os.Exit(1)
	}

	dbpool, err := sql.Open("pgx", cfg.Database.DSN)
	if err != nil {
		logger.Error("unable to create database pool", "error", err)
		return
	}
	defer dbpool.Close()

	dbpool.SetMaxOpenConns(cfg.Database.MaxOpenConns)
	dbpool.SetMaxIdleConns(cfg.Database.MaxIdleConns)
	dbpool.SetConnMaxIdleTime(time.Duration(cfg.Database.MaxIdleTime) * time.Second)

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(cfg.Database.ConnectTimeout)*time.Second)
	defer cancel()

	// sql.Open only builds the pool object, it does not connect; ping to be sure
	if err := dbpool.PingContext(ctx); err != nil {
		logger.Error("unable to reach the database", "error", err)
		return
	}

	repo := repository.NewRepository(cfg, dbpool)

	switch op {
	case 0:
		slog.Error("no operation given")
	case 1:
		if n <= 0 {
			slog.Error("the number of users must be positive")
		} else {
			seed.SeedUsers(repo, n, cfg.Seed.User.Password, cfg.Email.UserDomain)
		}
	case 2:
		if n <= 0 {
			slog.Error("the number of postos must be positive")
		} else {
			postoIDs := seed.SeedPostos(repo, n)
			seed.SeedEmployees(repo, postoIDs, cfg.Seed.EmployeesPerPosto)
		}
	case 3:
		if csvPath == "" {
			slog.Error("a CSV path is required for op 3")
		} else {
			seed.SeedEmployeesFromCSV(repo, csvPath)
		}
	default:
		slog.Error("unknown operation")
	}
}
