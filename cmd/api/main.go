package main

import (
	"BoxScoreApi/internal/data"
	"BoxScoreApi/internal/jsonlog"
	"expvar"
	"flag"
	"fmt"
	"os"
	"runtime"
	"strconv"
	"sync"
	"time"

	"github.com/joho/godotenv"
)

type config struct {
	version string
	port    int
	env     string
	dataset struct {
		path string
	}
	limiter struct {
		rps     float64
		burst   int
		enabled bool
	}
}

type application struct {
	logger *jsonlog.Logger
	config config
	models data.Models
	wg     sync.WaitGroup
}

func main() {
	var cfg config

	// Flag defaults can be overridden from a .env file or the environment.
	_ = godotenv.Load()

	// Server Config
	cfg.version = "1.0.0"
	flag.IntVar(&cfg.port, "port", envInt("PORT", 8000), "http server port")
	flag.StringVar(&cfg.env, "env", envString("ENV", "development"),
		"Environment (development|staging|production)")

	// Dataset Config
	flag.StringVar(&cfg.dataset.path, "data-path", envString("DATA_PATH", "data/box_scores.csv"),
		"Path to box score CSV file")

	// Limiter Config
	flag.Float64Var(&cfg.limiter.rps, "limiter-rps", 2, "Rate limiter maximum requests per second")
	flag.IntVar(&cfg.limiter.burst, "limiter-burst", 4, "Rate limiter maximum burst")
	flag.BoolVar(&cfg.limiter.enabled, "limiter-enabled", true, "Enable rate limiter")

	// Version
	displayVersion := flag.Bool("version", false, "Show API version and immediately exit")

	flag.Parse()

	if *displayVersion {
		fmt.Printf("Version: %s\n", cfg.version)
		os.Exit(0)
	}

	logger := jsonlog.New(os.Stdout, jsonlog.LevelInfo)

	rows, err := data.Load(cfg.dataset.path)
	if err != nil {
		logger.PrintFatal(err, map[string]string{"path": cfg.dataset.path})
	}
	models := data.NewModels(rows)
	logger.PrintInfo("box score dataset loaded", map[string]string{
		"path":  cfg.dataset.path,
		"rows":  strconv.Itoa(models.Games.Rows()),
		"games": strconv.Itoa(models.Games.Games()),
	})

	expvar.NewString("version").Set(cfg.version)
	expvar.Publish("goroutines", expvar.Func(func() any {
		return runtime.NumGoroutine()
	}))
	expvar.Publish("dataset_rows", expvar.Func(func() any {
		return models.Games.Rows()
	}))
	expvar.Publish("timestamp", expvar.Func(func() any {
		return time.Now().Unix()
	}))

	app := &application{
		logger: logger,
		config: cfg,
		models: models,
	}

	err = app.serve()
	if err != nil {
		logger.PrintFatal(err, nil)
	}
}

func envString(key string, defaultValue string) string {
	s := os.Getenv(key)
	if s == "" {
		return defaultValue
	}
	return s
}

func envInt(key string, defaultValue int) int {
	s := os.Getenv(key)
	if s == "" {
		return defaultValue
	}
	i, err := strconv.Atoi(s)
	if err != nil {
		return defaultValue
	}
	return i
}
