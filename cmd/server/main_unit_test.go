package main

import (
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"artist-hub.backend/internal/config"
	plog "artist-hub.backend/pkg/logger"
)

func withMainHooks(t *testing.T) {
	t.Helper()
	origLoadDotenv := loadDotenv
	origLoadCfg := loadCfg
	origInitLog := initLog
	origInitRedis := initRedis
	origOpenDB := openDB
	origRunServer := runServer
	origRegisterer := metricsRegisterer

	t.Cleanup(func() {
		loadDotenv = origLoadDotenv
		loadCfg = origLoadCfg
		initLog = origInitLog
		initRedis = origInitRedis
		openDB = origOpenDB
		runServer = origRunServer
		metricsRegisterer = origRegisterer
	})

	// fresh registry so repeated runs do not trip duplicate registration
	metricsRegisterer = prometheus.NewRegistry()
}

func baseTestConfig() *config.Config {
	return &config.Config{
		Server: config.ServerConfig{
			Port: "18080",
			Env:  "development",
		},
		Database: config.DatabaseConfig{
			Host:     "localhost",
			Port:     5432,
			User:     "postgres",
			Password: "postgres",
			DBName:   "artisthub",
			SSLMode:  "disable",
		},
		Redis: config.RedisConfig{
			URL:      "redis://localhost:6379",
			Password: "",
		},
		JWT: config.JWTConfig{
			Secret:       "secret",
			AccessExpiry: 15 * time.Minute,
		},
		SMTP: config.SMTPConfig{
			Host:   "localhost",
			Port:   2525,
			Sender: "noreply@artisthub.io",
		},
	}
}

func sqliteOpener(name string) func(string) (*gorm.DB, error) {
	return func(string) (*gorm.DB, error) {
		dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", name)
		return gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	}
}

func TestRunMainProcess_RedisInitError(t *testing.T) {
	withMainHooks(t)

	loadDotenv = func(...string) error { return nil }
	loadCfg = baseTestConfig
	initLog = plog.Init
	initRedis = func(string, string) error { return errors.New("redis down") }

	if err := runMainProcess(); err == nil {
		t.Fatal("expected redis init error")
	}
}

func TestRunMainProcess_DBOpenError(t *testing.T) {
	withMainHooks(t)

	loadDotenv = func(...string) error { return nil }
	loadCfg = baseTestConfig
	initLog = plog.Init
	initRedis = func(string, string) error { return nil }
	openDB = func(string) (*gorm.DB, error) { return nil, errors.New("db open failed") }

	if err := runMainProcess(); err == nil {
		t.Fatal("expected db open error")
	}
}

func TestRunMainProcess_ServerRunError(t *testing.T) {
	withMainHooks(t)

	loadDotenv = func(...string) error { return errors.New("no dotenv") }
	loadCfg = baseTestConfig
	initLog = plog.Init
	initRedis = func(string, string) error { return nil }
	openDB = sqliteOpener("main_run_err")
	runServer = func(*gin.Engine, string) error { return errors.New("port in use") }

	if err := runMainProcess(); err == nil {
		t.Fatal("expected server run error")
	}
}

func TestRunMainProcess_Success(t *testing.T) {
	withMainHooks(t)

	loadDotenv = func(...string) error { return nil }
	loadCfg = baseTestConfig
	initLog = plog.Init
	initRedis = func(string, string) error { return nil }
	openDB = sqliteOpener("main_success")

	var registered []string
	runServer = func(r *gin.Engine, port string) error {
		if port != "18080" {
			t.Fatalf("unexpected port: %s", port)
		}
		for _, route := range r.Routes() {
			registered = append(registered, route.Method+" "+route.Path)
		}
		return nil
	}

	if err := runMainProcess(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	for _, want := range []string{"POST /auth/login", "GET /api/artists", "GET /metrics", "GET /"} {
		found := false
		for _, got := range registered {
			if got == want {
				found = true
				break
			}
		}
		if !found {
			t.Fatalf("route %s not registered, got %v", want, registered)
		}
	}
}
