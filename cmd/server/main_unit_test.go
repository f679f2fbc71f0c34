package main

import (
	"context"
	"errors"
	"testing"

	"github.com/gin-gonic/gin"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"it-short.backend/internal/config"
	"it-short.backend/internal/infrastructure/storage"
	plog "it-short.backend/pkg/logger"
)

func withMainHooks(t *testing.T) {
	t.Helper()
	origLoadDotenv := loadDotenv
	origLoadCfg := loadCfg
	origInitLog := initLog
	origOpenDB := openDB
	origNewFileStore := newFileStore
	origRunServer := runServer

	t.Cleanup(func() {
		loadDotenv = origLoadDotenv
		loadCfg = origLoadCfg
		initLog = origInitLog
		openDB = origOpenDB
		newFileStore = origNewFileStore
		runServer = origRunServer
	})
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
			DBName:   "itshort",
			SSLMode:  "disable",
		},
		Security: config.SecurityConfig{
			BcryptCost: 4,
			TokenKey:   "0000000000000000000000000000000000000000000000000000000000000000",
		},
		Uploads: config.UploadsConfig{
			Dir: "uploads",
		},
	}
}

type noopFileStore struct{}

func (noopFileStore) Save(context.Context, string, []byte) (string, error) { return "", nil }

func TestRunMainProcess_DBOpenError(t *testing.T) {
	withMainHooks(t)

	loadDotenv = func(...string) error { return nil }
	loadCfg = baseTestConfig
	initLog = plog.Init
	openDB = func(string) (*gorm.DB, error) { return nil, errors.New("db open failed") }

	err := runMainProcess()
	if err == nil {
		t.Fatal("expected db open error")
	}
}

func TestRunMainProcess_BadTokenKey(t *testing.T) {
	withMainHooks(t)

	loadDotenv = func(...string) error { return nil }
	loadCfg = func() *config.Config {
		cfg := baseTestConfig()
		cfg.Security.TokenKey = "not-hex"
		return cfg
	}
	initLog = plog.Init
	openDB = func(string) (*gorm.DB, error) {
		return gorm.Open(sqlite.Open("file:main_token_err?mode=memory&cache=shared"), &gorm.Config{})
	}

	err := runMainProcess()
	if err == nil {
		t.Fatal("expected token service error")
	}
}

func TestRunMainProcess_FileStoreError(t *testing.T) {
	withMainHooks(t)

	loadDotenv = func(...string) error { return nil }
	loadCfg = baseTestConfig
	initLog = plog.Init
	openDB = func(string) (*gorm.DB, error) {
		return gorm.Open(sqlite.Open("file:main_store_err?mode=memory&cache=shared"), &gorm.Config{})
	}
	newFileStore = func(string) (storage.FileStore, error) { return nil, errors.New("bad upload dir") }

	err := runMainProcess()
	if err == nil {
		t.Fatal("expected file store error")
	}
}

func TestRunMainProcess_ServerRunError(t *testing.T) {
	withMainHooks(t)

	loadDotenv = func(...string) error { return nil }
	loadCfg = baseTestConfig
	initLog = plog.Init
	openDB = func(string) (*gorm.DB, error) {
		return gorm.Open(sqlite.Open("file:main_server_err?mode=memory&cache=shared"), &gorm.Config{})
	}
	newFileStore = func(string) (storage.FileStore, error) { return noopFileStore{}, nil }
	runServer = func(*gin.Engine, string) error { return errors.New("listen failed") }

	err := runMainProcess()
	if err == nil {
		t.Fatal("expected server run error")
	}
}

func TestRunMainProcess_SuccessPath(t *testing.T) {
	withMainHooks(t)

	loadDotenv = func(...string) error { return errors.New("no dotenv") }
	loadCfg = baseTestConfig
	initLog = plog.Init
	openDB = func(string) (*gorm.DB, error) {
		return gorm.Open(sqlite.Open("file:main_success?mode=memory&cache=shared"), &gorm.Config{})
	}
	newFileStore = func(string) (storage.FileStore, error) { return noopFileStore{}, nil }

	var started bool
	runServer = func(r *gin.Engine, port string) error {
		started = true
		if port != "18080" {
			t.Fatalf("unexpected port: %s", port)
		}
		if len(r.Routes()) == 0 {
			t.Fatal("expected routes registered before start")
		}
		return nil
	}

	if err := runMainProcess(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !started {
		t.Fatal("expected server to be started")
	}
}
