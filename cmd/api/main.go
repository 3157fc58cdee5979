package main

import (
	"fmt"
	"log"
	"net/http"

	"github.com/pontolabs/ponto-backend/internal/config"
	appHTTP "github.com/pontolabs/ponto-backend/internal/handler/http"
	"github.com/pontolabs/ponto-backend/internal/pkg/database"
	"github.com/pontolabs/ponto-backend/internal/pkg/jwt"
	"github.com/pontolabs/ponto-backend/internal/pkg/storage"
	"github.com/pontolabs/ponto-backend/internal/repository/postgresql"
	recordService "github.com/pontolabs/ponto-backend/internal/service/record"
	settingsService "github.com/pontolabs/ponto-backend/internal/service/settings"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Error loading config:", err)
		return
	}

	db, err := database.NewPostgreSQLDB(cfg.DatabaseURL())
	if err != nil {
		fmt.Println("Error connecting to database:", err)
		return
	}

	recordRepo := postgresql.NewRecordRepository(db)
	settingsRepo := postgresql.NewSettingsRepository(db)

	jwtService := jwt.NewJWTService(cfg.JWT.Secret, cfg.JWT.AccessExpiration)

	var fileStorage storage.FileStorage
	switch cfg.Storage.Type {
	case "local":
		fileStorage, err = storage.NewLocalStorage(
			cfg.Storage.BasePath,
			cfg.Storage.BaseURL,
		)
		if err != nil {
			log.Fatal("Failed to initialize local storage:", err)
		}
	default:
		log.Fatal("Unsupported storage type: ", cfg.Storage.Type)
	}

	recordSvc := recordService.NewRecordService(recordRepo, settingsRepo, fileStorage)
	settingsSvc := settingsService.NewSettingsService(settingsRepo)

	recordHandler := appHTTP.NewRecordHandler(recordSvc)
	settingsHandler := appHTTP.NewSettingsHandler(settingsSvc)

	router := appHTTP.NewRouter(cfg, jwtService, recordHandler, settingsHandler)

	addr := fmt.Sprintf(":%d", cfg.App.Port)
	fmt.Println("Server listening on", addr)
	if err := http.ListenAndServe(addr, router); err != nil {
		log.Fatal("Server error:", err)
	}
}
