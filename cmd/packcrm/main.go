package main

import (
	"context"
	"fmt"

	"github.com/denmor86/packcrm/internal/app"
	"github.com/denmor86/packcrm/internal/config"
	"github.com/denmor86/packcrm/internal/logger"
	"github.com/denmor86/packcrm/internal/storage"
)

func main() {
	// загрузка конфига
	config := config.NewConfig()
	// инициализация логгера
	if err := logger.Initialize(config.Server.LogLevel); err != nil {
		panic(fmt.Sprintf("can't initialize logger: %s ", err.Error()))
	}
	defer logger.Sync()

	// подключение к БД и миграции
	db, err := storage.NewDatabase(config.Server.DatabaseDSN)
	if err != nil {
		logger.Panic("can't create database:", err.Error())
	}
	defer db.Close()
	if err := db.Initialize(context.Background()); err != nil {
		logger.Panic("can't initialize database:", err.Error())
	}

	// запуск сервера
	app.Run(config, storage.NewStorage(db))
}
