package main

import (
	"github.com/DRSN-tech/botstore-backend/internal/app"
	config "github.com/DRSN-tech/botstore-backend/internal/cfg"
	"github.com/DRSN-tech/botstore-backend/pkg/logger"
	"github.com/joho/godotenv"
)

// @title BotStore API
// @version 1.0
// @description Каталог, корзина и сессия магазина робототехники
// @host localhost:8080
// @BasePath /api/v1
func main() {
	_ = godotenv.Load() // .env необязателен, работаем на значениях по умолчанию

	logCfg := config.LoadLoggerCfg()
	log := logger.NewZapLogger(logCfg.Mode, logCfg.Filename)

	app.Run(log)
}
