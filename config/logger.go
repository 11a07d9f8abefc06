package config

import (
	"log"
	"strings"

	"authorshaven/global"

	"go.uber.org/zap"
)

func initLogger() {
	var cfg zap.Config
	switch strings.ToLower(AppConfig.App.Mode) {
	case "prod", "production":
		cfg = zap.NewProductionConfig()
	default:
		cfg = zap.NewDevelopmentConfig()
	}

	logger, err := cfg.Build()
	if err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}

	global.Log = logger.Sugar()
}
