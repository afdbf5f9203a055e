package config

import (
	"log"
	"os"

	"github.com/joho/godotenv"
)

type Config struct {
	Addr        string `mapstructure:"ADDR"`
	Environment string `mapstructure:"ENV"`
	RandomSeed  string `mapstructure:"RANDOM_SEED"`
}

func Load() (*Config, error) {
	// Пытаемся загрузить .env файл (игнорируем ошибку, если файла нет)
	if err := godotenv.Load(".env"); err != nil {
		log.Println("⚠️  No .env file found, using environment variables")
	} else {
		log.Println("✅ Loaded configuration from .env file")
	}

	cfg := &Config{
		Addr:        os.Getenv("ADDR"),
		Environment: os.Getenv("ENV"),
		RandomSeed:  os.Getenv("RANDOM_SEED"),
	}

	// Устанавливаем дефолтные значения
	if cfg.Addr == "" {
		cfg.Addr = ":8080"
	}
	if cfg.Environment == "" {
		cfg.Environment = "development"
	}

	return cfg, nil
}
