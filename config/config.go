package config

import "os"

type Config struct {
	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string

	GCSBucket     string
	GenaiProject  string
	GenaiLocation string
}

func LoadConfig() Config {
	return Config{
		DBHost:     os.Getenv("DB_HOST"),
		DBPort:     os.Getenv("DB_PORT"),
		DBUser:     os.Getenv("DB_USER"),
		DBPassword: os.Getenv("DB_PASSWORD"),
		DBName:     os.Getenv("DB_NAME"),

		GCSBucket:     os.Getenv("GCS_BUCKET"),
		GenaiProject:  os.Getenv("GENAI_PROJECT"),
		GenaiLocation: os.Getenv("GENAI_LOCATION"),
	}
}
