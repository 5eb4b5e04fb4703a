package config

import (
	"fmt"

	"github.com/fleximart/retail-etl/internal/db"
	"github.com/spf13/viper"
)

// Config carries everything the ETL run needs: the store target, where the
// raw extracts live, and where the report and log are written.
type Config struct {
	DB            db.Config
	RawDir        string
	ReportPath    string
	LogPath       string
	LogLevel      string
	MigrationsDir string
}

// Default returns the configuration used when no config file or environment
// overrides are present.
func Default() Config {
	return Config{
		DB:            db.DefaultConfig(),
		RawDir:        "./data/raw",
		ReportPath:    "./data_quality_report.txt",
		LogPath:       "./etl.log",
		LogLevel:      "info",
		MigrationsDir: "./migrations",
	}
}

// Load reads config.yaml from configPath and applies environment overrides
// (FLEXIMART_DATABASE_HOST, FLEXIMART_ETL_RAW_DIR, ...) on top of defaults.
func Load(configPath string) (Config, error) {
	cfg := Default()

	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(configPath)
	v.AutomaticEnv()
	v.SetEnvPrefix("FLEXIMART")

	// Map nested keys to flat env vars
	v.BindEnv("database.host")
	v.BindEnv("database.port")
	v.BindEnv("database.user")
	v.BindEnv("database.password")
	v.BindEnv("database.dbname")
	v.BindEnv("database.sslmode")
	v.BindEnv("etl.raw_dir")
	v.BindEnv("etl.report_path")
	v.BindEnv("etl.log_path")
	v.BindEnv("etl.log_level")
	v.BindEnv("etl.migrations_dir")

	if err := v.ReadInConfig(); err != nil {
		// Config file not found? Use defaults + env
		fmt.Println("No config.yaml found, using defaults and env vars")
	}

	if v.IsSet("database.host") {
		cfg.DB.Host = v.GetString("database.host")
	}
	if v.IsSet("database.port") {
		cfg.DB.Port = v.GetInt("database.port")
	}
	if v.IsSet("database.user") {
		cfg.DB.User = v.GetString("database.user")
	}
	if v.IsSet("database.password") {
		cfg.DB.Password = v.GetString("database.password")
	}
	if v.IsSet("database.dbname") {
		cfg.DB.DBName = v.GetString("database.dbname")
	}
	if v.IsSet("database.sslmode") {
		cfg.DB.SSLMode = v.GetString("database.sslmode")
	}
	if v.IsSet("etl.raw_dir") {
		cfg.RawDir = v.GetString("etl.raw_dir")
	}
	if v.IsSet("etl.report_path") {
		cfg.ReportPath = v.GetString("etl.report_path")
	}
	if v.IsSet("etl.log_path") {
		cfg.LogPath = v.GetString("etl.log_path")
	}
	if v.IsSet("etl.log_level") {
		cfg.LogLevel = v.GetString("etl.log_level")
	}
	if v.IsSet("etl.migrations_dir") {
		cfg.MigrationsDir = v.GetString("etl.migrations_dir")
	}

	return cfg, nil
}
