package config

import "time"

const (
	DriverPostgres = "pgx"
	DriverSQLite   = "sqlite3"
)

// defaultConfig returns the lowest-priority configuration layer.
// Secrets and the DSN have no defaults.
func defaultConfig() *StructuredConfig {
	return &StructuredConfig{
		App: App{
			TokenIssuer:   "blog-backend",
			TokenDuration: 5 * 24 * time.Hour,
			LogLevel:      "info",
			Version:       "dev",
		},
		Storage: Storage{
			DB: DB{
				Driver:       DriverPostgres,
				MaxOpenConns: 10,
				MaxIdleConns: 4,
			},
			Files: Files{
				ImagesDir: "images",
			},
		},
		Server: Server{
			HTTPAddress:        ":5000",
			RequestTimeout:     30 * time.Second,
			CORSAllowedOrigins: []string{"*"},
			MaxUploadSize:      10 << 20,
		},
	}
}
