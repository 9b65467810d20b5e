package utils

import (
	"fmt"
)

type PGConfig struct {
	Hostname string
	Port     string
	User     string
	Password string
	Database string
	SslMode  string
}

func (config PGConfig) GetConnectionString() string {
	sslMode := config.SslMode
	if sslMode == "" {
		sslMode = "prefer"
	}
	return fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		config.Hostname, config.Port, config.User, config.Password, config.Database, sslMode)
}
