package cmd

import (
	"github.com/agenciabaepi/AgilizaOS-sub004/utils"
)

type Configuration struct {
	Env      string
	Port     string
	Timezone string
	PGConfig utils.PGConfig
}

func LoadConfiguration() Configuration {
	return Configuration{
		Env:      utils.GetStringEnv("ENV", "development"),
		Port:     utils.GetStringEnv("PORT", "8080"),
		Timezone: utils.GetStringEnv("TIMEZONE", "America/Sao_Paulo"),
		PGConfig: utils.PGConfig{
			Hostname: utils.GetStringEnv("PG_HOSTNAME", "localhost"),
			Port:     utils.GetStringEnv("PG_PORT", "5432"),
			User:     utils.GetRequiredStringEnv("PG_USER"),
			Password: utils.GetRequiredStringEnv("PG_PASSWORD"),
			Database: utils.GetStringEnv("PG_DATABASE", "agiliza"),
			SslMode:  utils.GetStringEnv("PG_SSL_MODE", "prefer"),
		},
	}
}
