package cmd

import (
	"github.com/agenciabaepi/AgilizaOS-sub004/repositories"
	"github.com/agenciabaepi/AgilizaOS-sub004/utils"
)

func RunMigrations() error {
	config := LoadConfiguration()
	logger := utils.NewLogger(config.Env)

	return repositories.RunMigrations(config.PGConfig, logger)
}
