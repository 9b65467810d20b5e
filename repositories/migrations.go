package repositories

import (
	"database/sql"
	"embed"
	"fmt"
	"log/slog"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/pressly/goose/v3"

	"github.com/agenciabaepi/AgilizaOS-sub004/utils"
)

//go:embed migrations/*.sql
var embedMigrations embed.FS

func RunMigrations(pgConfig utils.PGConfig, logger *slog.Logger) error {
	db, err := sql.Open("pgx", pgConfig.GetConnectionString())
	if err != nil {
		return fmt.Errorf("unable to connect to database: %w", err)
	}
	defer db.Close()

	if err := db.Ping(); err != nil {
		return fmt.Errorf("unable to ping database: %w", err)
	}

	goose.SetBaseFS(embedMigrations)
	goose.SetLogger(slog.NewLogLogger(logger.Handler(), slog.LevelInfo))

	if err := goose.SetDialect("postgres"); err != nil {
		return fmt.Errorf("goose.SetDialect error: %w", err)
	}
	if err := goose.Up(db, "migrations"); err != nil {
		return fmt.Errorf("goose.Up error: %w", err)
	}
	return nil
}
