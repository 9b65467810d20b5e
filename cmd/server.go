package cmd

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"golang.org/x/sync/errgroup"

	"github.com/agenciabaepi/AgilizaOS-sub004/api"
	"github.com/agenciabaepi/AgilizaOS-sub004/repositories"
	"github.com/agenciabaepi/AgilizaOS-sub004/usecases"
	"github.com/agenciabaepi/AgilizaOS-sub004/utils"
)

func RunServer() error {
	config := LoadConfiguration()
	logger := utils.NewLogger(config.Env)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()
	ctx = utils.StoreLoggerInContext(ctx, logger)

	location, err := time.LoadLocation(config.Timezone)
	if err != nil {
		return err
	}

	pool, err := pgxpool.New(ctx, config.PGConfig.GetConnectionString())
	if err != nil {
		return err
	}
	defer pool.Close()

	uc := usecases.NewUsecases(
		repositories.NewAgilizaDbRepository(),
		repositories.NewExecutorGetter(pool),
		location,
	)

	server := api.New(api.Configuration{
		Port:               config.Port,
		CorsAllowLocalhost: config.Env == "development",
	}, uc, logger)

	group, groupCtx := errgroup.WithContext(ctx)
	group.Go(func() error {
		logger.InfoContext(ctx, "starting server", "port", config.Port)
		if err := server.ListenAndServe(); !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	group.Go(func() error {
		<-groupCtx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		return server.Shutdown(shutdownCtx)
	})

	return group.Wait()
}
