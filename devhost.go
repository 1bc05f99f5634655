package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/linesmerrill/report-nui/api/handlers"
	"github.com/linesmerrill/report-nui/config"
)

const shutdownTimeout = 5 * time.Second

func devhostCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "devhost",
		Short: "Run the development host",
		Long: `Serve the NUI callbacks, the push websocket and ticket storage locally.

Tickets are kept in mongo when DB_URI is set and in memory otherwise.
Cooldowns use redis when REDIS_URL is set.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			a := handlers.App{Config: *config.New()}
			if port := viper.GetString("port"); port != "" {
				a.Config.Port = port
			}
			if fixture := viper.GetString("fixture"); fixture != "" {
				a.Config.FixturePath = fixture
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			if err := a.Initialize(ctx); err != nil {
				return err
			}
			defer a.Close()

			srv := &http.Server{
				Addr:              fmt.Sprintf(":%v", a.Config.Port),
				Handler:           a.Router,
				ReadHeaderTimeout: 10 * time.Second,
			}
			go func() {
				<-ctx.Done()
				shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
				defer cancel()
				_ = srv.Shutdown(shutdownCtx)
			}()

			zap.S().Infow("report-nui devhost is up and running",
				"port", a.Config.Port,
				"fixture", a.Config.FixturePath,
				"mongo", a.Config.Url != "",
				"redis", a.Config.RedisUrl != "",
			)
			if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
				return err
			}
			return nil
		},
	}
	cmd.Flags().String("port", "", "listen port (overrides PORT)")
	cmd.Flags().String("fixture", "", "path to a YAML fixture (overrides FIXTURE_PATH)")
	_ = viper.BindPFlag("port", cmd.Flags().Lookup("port"))
	_ = viper.BindPFlag("fixture", cmd.Flags().Lookup("fixture"))
	return cmd
}
