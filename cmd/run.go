package cmd

import (
	"context"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/go-extras/cobraflags"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/collabhq/roster/internal/auth"
	"github.com/collabhq/roster/internal/config"
	"github.com/collabhq/roster/internal/handlers"
	"github.com/collabhq/roster/internal/server"
	"github.com/collabhq/roster/internal/server/middlewares"
	"github.com/collabhq/roster/internal/services"
	"github.com/collabhq/roster/internal/store"
	"github.com/collabhq/roster/internal/store/migrations"
)

// NewRunCommand builds the run command. Flags bind directly into cfg and can
// be preset through ROSTER_* environment variables.
func NewRunCommand(cfg *config.Configuration) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "run",
		Short: "Start the roster HTTP server",
		PreRun: func(cmd *cobra.Command, args []string) {
			viper.AutomaticEnv()
			viper.SetEnvPrefix(EnvPrefix)
			viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
			cobraflags.PresetRequiredFlags(EnvPrefix, make(map[*pflag.Flag]bool), cmd)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd.Context(), cfg)
		},
	}

	cmd.Flags().IntVar(&cfg.Server.HTTPPort, "server-http-port", cfg.Server.HTTPPort, "HTTP listen port")
	cmd.Flags().StringVar(&cfg.Server.ServerMode, "server-mode", cfg.Server.ServerMode, "server mode (dev or prod)")
	cmd.Flags().StringVar(&cfg.Database.Path, "db-path", cfg.Database.Path, "database file path (:memory: for ephemeral)")
	cmd.Flags().StringVar(&cfg.Auth.SigningKey, "auth-signing-key", cfg.Auth.SigningKey, "token signing key")
	cmd.Flags().DurationVar(&cfg.Auth.TokenTTL, "auth-token-ttl", cfg.Auth.TokenTTL, "token validity duration")

	return cmd
}

func run(ctx context.Context, cfg *config.Configuration) error {
	logger, err := newLogger(cfg.Server.ServerMode)
	if err != nil {
		return err
	}
	defer func() { _ = logger.Sync() }()
	zap.ReplaceGlobals(logger)

	log := zap.S().Named("run")

	if cfg.Auth.SigningKey == config.DevSigningKey {
		log.Warnw("using the built-in development signing key; UNSAFE for production, set ROSTER_AUTH_SIGNING_KEY")
	}

	// Fail fast: an unreachable store means a non-zero exit, not a limping
	// process.
	db, err := store.NewDB(cfg.Database.Path)
	if err != nil {
		log.Errorw("unable to open database", "path", cfg.Database.Path, "error", err)
		return err
	}

	st := store.NewStore(db)
	defer st.Close()

	if err := migrations.Run(ctx, db); err != nil {
		log.Errorw("unable to run migrations", "error", err)
		return err
	}

	hasher := auth.NewHasher()
	tokens := auth.NewTokenService(cfg.Auth.SigningKey, cfg.Auth.TokenTTL)
	gate := middlewares.NewGate(tokens)

	handler := handlers.New(
		services.NewUserService(st, hasher, tokens),
		services.NewCollaboratorService(st),
	)

	srv, err := server.NewServer(cfg, gate, handler.Routes)
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	errCh := make(chan error, 1)
	go func() {
		log.Infow("server listening", "port", cfg.Server.HTTPPort)
		errCh <- srv.Start(ctx)
	}()

	select {
	case err := <-errCh:
		log.Errorw("server stopped", "error", err)
		return err
	case <-ctx.Done():
		log.Infow("shutting down")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		srv.Stop(shutdownCtx)
		return nil
	}
}

func newLogger(mode string) (*zap.Logger, error) {
	if mode == server.ProductionServer {
		return zap.NewProduction()
	}
	return zap.NewDevelopment()
}
