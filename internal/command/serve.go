package command

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/HenningWaack/ccAcmePairing/internal/app"
	"github.com/HenningWaack/ccAcmePairing/internal/catalog"
	"github.com/HenningWaack/ccAcmePairing/internal/server"
)

func serveCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Serve the product catalog HTTP API",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) (runErr error) {
			cfg, store, err := openStore(cmd.Context())
			if err != nil {
				return err
			}
			defer func() {
				if err := store.Close(); err != nil {
					runErr = errors.Join(runErr, err)
				}
			}()

			creds, err := credentialStore(cfg.Accounts)
			if err != nil {
				return err
			}

			logger := slog.Default()
			api := app.New(logger, catalog.NewService(store), creds)

			grp, ctx := errgroup.WithContext(cmd.Context())
			addr, err := server.Run(ctx, grp, &http.Server{Handler: api}, cfg.ListenAddress) //nolint:gosec // Run() sets timeouts
			if err != nil {
				return err
			}

			logger.InfoContext(ctx,
				"starting HTTP server...",
				slog.String("address", addr),
			)
			return grp.Wait()
		},
	}
}
