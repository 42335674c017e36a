package cli

import (
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/idilsaglam/daylist/internal/tui"
	"github.com/idilsaglam/daylist/internal/ui"
	"github.com/idilsaglam/daylist/internal/web"
)

func newUICmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "ui",
		Short: "Open the interactive task list",
		Args:  usageArgs(cobra.NoArgs),
		RunE: func(cmd *cobra.Command, _ []string) error {
			sess, closeStore, err := a.openSession(cmd.Context())
			if err != nil {
				return err
			}
			defer closeStore()

			if err := tui.Run(sess); err != nil {
				return err
			}
			if !sess.Modified() {
				return nil
			}
			if err := sess.Save(cmd.Context()); err != nil {
				return err
			}
			ui.OK("saved")
			return nil
		},
	}
}

func newServeCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the page over HTTP",
		Args:  usageArgs(cobra.NoArgs),
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			sess, closeStore, err := a.openSession(ctx)
			if err != nil {
				return err
			}
			defer closeStore()
			sess.Greet()

			logger := slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), nil))
			if a.cfg.File != "" {
				logger.Info("config loaded", "file", a.cfg.File)
			}
			logger.Info("store opened", "driver", a.cfg.Store.Driver, "path", a.cfg.Store.Path)

			srv := web.NewServer(sess, logger)
			return srv.ListenAndServe(ctx, a.cfg.Server.Addr, cmd.OutOrStdout())
		},
	}
	cmd.Flags().String("addr", "", "listen address (default 127.0.0.1:8080)")
	return cmd
}
