package main

import (
	"carehome-service/internal/app/config"
	"carehome-service/internal/app/drivers/logger"
	"carehome-service/internal/app/services/care_api"
	"carehome-service/internal/app/services/shared/session"
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// cli carries what every subcommand needs once the root command has run.
type cli struct {
	cfg       *config.InternalConfig
	log       *zap.Logger
	transport *care_api.Transport
	auth      session.Authenticator
	store     *sessionStore
	out       io.Writer
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	err := newRootCmd(os.Stdout).ExecuteContext(ctx)
	if err != nil {
		os.Exit(1)
	}
}

func newRootCmd(out io.Writer) *cobra.Command {
	app := &cli{out: out}

	rootCmd := &cobra.Command{
		Use:          "carectl",
		Short:        "Operate the care facility backend from a terminal",
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			level, _ := cmd.Flags().GetString("log-level")
			sessionFile, _ := cmd.Flags().GetString("session-file")
			baseURL, _ := cmd.Flags().GetString("base-url")

			app.cfg = config.NewInternalConfig()
			if baseURL != "" {
				app.cfg.Care.BaseUrl = baseURL
			}
			if sessionFile == "" {
				sessionFile = app.cfg.Session.CLISessionFile
			}

			app.log = logger.NewCLILogger(level)
			app.transport = care_api.NewTransport(care_api.TransportConfig{
				BaseUrl:           app.cfg.Care.BaseUrl,
				Timeout:           time.Duration(app.cfg.Care.RequestTimeoutInSeconds) * time.Second,
				RequestsPerSecond: app.cfg.Care.OutboundRequestsPerSecond,
				Burst:             app.cfg.Care.OutboundBurst,
			}, app.log)
			app.auth = care_api.NewAuthClient(app.transport, app.log)
			app.store = newSessionStore(sessionFile)
			return nil
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if app.log != nil {
				_ = app.log.Sync()
			}
		},
	}
	rootCmd.PersistentFlags().String("log-level", "warn", "Log level (debug, info, warn, error)")
	rootCmd.PersistentFlags().String("session-file", "", "Path of the stored session (default from SESSION_CLI_FILE)")
	rootCmd.PersistentFlags().String("base-url", "", "Care backend base URL (default from CARE_BASE_URL)")

	rootCmd.AddCommand(loginCmd(app))
	rootCmd.AddCommand(logoutCmd(app))
	rootCmd.AddCommand(specCmd(app))
	rootCmd.AddCommand(stockCmd(app))
	return rootCmd
}

// withSession restores the stored session, runs fn and writes back whatever
// the session looks like afterwards, so refreshed tokens survive the process.
func (app *cli) withSession(fn func(sess *session.Session) error) error {
	credentials, err := app.store.Load()
	if err != nil {
		return err
	}

	sess := session.Restore(app.auth, app.log, credentials,
		session.WithExpirySkew(time.Duration(app.cfg.Session.ExpirySkewInSeconds)*time.Second),
	)
	if sess.State() == session.StateUninitialized {
		return fmt.Errorf("not logged in, run `carectl login` first")
	}

	runErr := fn(sess)

	switch {
	case sess.State() == session.StateSignedOut:
		err = app.store.Clear()
		if runErr != nil {
			return fmt.Errorf("%w (session ended, run `carectl login` again)", runErr)
		}
	case sess.Refreshed():
		err = app.store.Save(sess.Credentials())
	}
	if runErr != nil {
		return runErr
	}
	return err
}
