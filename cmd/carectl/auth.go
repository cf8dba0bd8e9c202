package main

import (
	"carehome-service/internal/app/services/shared/session"
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"
)

func loginCmd(app *cli) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "login",
		Short: "Log in against the care backend and store the session",
		RunE: func(cmd *cobra.Command, args []string) error {
			username, _ := cmd.Flags().GetString("username")
			password, _ := cmd.Flags().GetString("password")
			if password == "" {
				password = os.Getenv("CARECTL_PASSWORD")
			}
			if username == "" || password == "" {
				return errors.New("--username and --password (or CARECTL_PASSWORD) are required")
			}

			sess := session.New(app.auth, app.log,
				session.WithExpirySkew(time.Duration(app.cfg.Session.ExpirySkewInSeconds)*time.Second),
			)
			err := sess.Authenticate(cmd.Context(), username, password)
			if err != nil {
				return err
			}

			err = app.store.Save(sess.Credentials())
			if err != nil {
				return err
			}

			name := username
			if user := sess.User(); user != nil {
				name = fmt.Sprintf("%s %s (%s)", user.Name, user.LastName, user.Role)
			}
			fmt.Fprintf(app.out, "Logged in as %s\n", name)
			return nil
		},
	}
	cmd.Flags().String("username", "", "Username")
	cmd.Flags().String("password", "", "Password")
	return cmd
}

func logoutCmd(app *cli) *cobra.Command {
	return &cobra.Command{
		Use:   "logout",
		Short: "End the stored session",
		RunE: func(cmd *cobra.Command, args []string) error {
			credentials, err := app.store.Load()
			if err != nil {
				return err
			}

			sess := session.Restore(app.auth, app.log, credentials)
			logoutErr := sess.SignOut(cmd.Context())

			err = app.store.Clear()
			if err != nil {
				return err
			}
			if logoutErr != nil {
				fmt.Fprintf(app.out, "Local session removed, backend logout failed: %v\n", logoutErr)
				return nil
			}
			fmt.Fprintln(app.out, "Logged out")
			return nil
		},
	}
}
