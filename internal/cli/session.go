package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	domainErrors "github.com/polkiloo/foodfront/internal/domain/errors"
	"github.com/polkiloo/foodfront/internal/domain/model"
	"github.com/polkiloo/foodfront/internal/usecase"
)

func newLoginCommand(rt *runtime) *cobra.Command {
	var email, password string
	cmd := &cobra.Command{
		Use:   "login",
		Short: "Log in and store the session token in the config file",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			email = strings.TrimSpace(email)
			if !usecase.ValidateEmail(email) {
				return fmt.Errorf("email %q: %w", email, domainErrors.ErrValidation)
			}
			if password == "" {
				return fmt.Errorf("password is required: %w", domainErrors.ErrValidation)
			}

			res, err := rt.client.Login(cmd.Context(), model.Credentials{Email: email, Password: password})
			if err != nil {
				return err
			}
			if res.Token == "" {
				return fmt.Errorf("login: empty token: %w", domainErrors.ErrRejected)
			}
			role, ok := model.ParseRole(string(res.Role))
			if !ok {
				role = model.RoleCustomer
			}
			if err := saveSession(rt.v, res.Token, role, res.Name); err != nil {
				return err
			}
			fmt.Fprintf(rt.out, "Logged in as %s (%s)\n", res.Name, role)
			return nil
		},
	}
	cmd.Flags().StringVarP(&email, "email", "e", "", "Account email")
	cmd.Flags().StringVarP(&password, "password", "p", "", "Account password")
	return cmd
}

func newLogoutCommand(rt *runtime) *cobra.Command {
	return &cobra.Command{
		Use:   "logout",
		Short: "Forget the stored session token",
		Args:  cobra.NoArgs,
		RunE: func(*cobra.Command, []string) error {
			if err := saveSession(rt.v, "", "", ""); err != nil {
				return err
			}
			fmt.Fprintln(rt.out, "Logged out")
			return nil
		},
	}
}
