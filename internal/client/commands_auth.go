package client

import (
	"github.com/MKhiriev/go-task-keeper/models"
	"github.com/spf13/cobra"
)

func (a *App) registerCommand() *cobra.Command {
	var req models.RegisterRequest

	cmd := &cobra.Command{
		Use:   "register",
		Short: "Create a user account",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			user, err := a.api.Register(cmd.Context(), req)
			if err != nil {
				return err
			}

			return a.print(models.UserResponse{User: user})
		},
	}

	cmd.Flags().StringVar(&req.Username, "username", "", "unique user name")
	cmd.Flags().StringVar(&req.Email, "email", "", "unique email address")
	cmd.Flags().StringVar(&req.Password, "password", "", "password, 6 to 72 characters")
	for _, name := range []string{"username", "email", "password"} {
		_ = cmd.MarkFlagRequired(name)
	}

	return cmd
}

func (a *App) loginCommand() *cobra.Command {
	var req models.LoginRequest

	cmd := &cobra.Command{
		Use:   "login",
		Short: "Obtain a bearer token",
		Long: `Obtain a bearer token valid for one hour.

Pass it to later commands with --token or export it as TASKCTL_TOKEN.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			token, err := a.api.Login(cmd.Context(), req)
			if err != nil {
				return err
			}

			return a.print(models.TokenResponse{Token: token})
		},
	}

	cmd.Flags().StringVar(&req.Email, "email", "", "account email address")
	cmd.Flags().StringVar(&req.Password, "password", "", "account password")
	_ = cmd.MarkFlagRequired("email")
	_ = cmd.MarkFlagRequired("password")

	return cmd
}
