package main

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/civicteams/server/internal/adapter/outbound/auth"
	"github.com/civicteams/server/internal/app"
)

var tokenCmd = &cobra.Command{
	Use:   "token <user-id>",
	Short: "Issue a bearer token for a user",
	Long: `Issue a bearer token signed with auth.jwt_secret.

Tokens are normally issued by the identity provider. This command exists for
local development and smoke tests.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		userID, err := uuid.Parse(args[0])
		if err != nil {
			return fmt.Errorf("invalid user id: %w", err)
		}
		email, _ := cmd.Flags().GetString("email")
		ttl, _ := cmd.Flags().GetDuration("ttl")

		cfg, err := app.LoadConfig()
		if err != nil {
			return err
		}
		if cfg.Auth.JWTSecret == "" {
			return fmt.Errorf("auth.jwt_secret is not set")
		}

		validator := auth.NewJWTValidator(&auth.JWTConfig{
			Secret: cfg.Auth.JWTSecret,
			Issuer: cfg.Auth.Issuer,
		})
		token, err := validator.IssueToken(userID, email, ttl)
		if err != nil {
			return err
		}
		cmd.Println(token)
		return nil
	},
}

func init() {
	tokenCmd.Flags().String("email", "", "Email claim")
	tokenCmd.Flags().Duration("ttl", 24*time.Hour, "Token lifetime")
}
