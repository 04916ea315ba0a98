package commands

import (
	"fmt"
	"time"

	"github.com/milindvishnoi/FSND/config"
	"github.com/milindvishnoi/FSND/security/jwt"

	"github.com/spf13/cobra"
)

// NewTokenCommand creates a command that signs development access tokens
// for the coffee shop API.
func NewTokenCommand(configFile *string) *cobra.Command {
	var (
		subject     string
		permissions []string
		expire      time.Duration
	)

	cmd := &cobra.Command{
		Use:   "token",
		Args:  cobra.NoArgs,
		Short: "Sign an access token with the configured JWT secret",
		Example: `  fsnd token --permissions get:drinks-detail
  fsnd token --subject manager --permissions get:drinks-detail,post:drinks,patch:drinks,delete:drinks`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.LoadConfig(*configFile)
			if err != nil {
				return fmt.Errorf("failed to load config: %w", err)
			}

			tm := jwt.NewTokenManager(cfg.Auth.JWT.Secret,
				jwt.WithIssuer(cfg.Auth.JWT.Issuer),
				jwt.WithAudience(cfg.Auth.JWT.Audience),
			)
			if !cmd.Flags().Changed("expire") && cfg.Auth.JWT.Expire > 0 {
				expire = time.Duration(cfg.Auth.JWT.Expire) * time.Hour
			}
			token, err := tm.GenerateAccessToken(subject, permissions, expire)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), token)
			return nil
		},
	}

	cmd.Flags().StringVar(&subject, "subject", "barista", "token subject")
	cmd.Flags().StringSliceVar(&permissions, "permissions", nil, "granted permissions")
	cmd.Flags().DurationVar(&expire, "expire", jwt.DefaultAccessTokenExpire, "token lifetime")
	return cmd
}
