package cli

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/satriahrh/codeswitch/internal/auth"
)

func newTokenCmd(v *viper.Viper) *cobra.Command {
	var (
		clientID string
		ttl      time.Duration
	)

	cmd := &cobra.Command{
		Use:   "token",
		Short: "Issue a client bearer token",
		Long: `Signs a client token with AUTH_JWT_SECRET, the same secret the server
validates against when authentication is enabled.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			tokens, err := auth.NewTokenManager(v.GetString(keyJWTSecret))
			if err != nil {
				return err
			}

			token, err := tokens.GenerateClientToken(clientID, ttl)
			if err != nil {
				return fmt.Errorf("failed to generate token: %w", err)
			}

			fmt.Fprintln(cmd.OutOrStdout(), token)
			return nil
		},
	}

	cmd.Flags().StringVar(&clientID, "client-id", "cli", "client identifier stored in the token")
	cmd.Flags().DurationVar(&ttl, "ttl", auth.DefaultClientTokenTTL, "token lifetime")
	cmd.Flags().String("secret", "", "signing secret, overrides AUTH_JWT_SECRET")
	_ = v.BindPFlag(keyJWTSecret, cmd.Flags().Lookup("secret"))

	return cmd
}
