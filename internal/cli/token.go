package cli

import (
	"errors"
	"fmt"
	"time"

	"todo/internal/auth"

	"github.com/spf13/cobra"
)

func (r *root) tokenCmd() *cobra.Command {
	var (
		subject string
		ttl     time.Duration
	)
	cmd := &cobra.Command{
		Use:   "token",
		Short: "Mint a bearer token for the REST API",
		Long: `Mint an HS256 bearer token signed with JWT_SECRET.
The token is printed alone on stdout so it can be captured by scripts.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := r.loadConfig()
			if err != nil {
				return err
			}
			if cfg.JWTSecret == "" {
				return errors.New("JWT_SECRET is not set, the API accepts requests without a token")
			}
			if subject == "" {
				return errors.New("--subject must not be empty")
			}
			token, err := auth.GenerateToken(cfg.JWTSecret, subject, ttl)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), token)
			return nil
		},
	}
	cmd.Flags().StringVar(&subject, "subject", "todo-cli", "token subject")
	cmd.Flags().DurationVar(&ttl, "ttl", 24*time.Hour, "token lifetime, 0 for no expiry")
	return cmd
}
