package main

import (
	"context"
	"encoding/json"
	"errors"
	"os"
	"presell/internal/allowlist"
	"presell/internal/api/handler/v1handler"
	"presell/internal/config"
	"presell/pkg/logger"
	"presell/pkg/urlguard"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var errRejected = errors.New("one or more URLs were rejected")

// validateCommand checks URLs against the configured rules and prints one
// JSON result per URL. It exits with a non-zero status when any URL is rejected.
func validateCommand(cfg *config.Config) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "validate <url>...",
		Short: "Validates destination URLs without creating presells",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			withTrusted, _ := cmd.Flags().GetBool("with-trusted")

			allowList, err := urlguard.NewAllowList(cfg.Validator.AllowedDomains...)
			if err != nil {
				logger.Fatal(ctx, "invalid allowed domains", zap.Error(err))
			}
			if withTrusted {
				strg, closeStrg := getPostgres(ctx, cfg)
				defer closeStrg()

				if err := allowlist.New(allowList, strg).Load(ctx); err != nil {
					logger.Fatal(ctx, "could not load trusted domains", zap.Error(err))
				}
			}

			validator := urlguard.New(allowList, urlguard.Options{MaxLength: cfg.Validator.MaxLength})
			enc := json.NewEncoder(os.Stdout)
			rejected := 0
			for _, raw := range args {
				res := validator.Validate(raw)
				out := v1handler.ValidateURLResponse{
					Valid:        res.Valid,
					SanitizedURL: res.SanitizedURL,
					Error:        res.Message,
				}
				if res.Reason != nil {
					out.Reason = res.Reason.Error()
					rejected++
				}
				if err := enc.Encode(out); err != nil {
					return err
				}
			}
			if rejected > 0 {
				cmd.SilenceUsage = true

				return errRejected
			}

			return nil
		},
	}

	cmd.Flags().Bool("with-trusted", true, "Also accept domains trusted by administrators")

	return cmd
}
