package main

import (
	"context"
	"fmt"
	"presell/internal/allowlist"
	"presell/internal/config"
	"presell/pkg/logger"
	"presell/pkg/urlguard"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// trustCommand adds domains to the persisted allow-list. Running servers
// pick them up on their next refresh.
func trustCommand(cfg *config.Config) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "trust <domain>...",
		Short: "Adds domains to the allow-list of every process",
		Args:  cobra.MinimumNArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			ctx := context.Background()

			strg, closeStrg := getPostgres(ctx, cfg)
			defer closeStrg()

			allowList, err := urlguard.NewAllowList(cfg.Validator.AllowedDomains...)
			if err != nil {
				logger.Fatal(ctx, "invalid allowed domains", zap.Error(err))
			}
			manager := allowlist.New(allowList, strg)

			for _, domain := range args {
				name, err := manager.Trust(ctx, domain)
				if err != nil {
					logger.Fatal(ctx, "could not trust domain", zap.String("domain", domain), zap.Error(err))
				}
				fmt.Println(name) //nolint: forbidigo
			}
		},
	}

	return cmd
}
