package main

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/homevia/rent_ledger_app/internal/adapters/notification"
	"github.com/homevia/rent_ledger_app/internal/core/services"
	"github.com/homevia/rent_ledger_app/internal/dto"
	"github.com/homevia/rent_ledger_app/internal/middleware"
	"github.com/homevia/rent_ledger_app/internal/platform/config"
	"github.com/homevia/rent_ledger_app/internal/repositories/database/pgsql"
	"github.com/homevia/rent_ledger_app/pkg/database"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "rla-sweeper",
		Short: "Operational tooling for the rent ledger",
	}

	rootCmd.AddCommand(sweepCmd())

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func sweepCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "sweep",
		Short: "Run one reminder sweep and print the per-lease results",
		RunE: func(cmd *cobra.Command, args []string) error {
			daysBefore, _ := cmd.Flags().GetInt("days-before")
			includeOverdue, _ := cmd.Flags().GetBool("include-overdue")

			logger := slog.New(slog.NewTextHandler(os.Stderr, nil))

			cfg, err := config.LoadConfig()
			if err != nil {
				return fmt.Errorf("failed to load config: %w", err)
			}

			ctx := middleware.ContextWithLogger(context.Background(), logger)

			dbPool, err := database.NewPgxPool(ctx, cfg.DatabaseURL)
			if err != nil {
				return fmt.Errorf("failed to connect to database: %w", err)
			}
			defer dbPool.Close()

			repos := pgsql.NewRepositoryProvider(dbPool)
			directory := pgsql.NewDirectoryGateway(dbPool)
			notifier := notification.NewGateway(notification.Config{
				ProviderBaseURL: cfg.NotifyProviderBaseURL,
				ProviderToken:   cfg.NotifyProviderToken,
				SMTPAddr:        cfg.SMTPAddr,
				SMTPFrom:        cfg.SMTPFrom,
			})
			serviceContainer := services.NewServiceContainer(cfg, repos, directory, notifier)

			results, err := serviceContainer.Reminder.RunReminderSweep(ctx, daysBefore, includeOverdue)
			if err != nil {
				return fmt.Errorf("reminder sweep failed: %w", err)
			}

			summary := dto.ToSweepResponse(results)
			out, err := json.MarshalIndent(summary, "", "  ")
			if err != nil {
				return fmt.Errorf("failed to encode sweep summary: %w", err)
			}
			fmt.Println(string(out))

			return nil
		},
	}

	cmd.Flags().Int("days-before", 3, "How many days ahead of the due date to remind")
	cmd.Flags().Bool("include-overdue", true, "Also remind leases already past due")

	return cmd
}
