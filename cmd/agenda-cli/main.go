package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"agenda_facil/internal/adapter/persistence/repository"
	"agenda_facil/internal/infrastructure/calendar"
	"agenda_facil/internal/usecase"

	_ "github.com/joho/godotenv/autoload"
	"github.com/spf13/cobra"
)

var (
	loc      *time.Location
	timezone string
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)

	rootCmd := &cobra.Command{
		Use:   "agenda-cli",
		Short: "Agenda Fácil operator tools",
		Long:  "Reads the agenda from the configured storage (STORAGE_DRIVER) and prints monthly reports, calendar listings and searches.",
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if timezone == "" {
				loc = calendar.LocationFromEnv()
				return nil
			}
			var err error
			loc, err = calendar.LoadLocation(timezone)
			return err
		},
		SilenceUsage: true,
	}
	rootCmd.PersistentFlags().StringVar(&timezone, "tz", "", "IANA time zone of the agenda (default APP_TIMEZONE or local)")

	rootCmd.AddCommand(
		reportCmd(),
		calendarCmd(),
		searchCmd(),
	)

	rootCmd.SetContext(ctx)

	err := rootCmd.Execute()
	stop()
	if err != nil {
		os.Exit(1)
	}
}

// openSnapshots connects to the configured storage. The returned func releases it.
func openSnapshots(ctx context.Context) (*usecase.RepositorySnapshotProvider, func(), error) {
	repos, err := repository.NewRepositoriesFromEnv(ctx)
	if err != nil {
		return nil, nil, fmt.Errorf("connecting to storage: %w", err)
	}
	provider := usecase.NewRepositorySnapshotProvider(repos.Clients, repos.Professionals, repos.Services, repos.Appointments)
	return provider, func() { _ = repos.Close() }, nil
}
