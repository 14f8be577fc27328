package main

import (
	"fmt"
	"os"
	"os/user"
	"time"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/fin-tools/finsight/pkg/services/config"
	"github.com/fin-tools/finsight/pkg/services/insights"
	"github.com/fin-tools/finsight/pkg/services/providers"
	"github.com/fin-tools/finsight/pkg/services/registry"
)

type insightsCmd struct {
	connectionsPath string
	settingsPath    string
	year            int
}

func main() {
	ic := &insightsCmd{}
	cmd := &cobra.Command{
		Use:   "finsight",
		Short: "Print the unified KPI summary for a calendar year",
		RunE:  ic.run,
	}

	usr, _ := user.Current()
	defaultPath := fmt.Sprintf("%s/.finsightcfg", usr.HomeDir)

	cmd.Flags().StringVarP(&ic.connectionsPath, "connections", "c", defaultPath,
		"Path to the provider connections file")
	cmd.Flags().StringVarP(&ic.settingsPath, "settings", "s", "", "Path to the settings file")
	cmd.Flags().IntVarP(&ic.year, "year", "y", time.Now().Year(), "Calendar year to report on")

	if err := cmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func (ic *insightsCmd) run(cmd *cobra.Command, _ []string) error {
	logger := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).With().Timestamp().Logger()
	ctx := logger.WithContext(cmd.Context())

	settings, err := config.Load(ic.settingsPath)
	if err != nil {
		return fmt.Errorf("failed to load settings: %w", err)
	}

	reg, err := registry.NewRegistry(ic.connectionsPath, registry.Options{
		XeroBaseURL: settings.Providers.XeroBaseURL,
		QBOBaseURL:  settings.Providers.QBOBaseURL,
		Categorizer: providers.DefaultCategorizer(),
	})
	if err != nil {
		return fmt.Errorf("failed to load connections file: %w", err)
	}

	service := insights.NewService(reg, insights.Settings{
		TrendInterval:    settings.Pacing.TrendInterval,
		CashflowInterval: settings.Pacing.CashflowInterval,
		Retry: insights.RetrySettings{
			Fallback: settings.Retry.Fallback,
			Ceiling:  settings.Retry.Ceiling,
		},
	}, nil)

	points, err := service.Trend(ctx, ic.year)
	if err != nil {
		return err
	}

	fmt.Printf("Monthly trend for %d\n", ic.year)
	for _, p := range points {
		fmt.Printf("%-4s revenue=%.2f expenses=%.2f cogs=%.2f\n",
			p.Month, p.Revenue, p.Expenses, p.CostOfGoodsSold)
	}
	return nil
}
