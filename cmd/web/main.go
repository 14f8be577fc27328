package main

import (
	"fmt"
	"net"
	"os"
	"os/user"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/fin-tools/finsight/pkg/server"
	"github.com/fin-tools/finsight/pkg/services/config"
	"github.com/fin-tools/finsight/pkg/services/insights"
	"github.com/fin-tools/finsight/pkg/services/providers"
	"github.com/fin-tools/finsight/pkg/services/registry"
)

var (
	connectionsPath string
	settingsPath    string
)

func main() {
	var rootCmd = &cobra.Command{
		Use:   "web",
		Short: "Start the Finsight insights API server",
		RunE:  runServer,
	}

	usr, _ := user.Current()
	defaultPath := fmt.Sprintf("%s/.finsightcfg", usr.HomeDir)

	rootCmd.Flags().StringVarP(&connectionsPath, "connections", "c", defaultPath,
		"Path to the provider connections file (default is $HOME/.finsightcfg)")
	rootCmd.Flags().StringVarP(&settingsPath, "settings", "s", "",
		"Path to the settings file (defaults apply when omitted)")

	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func runServer(cmd *cobra.Command, _ []string) error {
	if err := godotenv.Load(); err != nil {
		fmt.Printf("Error loading .env file: %v\n", err)
	}

	logger := zerolog.New(os.Stdout).With().Timestamp().Logger()

	settings, err := config.Load(settingsPath)
	if err != nil {
		return fmt.Errorf("failed to load settings: %w", err)
	}

	categorizer := providers.DefaultCategorizer()
	for keyword, category := range settings.Categories {
		categorizer.Override(keyword, category)
	}

	reg, err := registry.NewRegistry(connectionsPath, registry.Options{
		XeroBaseURL: settings.Providers.XeroBaseURL,
		QBOBaseURL:  settings.Providers.QBOBaseURL,
		Categorizer: categorizer,
	})
	if err != nil {
		return fmt.Errorf("failed to load connections file: %w", err)
	}

	logger.Info().Msgf("Connections found at `%s` successfully loaded.", connectionsPath)
	for _, name := range reg.Providers() {
		logger.Info().Msgf("Linked provider: `%s`", name)
	}

	service := insights.NewService(reg, insights.Settings{
		TrendInterval:    settings.Pacing.TrendInterval,
		CashflowInterval: settings.Pacing.CashflowInterval,
		Retry: insights.RetrySettings{
			Fallback: settings.Retry.Fallback,
			Ceiling:  settings.Retry.Ceiling,
		},
	}, nil)

	host := os.Getenv("SERVER_HOST")
	port := os.Getenv("SERVER_PORT")

	if host == "" || port == "" {
		logger.Error().Msgf("Missing server configuration from .env file")
		os.Exit(1)
	}

	api := server.NewWebAPI(server.Config{
		Addr: net.JoinHostPort(host, port),
		Dependencies: server.Dependencies{
			Insights: service,
			Logger:   logger,
		},
	})

	return api.Start()
}
