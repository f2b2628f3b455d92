package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/verbora/verbora/internal/app"
	"github.com/verbora/verbora/internal/auth"
	"github.com/verbora/verbora/internal/config"
	"github.com/verbora/verbora/internal/content"
	"github.com/verbora/verbora/internal/progress"
	"github.com/verbora/verbora/internal/store"
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Start learning",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runPlay(cmd)
	},
}

func runPlay(cmd *cobra.Command) error {
	dbPath, err := resolveDBPath(cmd)
	if err != nil {
		return fmt.Errorf("resolve DB path: %w", err)
	}
	st, err := store.Open(dbPath)
	if err != nil {
		return fmt.Errorf("open store: %w", err)
	}
	defer st.Close()

	tables, err := content.Load()
	if err != nil {
		return fmt.Errorf("load content: %w", err)
	}

	cfgPath, err := config.DefaultPath()
	if err != nil {
		return fmt.Errorf("resolve config path: %w", err)
	}
	settings, err := config.Load(cfgPath)
	if err != nil {
		return fmt.Errorf("load settings: %w", err)
	}

	return app.Run(app.Options{
		Progress:   progress.NewService(st.ProfileRepo()),
		Events:     st.EventRepo(),
		Auth:       auth.NewService(st.CredentialRepo()),
		Tables:     tables,
		Settings:   settings,
		ConfigPath: cfgPath,
	})
}
