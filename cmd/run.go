package cmd

import (
	"fmt"

	"github.com/tranhn/khtn/internal/app"
	"github.com/tranhn/khtn/internal/store"
	"github.com/spf13/cobra"
)

// runApp opens the store and launches the TUI. The LLM orchestrator is built
// lazily from settings so a missing API key only surfaces in AI features.
func runApp(cmd *cobra.Command) error {
	dbPath, err := resolveDBPath(cmd)
	if err != nil {
		return fmt.Errorf("resolve DB path: %w", err)
	}
	st, err := store.Open(dbPath)
	if err != nil {
		return fmt.Errorf("open store: %w", err)
	}
	defer st.Close()

	return app.Run(app.Options{Store: st})
}
