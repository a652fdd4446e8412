package cmd

import (
	"fmt"
	"strings"

	"github.com/tranhn/khtn/internal/llm"
	"github.com/tranhn/khtn/internal/store"
	"github.com/spf13/cobra"
)

var settingsCmd = &cobra.Command{
	Use:   "settings",
	Short: "Show the stored API key and preferred model",
	RunE: func(cmd *cobra.Command, args []string) error {
		kv, closeFn, err := openKV(cmd)
		if err != nil {
			return err
		}
		defer closeFn()

		key, _ := kv.GetString(llm.SettingAPIKey)
		model, _ := kv.GetString(llm.SettingPreferredModel)
		if model == "" {
			model = llm.DefaultModel
		}

		fmt.Printf("%-18s %s\n", "API key", maskKey(key))
		fmt.Printf("%-18s %s\n", "Preferred model", model)
		fmt.Printf("%-18s %s\n", "Available models", strings.Join(llm.AvailableModels, ", "))
		return nil
	},
}

var settingsSetKeyCmd = &cobra.Command{
	Use:   "set-key <api-key>",
	Short: "Store the Gemini API key",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		key := strings.TrimSpace(args[0])
		if key == "" {
			return fmt.Errorf("API key must not be empty")
		}

		kv, closeFn, err := openKV(cmd)
		if err != nil {
			return err
		}
		defer closeFn()

		if err := kv.SetString(llm.SettingAPIKey, key); err != nil {
			return fmt.Errorf("save API key: %w", err)
		}
		fmt.Println("API key saved.")
		return nil
	},
}

var settingsSetModelCmd = &cobra.Command{
	Use:   "set-model <model>",
	Short: "Store the preferred model",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		model := strings.TrimSpace(args[0])
		known := false
		for _, m := range llm.AvailableModels {
			if m == model {
				known = true
				break
			}
		}
		if !known {
			return fmt.Errorf("unknown model %q (available: %s)", model, strings.Join(llm.AvailableModels, ", "))
		}

		kv, closeFn, err := openKV(cmd)
		if err != nil {
			return err
		}
		defer closeFn()

		if err := kv.SetString(llm.SettingPreferredModel, model); err != nil {
			return fmt.Errorf("save preferred model: %w", err)
		}
		fmt.Printf("Preferred model set to %s.\n", model)
		return nil
	},
}

// openKV opens the store and returns its KV repo with a close func.
func openKV(cmd *cobra.Command) (store.KV, func(), error) {
	dbPath, err := resolveDBPath(cmd)
	if err != nil {
		return nil, nil, fmt.Errorf("resolve database path: %w", err)
	}
	s, err := store.Open(dbPath)
	if err != nil {
		return nil, nil, fmt.Errorf("open database: %w", err)
	}
	return s.KV(), func() { s.Close() }, nil
}

func maskKey(key string) string {
	if key == "" {
		return "(not set, falls back to GEMINI_API_KEY)"
	}
	if len(key) <= 8 {
		return "••••"
	}
	return key[:4] + strings.Repeat("•", 8) + key[len(key)-4:]
}

func init() {
	settingsCmd.AddCommand(settingsSetKeyCmd)
	settingsCmd.AddCommand(settingsSetModelCmd)
}
