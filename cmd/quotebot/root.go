package main

import (
	"fmt"
	"os"

	"quotebot/internal/infrastructure/config"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "quotebot",
	Short: "CustomCraft QuoteBot turns customer requests into approved quotes",
	Long: `QuoteBot extracts the details of a central vacuum request, prices them against
the catalog, checks availability and drafts the reply email. A human approves,
modifies or rejects every AI-produced artifact.`,
	SilenceUsage: true,
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().String("db", "", "SQLite database path (overrides SQLITE_PATH)")
	rootCmd.PersistentFlags().Bool("mock", false, "Use the offline collaborators instead of Gemini")
}

// loadConfig reads the environment and applies the persistent flags.
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}
	if db, _ := cmd.Flags().GetString("db"); db != "" {
		cfg.SQLitePath = db
	}
	if mock, _ := cmd.Flags().GetBool("mock"); mock {
		cfg.LLMMock = true
	}
	return cfg, nil
}
