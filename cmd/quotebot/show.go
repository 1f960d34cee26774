package main

import (
	"encoding/json"
	"fmt"

	"quotebot/internal/app"
	"quotebot/internal/usecase"

	"github.com/spf13/cobra"
)

var showCmd = &cobra.Command{
	Use:   "show <project-id>",
	Short: "Print a stored project record",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig(cmd)
		if err != nil {
			return err
		}
		projects, _, closers, err := app.Stores(cmd.Context(), cfg)
		if err != nil {
			return err
		}
		defer func() {
			for _, c := range closers {
				c.Close()
			}
		}()

		wf := usecase.NewWorkflowUseCase(projects, nil, nil, nil, nil)
		p, err := wf.Get(cmd.Context(), args[0])
		if err != nil {
			return err
		}

		data, err := json.MarshalIndent(p, "", "  ")
		if err != nil {
			return err
		}
		fmt.Println(string(data))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(showCmd)
}
