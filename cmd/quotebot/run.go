package main

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"quotebot/internal/adapter/cli"
	"quotebot/internal/app"

	"github.com/spf13/cobra"
)

var runCmd = &cobra.Command{
	Use:   "run [customer request]",
	Short: "Process a customer request interactively",
	Long: `Submits the request and walks through the three approval gates in the terminal.
Without arguments the request is read from the first line of stdin. Use --resume
to continue a project that is still waiting at a gate.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig(cmd)
		if err != nil {
			return err
		}
		a, err := app.New(cmd.Context(), cfg)
		if err != nil {
			return err
		}
		defer a.Close()

		in := bufio.NewReader(os.Stdin)
		session := cli.NewSession(a.Workflow, in, os.Stdout)

		if resume, _ := cmd.Flags().GetString("resume"); resume != "" {
			_, err = session.Resume(cmd.Context(), resume)
			return err
		}

		request := strings.TrimSpace(strings.Join(args, " "))
		if request == "" {
			fmt.Print("Customer request: ")
			line, _ := in.ReadString('\n')
			request = strings.TrimSpace(line)
		}
		_, err = session.Run(cmd.Context(), request)
		return err
	},
}

func init() {
	rootCmd.AddCommand(runCmd)
	runCmd.Flags().String("resume", "", "Project ID to resume")
}
