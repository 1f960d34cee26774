package main

import (
	"fmt"
	"os"
	"text/tabwriter"

	"quotebot/internal/app"
	"quotebot/internal/domain/entities"
	"quotebot/internal/usecase"

	"github.com/spf13/cobra"
)

var catalogCmd = &cobra.Command{
	Use:   "catalog",
	Short: "List the pricing catalog",
	RunE: func(cmd *cobra.Command, args []string) error {
		uc, closeStore, err := catalogUseCase(cmd)
		if err != nil {
			return err
		}
		defer closeStore()

		entries, err := uc.Load(cmd.Context())
		if err != nil {
			return err
		}

		w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
		fmt.Fprintln(w, "ITEM TYPE\tMATERIAL\tUNIT COST\tUNIT")
		for _, e := range entries {
			fmt.Fprintf(w, "%s\t%s\t%s\t%s\n", e.ItemType, e.Material, entities.FormatMoney(e.UnitCost), e.UnitKind)
		}
		return w.Flush()
	},
}

var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Seed the pricing catalog (existing rows are kept)",
	RunE: func(cmd *cobra.Command, args []string) error {
		uc, closeStore, err := catalogUseCase(cmd)
		if err != nil {
			return err
		}
		defer closeStore()

		entries, err := uc.Load(cmd.Context())
		if err != nil {
			return err
		}
		fmt.Printf("Catalog ready: %d entries\n", len(entries))
		return nil
	},
}

func catalogUseCase(cmd *cobra.Command) (*usecase.CatalogUseCase, func(), error) {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return nil, nil, err
	}
	seed, err := app.SeedEntries(cfg)
	if err != nil {
		return nil, nil, err
	}
	_, pricing, closers, err := app.Stores(cmd.Context(), cfg)
	if err != nil {
		return nil, nil, err
	}
	closeStore := func() {
		for _, c := range closers {
			c.Close()
		}
	}
	return usecase.NewCatalogUseCase(pricing, seed), closeStore, nil
}

func init() {
	rootCmd.AddCommand(catalogCmd)
	rootCmd.AddCommand(seedCmd)
}
