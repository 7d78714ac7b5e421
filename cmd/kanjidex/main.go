package main

import (
	"os"

	"github.com/spf13/cobra"
)

var (
	flagConfig string
	flagDB     string
)

func main() {
	root := &cobra.Command{
		Use:           "kanjidex",
		Short:         "Extract kanjipedia entries into a queryable kanji database",
		SilenceUsage:  true,
		SilenceErrors: false,
	}
	root.PersistentFlags().StringVar(&flagConfig, "config", "kanjidex.yaml", "Path to config file")
	root.PersistentFlags().StringVar(&flagDB, "db", "", "Path to SQLite database (overrides config)")

	root.AddCommand(addCmd())
	root.AddCommand(batchCmd())
	root.AddCommand(showCmd())
	root.AddCommand(removeCmd())
	root.AddCommand(buildKunmapCmd())
	root.AddCommand(graphDataCmd())
	root.AddCommand(buildHTMLCmd())

	if err := root.Execute(); err != nil {
		os.Exit(1)
	}
}
