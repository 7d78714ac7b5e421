package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/morg/kanjidex/pkg/build"
)

func graphDataCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "graph-data",
		Short: "Export the reading map as JSON for graph visualizers",
		Args:  cobra.NoArgs,
		RunE:  runGraphData,
	}
	cmd.Flags().StringVar(&flagOutDir, "out", "", "Output directory (overrides config)")
	return cmd
}

var flagOutDir string

func runGraphData(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	if flagOutDir != "" {
		cfg.OutputDir = flagOutDir
	}
	conn, err := openDB(cfg)
	if err != nil {
		return err
	}
	defer conn.Close()

	if err := build.WriteGraphData(conn, cfg.OutputDir); err != nil {
		return err
	}
	fmt.Printf("Wrote kun_map.json to %s.\n", cfg.OutputDir)
	return nil
}
