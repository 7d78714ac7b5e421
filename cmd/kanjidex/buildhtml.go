package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/morg/kanjidex/pkg/build"
)

func buildHTMLCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "build-html",
		Short: "Render the static kanji index page from stored entries",
		Args:  cobra.NoArgs,
		RunE:  runBuildHTML,
	}
	cmd.Flags().StringVar(&flagHTMLOutDir, "out", "", "Output directory (overrides config)")
	return cmd
}

var flagHTMLOutDir string

func runBuildHTML(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	if flagHTMLOutDir != "" {
		cfg.OutputDir = flagHTMLOutDir
	}
	conn, err := openDB(cfg)
	if err != nil {
		return err
	}
	defer conn.Close()

	if err := build.WriteIndexPage(conn, cfg.OutputDir); err != nil {
		return err
	}
	fmt.Printf("Wrote index.html to %s.\n", cfg.OutputDir)
	return nil
}
