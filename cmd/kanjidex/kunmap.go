package main

import (
	"fmt"
	"log"
	"os"

	"github.com/spf13/cobra"

	"github.com/morg/kanjidex/pkg/build"
)

func buildKunmapCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "build-kunmap",
		Short: "Rebuild the kun-reading relationship map from stored entries",
		Args:  cobra.NoArgs,
		RunE:  runBuildKunmap,
	}
}

func runBuildKunmap(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	conn, err := openDB(cfg)
	if err != nil {
		return err
	}
	defer conn.Close()

	n, err := build.RebuildKunyomiMap(conn, log.New(os.Stdout, "", 0))
	if err != nil {
		return err
	}
	fmt.Printf("All Done! %d readings mapped.\n", n)
	return nil
}
