package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/morg/kanjidex/pkg/db"
)

func removeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "remove <kanji>",
		Short: "Delete a stored entry",
		Args:  cobra.ExactArgs(1),
		RunE:  runRemove,
	}
}

func runRemove(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	conn, err := openDB(cfg)
	if err != nil {
		return err
	}
	defer conn.Close()

	if err := db.RemoveKanji(conn, args[0]); err != nil {
		return err
	}
	fmt.Printf("Removed %s.\n", args[0])
	return nil
}
