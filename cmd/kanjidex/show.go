package main

import (
	"github.com/spf13/cobra"

	"github.com/morg/kanjidex/pkg/db"
	"github.com/morg/kanjidex/pkg/kanjipedia"
)

func showCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show <kanji>",
		Short: "Print a stored entry",
		Args:  cobra.ExactArgs(1),
		RunE:  runShow,
	}
}

func runShow(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	conn, err := openDB(cfg)
	if err != nil {
		return err
	}
	defer conn.Close()

	rec, err := db.GetKanji(conn, args[0])
	if err != nil {
		return err
	}
	printEntry(kanjipedia.FromRecord(rec))
	return nil
}
