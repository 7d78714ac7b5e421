package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/morg/kanjidex/pkg/config"
	"github.com/morg/kanjidex/pkg/db"
	"github.com/morg/kanjidex/pkg/kanjipedia"
)

func addCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "add <url>",
		Short: "Fetch one kanjipedia entry and store it",
		Args:  cobra.ExactArgs(1),
		RunE:  runAdd,
	}
}

func runAdd(cmd *cobra.Command, args []string) error {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	conn, err := openDB(cfg)
	if err != nil {
		return err
	}
	defer conn.Close()

	entry, err := newFetcher(cfg).Fetch(ctx, args[0])
	if err != nil {
		return err
	}
	if err := db.UpsertKanji(conn, entry.ToRecord()); err != nil {
		return err
	}

	printEntry(entry)
	return nil
}

func newFetcher(cfg config.Config) *kanjipedia.Fetcher {
	return &kanjipedia.Fetcher{
		Client:    &http.Client{Timeout: cfg.FetchTimeout()},
		BaseURL:   cfg.BaseURL,
		UserAgent: cfg.UserAgent,
	}
}

func printEntry(e *kanjipedia.Entry) {
	fmt.Printf("Kanji: %s\n", e.Character)
	fmt.Printf("Onyomi: %s\n", joinSet(e.Onyomi, e.OnyomiExt))
	fmt.Printf("Kunyomi: %s\n", joinSet(e.Kunyomi, e.KunyomiExt))
	fmt.Printf("Old forms: %s\n", strings.Join(e.OldForms.Members(), " "))
	fmt.Printf("Type: %s\n", strings.Join(e.Classification.Members(), " "))
	fmt.Printf("Radical: %s\n", e.Radical)
	fmt.Printf("Phonetic component: %s\n", e.PhoneticComponent)
	fmt.Printf("Semantic components: %s\n", strings.Join(e.SemanticComponents.Members(), " "))
}

func joinSet(primary, extended kanjipedia.Set) string {
	s := strings.Join(primary.Members(), "・")
	if extended.Len() > 0 {
		s += " （外）" + strings.Join(extended.Members(), "・")
	}
	return s
}
