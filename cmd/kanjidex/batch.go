package main

import (
	"bufio"
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/morg/kanjidex/pkg/ingest"
)

func batchCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "batch <url-list-file>",
		Short: "Fetch and store every entry URL listed in a file, one per line",
		Args:  cobra.ExactArgs(1),
		RunE:  runBatch,
	}
}

func runBatch(cmd *cobra.Command, args []string) error {
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

	urls, err := readURLList(args[0])
	if err != nil {
		return err
	}

	ig := ingest.NewIngester(conn)
	ig.Fetcher = newFetcher(cfg)
	ig.Logger = log.New(os.Stderr, "", log.LstdFlags)
	ig.OnProgress = func(current, total int) {
		fmt.Printf("\rProcessed %d/%d", current, total)
	}

	res, err := ig.Run(ctx, urls)
	fmt.Println()
	if err != nil {
		return err
	}
	fmt.Printf("Done: %d added, %d failed.\n", res.Added, res.Failed)
	return nil
}

func readURLList(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open url list: %w", err)
	}
	defer f.Close()

	var urls []string
	sc := bufio.NewScanner(f)
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		urls = append(urls, line)
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("read url list: %w", err)
	}
	return urls, nil
}
