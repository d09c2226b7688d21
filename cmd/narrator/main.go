package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"
	"github.com/nguyentantai21042004/slide-narrator/internal/config"
	"github.com/nguyentantai21042004/slide-narrator/internal/logger"
	"github.com/nguyentantai21042004/slide-narrator/internal/models"
)

const usage = `Usage: narrator [-config config.yaml] <command> [flags]

Commands:
  generate  Write scripts for a page range of a PDF
  resume    Continue an interrupted run (no -id lists pending runs)
  list      List saved runs, optionally filtered by date
  show      Print a saved run
  export    Export a saved or external run file to PDF and/or DOCX
  serve     Start the HTTP API
  watch     Process every PDF dropped into the inbox
`

func main() {
	configPath := flag.String("config", "config.yaml", "path to config file")
	flag.Usage = func() { fmt.Fprint(os.Stderr, usage) }
	flag.Parse()

	if flag.NArg() == 0 {
		flag.Usage()
		os.Exit(2)
	}

	// .env is optional; real environment variables win.
	_ = godotenv.Load()

	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load config: %v\n", err)
		os.Exit(1)
	}

	log := logger.New(cfg.Logging.Level, cfg.Logging.Format)

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	a, err := newApp(cfg, log)
	if err != nil {
		if errors.Is(err, models.ErrRender) {
			log.Error(ctx, "Export fonts unavailable: %v", err)
		} else {
			log.Error(ctx, "Failed to initialize: %v", err)
		}
		os.Exit(1)
	}
	defer a.Close()

	if err := a.run(ctx, flag.Arg(0), flag.Args()[1:]); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		a.Close()
		os.Exit(1)
	}
}
