// catalogue - консольный режим справочника.
//
//	catalogue make_base < base.json          построить базу и сохранить снимок
//	catalogue process_requests < stat.json   ответить на stat_requests по снимку
//	catalogue process_text < requests.txt    построить базу из текстового формата и ответить без снимка
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"go.uber.org/zap"

	"github.com/transport-catalogue/internal/config"
	"github.com/transport-catalogue/internal/pkg/logger"
)

const (
	cmdMakeBase        = "make_base"
	cmdProcessRequests = "process_requests"
	cmdProcessText     = "process_text"
)

func usage() {
	fmt.Fprintf(os.Stderr, "Usage: %s [-config file] [%s|%s|%s]\n", os.Args[0], cmdMakeBase, cmdProcessRequests, cmdProcessText)
	flag.PrintDefaults()
}

func main() {
	configPath := flag.String("config", ".env", "path to .env configuration file")
	flag.Usage = usage
	flag.Parse()

	if flag.NArg() != 1 {
		usage()
		os.Exit(2)
	}
	mode := flag.Arg(0)

	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load config: %v\n", err)
		os.Exit(1)
	}

	log, err := logger.NewStderr(cfg.Log.Level)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer log.Sync()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	switch mode {
	case cmdMakeBase:
		err = makeBase(ctx, cfg, os.Stdin, log)
	case cmdProcessRequests:
		err = processRequests(ctx, cfg, os.Stdin, os.Stdout, log)
	case cmdProcessText:
		err = processText(ctx, cfg, os.Stdin, os.Stdout, log)
	default:
		usage()
		os.Exit(2)
	}

	if err != nil {
		log.Error("Command failed", zap.String("mode", mode), zap.Error(err))
		os.Exit(1)
	}
}
