package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os/signal"
	"syscall"

	"toolbox/go-backend/internal/bootstrap/toolboxconfig"
	"toolbox/go-backend/internal/composition/daemonserver"
)

var (
	version   = "dev"
	commit    = "unknown"
	buildDate = "unknown"
)

func main() {
	showVersion := flag.Bool("version", false, "print version and exit")
	rpcAddr := flag.String("rpc-addr", "", "JSON-RPC listen address (overrides config)")
	configPath := flag.String("config", "", "Path to config.yaml (optional)")
	logLevel := flag.String("log-level", "", "Log level: debug | info | warn | error")
	disable := flag.String("disable", "", "Comma separated optional features to disable: qrcode,imaging,tables,pdf,http,faker")
	flag.Parse()
	if *showVersion {
		fmt.Printf("toolboxd version=%s commit=%s build_date=%s\n", version, commit, buildDate)
		return
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	srv, err := daemonserver.NewRPCServerWithOptions(daemonserver.Options{
		ConfigPath: *configPath,
		RPCAddr:    *rpcAddr,
		LogLevel:   *logLevel,
		Disabled:   toolboxconfig.SplitList(*disable),
	})
	if err != nil {
		log.Fatalf("toolboxd failed to initialize: %v", err)
	}

	log.Printf("toolboxd starting on http://%s", srv.Addr())
	if err := srv.Run(ctx); err != nil {
		log.Fatalf("toolboxd failed: %v", err)
	}
	log.Println("toolboxd stopped")
}
