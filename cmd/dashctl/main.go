package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/boltdash/driver-dashboard/internal/client/cli"
	"github.com/boltdash/driver-dashboard/pkg/logger"
)

func main() {
	server := flag.String("server", "http://localhost:5000", "dashboard API base URL")
	flag.Parse()

	log := logger.Init(logger.Options{Level: "warn", Pretty: true, Service: "dashctl"})

	app, err := cli.NewApp(*server, log)
	if err != nil {
		fmt.Fprintf(os.Stderr, "dashctl: %v\n", err)
		os.Exit(1)
	}

	if err := app.Run(context.Background(), flag.Args()); err != nil {
		os.Exit(1)
	}
}
