// Command server runs the course progress ledger HTTP API.
//
// Configuration is read from CONFIG_PATH (or ./config.yaml) and the
// environment; run with -env to list the variables. SIGINT and SIGTERM
// trigger a graceful shutdown.
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/heartmarshall/coursetrack-backend/internal/app"
	"github.com/heartmarshall/coursetrack-backend/internal/config"
)

func main() {
	listEnv := flag.Bool("env", false, "print the supported environment variables and exit")
	flag.Parse()

	if *listEnv {
		text, err := config.Describe()
		if err != nil {
			log.Fatalf("server: %v", err)
		}
		fmt.Println(text)
		return
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := app.Run(ctx); err != nil {
		log.Fatalf("server: %v", err)
	}
}
