// dashgen generates Administrate dashboards, controllers and routes for
// the models of a schema.
//
//	dashgen --manifest db/schema.yml dashboard Post
//	dashgen --driver postgres --dsn "$DATABASE_URL" install
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	if err := newRootCmd().ExecuteContext(ctx); err != nil {
		_, _ = fmt.Fprintln(os.Stderr, err)
		stop()
		os.Exit(1)
	}
}
