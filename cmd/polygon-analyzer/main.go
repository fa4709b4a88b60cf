// polygon-analyzer serves the simplified analysis surface: triangle
// classification from three points and convexity-only polygon analysis,
// with no units, timestamps, or transforms.
package main

import (
	"context"
	"flag"
	"net/http"
	"os"
	"os/signal"
	"time"

	"github.com/rs/cors"
	"github.com/shapeworks/geometry-service/internal/api"
	"github.com/shapeworks/geometry-service/internal/logging"
)

func main() {
	addr := flag.String("addr", ":8081", "TCP address the analyzer listens on")
	flag.Parse()

	log := logging.NewFromEnv()
	ctx := context.Background()

	svc := api.NewLegacyService(log)
	router := api.NewLegacyRouter(svc, log)

	srv := &http.Server{
		Addr:         *addr,
		Handler:      cors.AllowAll().Handler(router),
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
	}

	log.Info(ctx, "starting polygon analyzer", logging.String("addr", *addr))
	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Error(ctx, "polygon analyzer exited", logging.Err(err))
		}
	}()

	stopCtx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()
	<-stopCtx.Done()

	log.Info(ctx, "shutting down polygon analyzer")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	_ = srv.Shutdown(shutdownCtx)
}
