// cmd/main.go in support-service
package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/Muskhoops/FRETXPRESS/services/support-service/internal/chat"
	"github.com/Muskhoops/FRETXPRESS/services/support-service/internal/config"
	"github.com/Muskhoops/FRETXPRESS/services/support-service/internal/responder"
	httptransport "github.com/Muskhoops/FRETXPRESS/services/support-service/internal/transport/http"
	"github.com/Muskhoops/FRETXPRESS/shared/grpcserver"
	"github.com/Muskhoops/FRETXPRESS/shared/httpx"
)

func main() {
	log.SetFlags(log.LstdFlags | log.Lshortfile)
	if err := run(); err != nil {
		log.Fatal(err)
	}
}

func run() error {
	cfg := config.LoadConfig()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	bot := responder.Default()
	log.Printf("support: %d responder rules loaded", len(bot.Rules()))

	svc := chat.NewService(bot, cfg.REPLY_DELAY).WithIdleTTL(cfg.CONVERSATION_TTL)
	h := httptransport.New(svc, cfg.ALLOWED_ORIGINS, cfg.REQUEST_TIMEOUT)

	// no WriteTimeout: it would cut long-lived WebSocket connections
	srv := &http.Server{
		Addr:              cfg.HTTP_ADDR,
		Handler:           httpx.Logging("support", h.Routes()),
		ReadHeaderTimeout: 3 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		log.Printf("support-service listening on %s", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	g.Go(func() error {
		svc.RunJanitor(ctx, time.Minute)
		return nil
	})
	g.Go(func() error {
		return grpcserver.New("support.SupportService").Serve(ctx, cfg.GRPC_ADDR)
	})
	g.Go(func() error {
		<-ctx.Done()
		log.Println("🛑 support-service shutting down...")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	})

	return g.Wait()
}
