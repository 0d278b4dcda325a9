// cmd/main.go in website-service
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

	"github.com/Muskhoops/FRETXPRESS/services/website-service/internal/config"
	"github.com/Muskhoops/FRETXPRESS/services/website-service/internal/contact"
	httptransport "github.com/Muskhoops/FRETXPRESS/services/website-service/internal/transport/http"
	"github.com/Muskhoops/FRETXPRESS/shared/grpcserver"
	"github.com/Muskhoops/FRETXPRESS/shared/httpx"
	pkgkafka "github.com/Muskhoops/FRETXPRESS/shared/kafka"
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

	var publisher pkgkafka.Publisher
	if cfg.HasKafka() {
		producer := pkgkafka.NewKafkaProducer(cfg.KAFKA_BROKER, cfg.KAFKA_TOPIC)
		defer producer.Close()
		log.Println("Contact submissions announced on Kafka topic", cfg.KAFKA_TOPIC)
		publisher = producer
	}

	svc := contact.NewService(contact.NewFormRelay(cfg.RELAY_URL, cfg.RELAY_TIMEOUT), publisher)
	defer svc.Wait()

	h := httptransport.New(svc, cfg.RELAY_TIMEOUT+5*time.Second)
	srv := &http.Server{
		Addr:              cfg.HTTP_ADDR,
		Handler:           httpx.Logging("website", h.Routes()),
		ReadTimeout:       10 * time.Second,
		ReadHeaderTimeout: 3 * time.Second,
		WriteTimeout:      cfg.RELAY_TIMEOUT + 10*time.Second,
		IdleTimeout:       60 * time.Second,
	}

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		log.Printf("website-service listening on %s", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	g.Go(func() error {
		return grpcserver.New("website.WebsiteService").Serve(ctx, cfg.GRPC_ADDR)
	})
	g.Go(func() error {
		<-ctx.Done()
		log.Println("🛑 website-service shutting down...")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	})

	return g.Wait()
}
