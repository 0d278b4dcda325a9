// cmd/main.go in booking-service
package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/redis/go-redis/v9"
	"go.temporal.io/sdk/client"
	"golang.org/x/sync/errgroup"

	"github.com/Muskhoops/FRETXPRESS/services/booking-service/config"
	httptransport "github.com/Muskhoops/FRETXPRESS/services/booking-service/handler/http"
	"github.com/Muskhoops/FRETXPRESS/services/booking-service/internal/carrier"
	"github.com/Muskhoops/FRETXPRESS/services/booking-service/internal/history"
	"github.com/Muskhoops/FRETXPRESS/services/booking-service/service"
	"github.com/Muskhoops/FRETXPRESS/services/booking-service/store"
	"github.com/Muskhoops/FRETXPRESS/shared/contracts"
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
	loc := cfg.Location()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	g, ctx := errgroup.WithContext(ctx)

	// Drafts: Redis when configured, otherwise in process.
	var drafts store.DraftStore
	if cfg.REDIS_URL != "" {
		opts, err := redis.ParseURL(cfg.REDIS_URL)
		if err != nil {
			return err
		}
		rdb := redis.NewClient(opts)
		defer rdb.Close()
		if err := rdb.Ping(ctx).Err(); err != nil {
			return err
		}
		log.Println("Connected to Redis, drafts expire after", cfg.DRAFT_TTL)
		drafts = store.NewRedisDraftStore(rdb, cfg.DRAFT_TTL)
	} else {
		mem := store.NewMemoryStore(cfg.DRAFT_TTL)
		g.Go(func() error {
			mem.RunJanitor(ctx, time.Minute)
			return nil
		})
		drafts = mem
	}

	// History: Postgres when configured.
	var historyStore history.Store = history.NewMemoryStore(history.Seed)
	if cfg.HasDB() {
		pg, err := history.NewPostgresStore(cfg.GetDBURL())
		if err != nil {
			return err
		}
		defer pg.Close()
		if err := pg.Migrate(ctx, history.Seed); err != nil {
			return err
		}
		historyStore = pg
	}

	// Confirmation hand-off: Temporal, else Kafka, else log only.
	var confirmer service.Confirmer = service.LogConfirmer{}
	switch {
	case cfg.TEMPORAL_HOST_PORT != "":
		tc, err := client.Dial(client.Options{HostPort: cfg.TEMPORAL_HOST_PORT})
		if err != nil {
			return err
		}
		defer tc.Close()
		log.Println("Confirmations go through Temporal at", cfg.TEMPORAL_HOST_PORT)
		confirmer = service.WorkflowConfirmer{Temporal: tc, TaskQueue: contracts.BookingTaskQueue}
	case cfg.HasKafka():
		producer := pkgkafka.NewKafkaProducer(cfg.KAFKA_BROKER, cfg.KAFKA_TOPIC)
		defer producer.Close()
		log.Println("Confirmations published to Kafka topic", cfg.KAFKA_TOPIC)
		confirmer = service.EventConfirmer{Producer: producer}
	default:
		log.Println("Warning: neither Temporal nor Kafka configured, confirmations are only logged")
	}

	svc := service.NewBookingService(drafts, confirmer).
		WithClock(func() time.Time { return time.Now().In(loc) })
	h := httptransport.New(svc, history.NewService(historyStore), carrier.NewService(), cfg.REQUEST_TIMEOUT)

	srv := &http.Server{
		Addr:              cfg.HTTP_ADDR,
		Handler:           httpx.Logging("booking", h.Routes()),
		ReadTimeout:       10 * time.Second,
		ReadHeaderTimeout: 3 * time.Second,
		WriteTimeout:      10 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	g.Go(func() error {
		log.Printf("booking-service listening on %s", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	g.Go(func() error {
		return grpcserver.New("booking.BookingService").Serve(ctx, cfg.GRPC_ADDR)
	})
	g.Go(func() error {
		<-ctx.Done()
		log.Println("🛑 booking-service shutting down...")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	})

	return g.Wait()
}
