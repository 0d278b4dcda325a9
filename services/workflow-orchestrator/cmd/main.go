//services/workflow-orchestrator/cmd/main.go

package main

import (
	"context"
	"log"
	"os/signal"
	"syscall"

	"go.temporal.io/sdk/client"
	"go.temporal.io/sdk/worker"
	"golang.org/x/sync/errgroup"

	"github.com/Muskhoops/FRETXPRESS/services/workflow-orchestrator/internal/activities"
	"github.com/Muskhoops/FRETXPRESS/services/workflow-orchestrator/internal/config"
	bookingflow "github.com/Muskhoops/FRETXPRESS/services/workflow-orchestrator/internal/workflow"
	"github.com/Muskhoops/FRETXPRESS/shared/contracts"
	"github.com/Muskhoops/FRETXPRESS/shared/grpcserver"
	pkgkafka "github.com/Muskhoops/FRETXPRESS/shared/kafka"
	pkgrabbit "github.com/Muskhoops/FRETXPRESS/shared/rabbitmq"
)

func main() {
	log.SetFlags(log.LstdFlags | log.Lshortfile)
	cfg := config.LoadConfig()

	acts := &activities.BookingActivities{}

	// 1. KAFKA PRODUCER
	var producer *pkgkafka.KafkaProducer
	if cfg.HasKafka() {
		log.Printf("Connecting to Kafka at: %s, Topic: %s", cfg.KAFKA_BROKER, cfg.KAFKA_TOPIC)
		producer = pkgkafka.NewKafkaProducer(cfg.KAFKA_BROKER, cfg.KAFKA_TOPIC)
		acts.Producer = producer
	} else {
		log.Println("Warning: Kafka not configured, booking events will not be published")
	}

	// 2. RABBITMQ
	var rabbitClient *pkgrabbit.RabbitmqClient
	if cfg.HasRabbitMQ() {
		log.Printf("Connecting to RabbitMQ at: %s", cfg.RABBITMQ_HOST)
		var err error
		rabbitClient, err = pkgrabbit.NewClient(cfg.GetRabbitMQURL())
		if err != nil {
			log.Fatalf("Failed to connect to RabbitMQ: %v", err)
		}
		if err := rabbitClient.CreateQueue(pkgrabbit.EmailQueue); err != nil {
			log.Fatalf("Failed to create queue %s: %v", pkgrabbit.EmailQueue, err)
		}
		acts.Jobs = rabbitClient
	} else {
		log.Println("Warning: RabbitMQ not configured, confirmation emails will not be queued")
	}

	// 3. TEMPORAL
	log.Printf("Connecting to Temporal at: %s", cfg.TEMPORAL_HOST_PORT)
	c, err := client.Dial(client.Options{HostPort: cfg.TEMPORAL_HOST_PORT})
	if err != nil {
		log.Fatalf("Unable to create Temporal client: %v", err)
	}
	defer c.Close()

	w := worker.New(c, contracts.BookingTaskQueue, worker.Options{})
	bookingflow.Register(w, acts)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()
	g, ctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		log.Printf("🚀 Worker listening on %s", contracts.BookingTaskQueue)
		// closing the channel stops the worker
		interrupt := make(chan interface{})
		go func() {
			<-ctx.Done()
			close(interrupt)
		}()
		return w.Run(interrupt)
	})
	g.Go(func() error {
		return grpcserver.New("workflow.WorkflowOrchestrator").Serve(ctx, cfg.GRPC_ADDR)
	})

	if err := g.Wait(); err != nil {
		log.Printf("Worker stopped with error: %v", err)
	}

	log.Println("🛑 Closing time...")
	if producer != nil {
		if err := producer.Close(); err != nil {
			log.Printf("Failed to close Kafka producer: %v", err)
		}
	}
	if rabbitClient != nil {
		if err := rabbitClient.Close(); err != nil {
			log.Printf("Failed to close RabbitMQ connection: %v", err)
		}
	}
	log.Println("Worker shutdown complete")
}
