//services/communications-service/cmd/main.go

package main

import (
	"context"
	"log"
	"os/signal"
	"syscall"

	"golang.org/x/sync/errgroup"

	"github.com/Muskhoops/FRETXPRESS/services/communications-service/internal/bridge"
	"github.com/Muskhoops/FRETXPRESS/services/communications-service/internal/config"
	"github.com/Muskhoops/FRETXPRESS/services/communications-service/internal/notify"
	"github.com/Muskhoops/FRETXPRESS/services/communications-service/internal/worker"
	"github.com/Muskhoops/FRETXPRESS/shared/grpcserver"
	pkgkafka "github.com/Muskhoops/FRETXPRESS/shared/kafka"
	pkgrabbit "github.com/Muskhoops/FRETXPRESS/shared/rabbitmq"
)

func main() {
	log.SetFlags(log.LstdFlags | log.Lshortfile)
	cfg := config.LoadConfig()

	log.Printf("Connecting to RabbitMQ at: %s", cfg.RABBITMQ_HOST)
	rabbitClient, err := pkgrabbit.NewClient(cfg.GetRabbitMQURL())
	if err != nil {
		log.Fatalf("Failed to connect to RabbitMQ: %v", err)
	}
	// closed explicitly after the workers stop

	for _, q := range []string{pkgrabbit.EmailQueue, pkgrabbit.SMSQueue} {
		if err := rabbitClient.CreateQueue(q); err != nil {
			log.Fatalf("Failed to create queue %s: %v", q, err)
		}
	}

	emailJobs, err := rabbitClient.Consume(pkgrabbit.EmailQueue)
	if err != nil {
		log.Fatalf("Failed to consume %s: %v", pkgrabbit.EmailQueue, err)
	}
	smsJobs, err := rabbitClient.Consume(pkgrabbit.SMSQueue)
	if err != nil {
		log.Fatalf("Failed to consume %s: %v", pkgrabbit.SMSQueue, err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()
	g, ctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		worker.New("email", notify.LogEmailSender{}).Run(ctx, emailJobs)
		return nil
	})
	g.Go(func() error {
		worker.New("sms", notify.LogSMSSender{}).Run(ctx, smsJobs)
		return nil
	})

	var kafkaConsumer *pkgkafka.Consumer
	if cfg.HasKafka() {
		log.Printf("Connecting to Kafka at: %s, Topic: %s", cfg.KAFKA_BROKER, cfg.KAFKA_TOPIC)
		kafkaConsumer = pkgkafka.NewConsumer([]string{cfg.KAFKA_BROKER}, cfg.KAFKA_TOPIC, cfg.CONSUMER_GROUP)
		dispatcher := bridge.NewDispatcher(rabbitClient)
		g.Go(func() error {
			log.Println("🎧 Bridge listener started")
			kafkaConsumer.Start(ctx, dispatcher.Handle)
			return nil
		})
	} else {
		log.Println("Warning: Kafka not configured, only queued jobs will be processed")
	}

	g.Go(func() error {
		return grpcserver.New("communications.CommunicationsService").Serve(ctx, cfg.GRPC_ADDR)
	})

	log.Println("Service running. Press Ctrl + c to stop")
	if err := g.Wait(); err != nil {
		log.Printf("Service stopped with error: %v", err)
	}

	log.Println("🛑 Closing time...")
	if kafkaConsumer != nil {
		if err := kafkaConsumer.Close(); err != nil {
			log.Printf("Failed to close Kafka consumer: %v", err)
		}
	}
	if err := rabbitClient.Close(); err != nil {
		log.Fatalf("Failed to close RabbitMQ connection: %v", err)
	}
	log.Println("Service shutdown complete. Safe to exit")
}
