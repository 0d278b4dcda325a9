// cmd/main.go in authentication-service
package main

import (
	"context"
	"database/sql"
	"errors"
	"log"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/Muskhoops/FRETXPRESS/services/authentication-service/internal/app/commands"
	"github.com/Muskhoops/FRETXPRESS/services/authentication-service/internal/app/queries"
	"github.com/Muskhoops/FRETXPRESS/services/authentication-service/internal/config"
	"github.com/Muskhoops/FRETXPRESS/services/authentication-service/internal/infra/memory"
	"github.com/Muskhoops/FRETXPRESS/services/authentication-service/internal/infra/postgres"
	"github.com/Muskhoops/FRETXPRESS/services/authentication-service/internal/ports/crypto"
	"github.com/Muskhoops/FRETXPRESS/services/authentication-service/internal/ports/repository"
	httptransport "github.com/Muskhoops/FRETXPRESS/services/authentication-service/internal/transport/http"
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

	var users repository.UserStore = memory.NewUserStore()
	if cfg.HasDB() {
		db, err := sql.Open("postgres", cfg.GetDBURL())
		if err != nil {
			return err
		}
		defer db.Close()
		if err := db.PingContext(ctx); err != nil {
			return err
		}
		pg := postgres.NewPostgresUserStore(db)
		if err := pg.Migrate(ctx); err != nil {
			return err
		}
		log.Println("Accounts stored in Postgres")
		users = pg
	}

	sessions := memory.NewSessionStore()
	auditLog := memory.NewAuditLog()
	hasher := crypto.NewArgon2Hasher(nil)

	h := httptransport.New(
		commands.NewRegisterUserHandler(users, auditLog, hasher),
		commands.NewLoginUserHandler(users, sessions, auditLog, hasher, cfg.SESSION_TTL),
		queries.NewCurrentUserHandler(users, sessions),
		cfg.REQUEST_TIMEOUT,
	)

	srv := &http.Server{
		Addr:              cfg.HTTP_ADDR,
		Handler:           httpx.Logging("auth", h.Routes()),
		ReadTimeout:       10 * time.Second,
		ReadHeaderTimeout: 3 * time.Second,
		WriteTimeout:      15 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		log.Printf("authentication-service listening on %s", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	g.Go(func() error {
		return grpcserver.New("auth.AuthService").Serve(ctx, cfg.GRPC_ADDR)
	})
	g.Go(func() error {
		<-ctx.Done()
		log.Println("🛑 authentication-service shutting down...")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	})

	return g.Wait()
}
