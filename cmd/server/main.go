package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"runtime/debug"
	"syscall"
	"time"

	"github.com/common-nighthawk/go-figure"
	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"

	"github.com/foodworks/go-ordering-auth/addresses"
	"github.com/foodworks/go-ordering-auth/auth"
	"github.com/foodworks/go-ordering-auth/customers"
	"github.com/foodworks/go-ordering-auth/internal/config"
	"github.com/foodworks/go-ordering-auth/server"
	"github.com/foodworks/go-ordering-auth/sessions"
	"github.com/foodworks/go-ordering-auth/sessions/redisrepo"
)

func main() {
	for {
		if err := run(); err != nil {
			log.Fatalf("Error running server: %s\n", err)
			time.Sleep(1 * time.Second)
		} else {
			break
		}
	}
	log.Printf("Server stopped\n")
}

func run() (returnError error) {
	defer func() {
		if r := recover(); r != nil {
			log.Printf("Recovered from panic: %v\n", r)
			debug.PrintStack()
			returnError = errors.New("panic recovered")
		}
	}()

	_ = godotenv.Load()

	c := config.New()
	displayAppname(c.GetAppName())

	repos := auth.Repos{
		Customers: customers.NewInMemoryRepo(),
		Sessions:  sessionRepo(c),
	}

	srv, err := server.New(c, repos, addresses.NewInMemoryRepo())
	if err != nil {
		return fmt.Errorf("server.New: %w", err)
	}

	httpServer := &http.Server{Addr: c.GetPort(), Handler: srv}
	go listenAndServe(httpServer)
	waitForStopSignal()
	returnError = shutdown(httpServer)
	return returnError
}

// sessionRepo selects the session store: redis when an address is
// configured, otherwise the in-memory store.
func sessionRepo(c config.Config) sessions.Repo {
	addr := c.GetRedisAddr()
	if addr == "" {
		return sessions.NewInMemoryRepo()
	}
	return redisrepo.New(redis.NewClient(&redis.Options{Addr: addr}))
}

func listenAndServe(server *http.Server) error {
	log.Printf("Server listening on %s\n", server.Addr)
	if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return fmt.Errorf("server.ListenAndServe %w", err)
	}
	return nil
}

func waitForStopSignal() {
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)
	<-stop
}

func shutdown(server *http.Server) error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := server.Shutdown(ctx); err != nil {
		return fmt.Errorf("server.Shutdown: %w", err)
	}
	return nil
}

func displayAppname(appname string) {
	myFigure := figure.NewFigure(appname, "cybermedium", true)
	myFigure.Print()
	fmt.Println()
}
