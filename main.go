package main

import (
	"context"
	"errors"
	"log"
	"os"
	"os/signal"
	"sync"
	"time"

	"github.com/itbasis/go-clock"
	"github.com/joho/godotenv"
	"github.com/mww/sports_scoreboard/controller"
	"github.com/mww/sports_scoreboard/publisher"
	"github.com/mww/sports_scoreboard/sportsdb"
	"github.com/mww/sports_scoreboard/stats"
	"github.com/mww/sports_scoreboard/web"
	"github.com/redis/go-redis/v9"
)

func main() {
	err := godotenv.Load()
	if err != nil && !os.IsNotExist(err) {
		log.Fatalf("Error loading .env file: %v", err)
	}

	cfg, err := configFromEnv(os.Getenv)
	if err != nil {
		log.Fatalf("error reading config: %v", err)
	}

	sportsDB, err := sportsdb.NewWithURL(cfg.sportsDBURL, cfg.sportsDBKey)
	if err != nil {
		log.Fatalf("error creating sportsdb client: %v", err)
	}

	hub := web.NewHub()
	pubs := []publisher.Publisher{hub}

	if cfg.redisURL != "" {
		rdb, err := newRedisClient(cfg.redisURL)
		if err != nil {
			log.Fatalf("cannot connect to redis: %v", err)
		}
		defer rdb.Close()
		pubs = append(pubs, publisher.NewRedisStream(rdb))
		log.Printf("publishing scoreboard updates to redis stream %s", publisher.ScoreboardStream)
	}

	ctrl, err := controller.New(clock.New(), stats.NewRand(), sportsDB, publisher.Multi(pubs...), cfg.featuredTeam)
	if err != nil {
		log.Fatalf("error creating a new controller: %v", err)
	}

	// Load the featured teams before the first page is served.
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	if _, err := ctrl.RefreshScoreboard(ctx); err != nil {
		log.Printf("error with the initial scoreboard refresh: %v", err)
	}
	cancel()

	server, err := web.NewServer(cfg.port, ctrl, hub)
	if err != nil {
		log.Fatalf("error creating new web server: %v", err)
	}

	shutdown := make(chan bool)
	wg := &sync.WaitGroup{}

	// Setup a handler to catch ctrl-c signals and properly shutdown everything.
	intChannel := make(chan os.Signal, 2)
	signal.Notify(intChannel, os.Interrupt)
	go func() {
		<-intChannel
		close(shutdown)

		if err := waitTimeout(wg, 10*time.Second); err != nil {
			log.Printf("timed out waiting for proper shutdown")
			os.Exit(255)
		}
	}()

	// Regenerate the scoreboard and push it to the connected clients
	wg.Add(1)
	go ctrl.RunPeriodicScoreboardUpdates(cfg.refreshInterval, shutdown, wg)

	// Start the web server
	wg.Add(1)
	go server.ListenAndServe(shutdown, wg)

	// Wait for everything to stop.
	wg.Wait()
	log.Printf("server shutdown")
}

func newRedisClient(redisURL string) (*redis.Client, error) {
	opts, err := redis.ParseURL(redisURL)
	if err != nil {
		return nil, err
	}

	rdb := redis.NewClient(opts)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := rdb.Ping(ctx).Err(); err != nil {
		rdb.Close()
		return nil, err
	}
	return rdb, nil
}

func waitTimeout(wg *sync.WaitGroup, timeout time.Duration) error {
	c := make(chan any)
	go func() {
		defer close(c)
		wg.Wait()
	}()

	select {
	case <-c:
		return nil // completed normally
	case <-time.After(timeout):
		return errors.New("timed out waiting")
	}
}
