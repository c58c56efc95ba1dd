// Command seed fills a running blog backend with demo users and posts
// through its public API.
//
//	go run ./cmd/seed -a localhost:5000
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/VaibhavVerma2001/blog-website-backend-with-JWT/internal/adapter"
	"github.com/VaibhavVerma2001/blog-website-backend-with-JWT/internal/logger"
)

func main() {
	fs := flag.NewFlagSet("seed", flag.ExitOnError)
	address := fs.String("a", "localhost:5000", "blog server address")
	timeout := fs.Duration("t", 10*time.Second, "request timeout")
	password := fs.String("p", "password123", "password for every demo user")
	level := fs.String("l", "info", "log level")
	_ = fs.Parse(os.Args[1:])

	log := logger.NewLogger("blog-seed", *level)

	api, err := adapter.NewHTTPAPIAdapter(*address, *timeout, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating api adapter")
	}

	ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
	total, err := run(ctx, api, log, *password)
	cancel()
	if err != nil {
		log.Fatal().Err(err).Msg("seeding failed")
	}

	log.Info().Int("posts", total).Msg("seeding finished")
}

func run(ctx context.Context, api adapter.APIAdapter, log *logger.Logger, password string) (int, error) {
	version, err := api.GetServerVersion(ctx)
	if err != nil {
		return 0, fmt.Errorf("server is not reachable: %w", err)
	}
	log.Info().Str("server_version", version).Msg("connected to server")

	return newSeeder(api, log).seed(ctx, demoAuthors(password))
}
