package main

import (
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/jessevdk/go-flags"
	"github.com/ulule/limiter/v3/drivers/middleware/stdlib"
)

type Server struct {
	r          chi.Router
	simLimiter *stdlib.Middleware
}

func main() {
	var opts Options
	parser := flags.NewParser(&opts, flags.Default)
	if _, err := parser.Parse(); err != nil {
		var flagsErr *flags.Error
		if errors.As(err, &flagsErr) && flagsErr.Type == flags.ErrHelp {
			os.Exit(0)
		}
		os.Exit(1)
	}

	s, err := newServer(&opts)
	if err != nil {
		log.Fatalf("Server initialization errored: %v", err)
	}

	log.Printf("Simulation server listening on %s (origins=%v, rate=%q)", opts.Listen, opts.AllowOrigins, opts.RateLimit)
	if err := http.ListenAndServe(opts.Listen, s.r); err != nil {
		log.Fatal(err)
	}
}

func newServer(opts *Options) (*Server, error) {
	simLimiter, err := newRateLimiter(opts.RateLimit, opts.TrustForwardHeader)
	if err != nil {
		return nil, fmt.Errorf("rate limiter: %w", err)
	}

	r := chi.NewRouter()

	// Middleware
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(cors.Handler(corsOptions(opts.AllowOrigins)))

	s := &Server{
		r:          r,
		simLimiter: simLimiter,
	}

	r.Get("/health", s.GETHealth)

	r.Route("/api/sim", func(r chi.Router) {
		if s.simLimiter != nil {
			r.Use(s.simLimiter.Handler)
		}
		r.Post("/nba", s.POSTNBASimHandler)
	})

	return s, nil
}
