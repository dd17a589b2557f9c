package main

import (
	"context"
	"flag"
	"log"
	"net/http"
	"net/http/pprof"
	"os"
	"path/filepath"
	"time"

	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/sunrise-ims/inventory-finder/pkg/cart"
	"github.com/sunrise-ims/inventory-finder/pkg/common"
	"github.com/sunrise-ims/inventory-finder/pkg/index"
	"github.com/sunrise-ims/inventory-finder/pkg/messaging"
	"github.com/sunrise-ims/inventory-finder/pkg/prefs"
	"github.com/sunrise-ims/inventory-finder/pkg/server"
)

var enableProfiling = flag.Bool("profiling", true, "enable profiling endpoints")

var (
	listenAddress = ":8080"
	debugAddress  = ":8081"
)

func getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func main() {
	flag.Parse()
	if err := godotenv.Load(); err == nil {
		log.Println("loaded configuration from .env")
	}

	redisURL := os.Getenv("REDIS_URL")
	redisPassword := os.Getenv("REDIS_PASSWORD")
	rabbitURL := os.Getenv("RABBIT_URL")
	rabbitPrefix := getenv("RABBIT_PREFIX", "inventory")
	dataPath := getenv("DATA_PATH", "data")
	snapshotPath := filepath.Join(dataPath, "inventory.json")

	if v := os.Getenv("LISTEN_ADDRESS"); v != "" {
		listenAddress = v
	}
	if v := os.Getenv("DEBUG_ADDRESS"); v != "" {
		debugAddress = v
	}

	idx := index.NewIndex()
	if err := idx.LoadSnapshot(snapshotPath); err != nil {
		log.Printf("failed to load snapshot %s: %v", snapshotPath, err)
	} else {
		log.Printf("index loaded, %d records", idx.Len())
	}

	srv := &server.WebServer{Index: idx}

	if redisURL != "" {
		srv.Cache = server.NewCache(redisURL, redisPassword, 0)
		srv.Prefs = prefs.NewStore(redisURL, redisPassword, 1)
		log.Printf("cache and preferences enabled, url: %s", redisURL)
	}

	if secret := os.Getenv("JWT_SECRET"); secret != "" {
		srv.Auth = server.NewAuth([]byte(secret), os.Getenv("API_KEY"))
	} else {
		log.Println("JWT_SECRET not set, running without authentication")
	}

	var cartStorage cart.Storage
	if redisURL != "" {
		cartStorage = cart.NewRedisStorage(redisURL, redisPassword, 2, 0)
	} else {
		cartStorage = cart.NewDiskStorage(filepath.Join(dataPath, "carts"))
	}
	cartServer := &cart.CartServer{Storage: cartStorage}

	if rabbitURL != "" {
		feed, err := messaging.NewInventoryFeed(rabbitURL, rabbitPrefix, idx)
		if err != nil {
			log.Fatalf("failed to connect to rabbitmq: %v", err)
		}
		if err := feed.Listen(); err != nil {
			log.Fatalf("failed to subscribe to inventory topics: %v", err)
		}
		log.Printf("listening for inventory changes on %s_*", rabbitPrefix)
	} else {
		log.Println("RABBIT_URL not set, running without the update feed")
	}

	mux := http.NewServeMux()
	mux.Handle("/api/", http.StripPrefix("/api", srv.Handler()))
	mux.Handle("/api/cart/", http.StripPrefix("/api/cart", cartServer.CartHandler()))

	debugMux := http.NewServeMux()
	debugMux.Handle("/metrics", promhttp.Handler())
	if enableProfiling != nil && *enableProfiling {
		log.Println("profiling enabled")
		debugMux.HandleFunc("/debug/pprof/", pprof.Index)
		debugMux.HandleFunc("/debug/pprof/cmdline", pprof.Cmdline)
		debugMux.HandleFunc("/debug/pprof/profile", pprof.Profile)
		debugMux.HandleFunc("/debug/pprof/symbol", pprof.Symbol)
		debugMux.HandleFunc("/debug/pprof/trace", pprof.Trace)
	}
	go func() {
		log.Printf("starting debug server %v", debugAddress)
		log.Fatal(http.ListenAndServe(debugAddress, debugMux))
	}()

	timeouts := common.LoadTimeoutConfig(common.TimeoutConfig{
		ReadHeader: 5 * time.Second,
		Read:       30 * time.Second,
		Write:      60 * time.Second,
		Idle:       120 * time.Second,
		Shutdown:   15 * time.Second,
		Hook:       10 * time.Second,
	})
	apiServer := common.NewServerWithTimeouts(&http.Server{
		Addr:    listenAddress,
		Handler: mux,
	}, timeouts)

	common.RunServerWithShutdown(apiServer, "inventory-finder", timeouts.Shutdown, timeouts.Hook,
		func(ctx context.Context) error {
			if err := os.MkdirAll(dataPath, 0755); err != nil {
				return err
			}
			return idx.SaveSnapshot(snapshotPath)
		},
	)
}
