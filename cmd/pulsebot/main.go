package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"net/http"
	"os"
	"path/filepath"
	"time"

	"github.com/joho/godotenv"

	"github.com/pulsebot/pulsebot/pkg/bot"
	"github.com/pulsebot/pulsebot/pkg/config"
	"github.com/pulsebot/pulsebot/pkg/generate"
	"github.com/pulsebot/pulsebot/pkg/social"
)

// newMux serves liveness on /healthz and the cycle state on /statusz.
func newMux(b *bot.Bot) *http.ServeMux {
	mux := http.NewServeMux()
	mux.HandleFunc("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		fmt.Fprint(w, "ok")
	})
	mux.HandleFunc("/statusz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		fmt.Fprint(w, string(b.State()))
	})
	return mux
}

func main() {
	addr := flag.String("addr", ":8080", "Health endpoint listen address")
	dataDir := flag.String("data", "./data", "State directory (ledgers, cursor, session, audit log)")
	configPath := flag.String("config", "", "YAML config overriding built-in rosters and tunables")
	headless := flag.Bool("headless", true, "Run the browser headless")
	once := flag.Bool("once", false, "Run a single cycle and exit")
	flag.Parse()

	if err := godotenv.Load(); err != nil {
		log.Printf("no .env file loaded: %v", err)
	}

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	ctx := context.Background()

	gen, err := generate.NewGeminiGenerator(ctx, generate.GeminiConfig{})
	if err != nil {
		log.Fatalf("init generator: %v", err)
	}

	client := social.NewRodClient(social.RodConfig{
		SessionFile:   filepath.Join(*dataDir, "session_cookies.json"),
		Headless:      *headless,
		ScreenshotDir: filepath.Join(*dataDir, "screenshots"),
	})

	events, err := bot.NewJSONLLogger(filepath.Join(*dataDir, "cycle_events.jsonl"))
	if err != nil {
		log.Fatalf("open audit log: %v", err)
	}
	defer events.Close()

	b, err := bot.New(cfg, gen, client, *dataDir, events)
	if err != nil {
		log.Fatalf("init bot: %v", err)
	}

	mux := newMux(b)
	go func() {
		log.Printf("health endpoint on %s", *addr)
		if err := http.ListenAndServe(*addr, mux); err != nil {
			log.Printf("health endpoint stopped: %v", err)
		}
	}()

	if *once {
		if err := b.RunCycle(ctx); err != nil {
			log.Printf("cycle failed: %v", err)
			os.Exit(1)
		}
		return
	}

	interval := cfg.CycleInterval.Std()
	for {
		if err := b.RunCycle(ctx); err != nil {
			log.Printf("cycle failed: %v", err)
		}
		log.Printf("sleeping %s until next cycle", interval)
		time.Sleep(interval)
	}
}
