package main

import (
	"context"
	"flag"
	"log"
	"os/signal"
	"sort"
	"syscall"

	"gps-tracking-be/internal/config"
	"gps-tracking-be/pkg/events"
	"gps-tracking-be/pkg/nats"

	"github.com/fatih/color"
)

// ledger-tail prints ledger events as they arrive on the NATS stream.
func main() {
	durable := flag.String("durable", "", "durable consumer name (empty tails new events only)")
	eventType := flag.String("type", ">", "event type to follow, e.g. PAYMENT_RECORDED")
	flag.Parse()

	cfg := config.Load()
	if cfg.App.NatsURL == "" {
		log.Fatal("NATS_URL is not set")
	}

	sub, err := nats.NewSubscriber(cfg.App.NatsURL)
	if err != nil {
		log.Fatalf("Failed to connect to NATS: %v", err)
	}
	defer sub.Close()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	subject := nats.Subject(*eventType)
	color.Cyan("Tailing %s (stream %s)...", subject, nats.StreamName)

	err = sub.Subscribe(ctx, subject, *durable, func(_ context.Context, event events.Event) error {
		color.Green("%s  %s", event.Timestamp().Format("2006-01-02 15:04:05"), event.EventType())
		payload := event.Payload()
		keys := make([]string, 0, len(payload))
		for k := range payload {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		for _, k := range keys {
			color.White("    %s: %v", k, payload[k])
		}
		return nil
	})
	if err != nil {
		color.Red("Failed: %v", err)
		return
	}

	<-ctx.Done()
	color.Yellow("Stopped.")
}
