package cmd

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/spf13/cobra"

	"github.com/donaldgifford/storefront-discovery/internal/discovery"
	"github.com/donaldgifford/storefront-discovery/internal/schedule"
)

func watchCmd() *cobra.Command {
	var (
		interval    time.Duration
		count       int
		metricsAddr string
	)

	cmd := &cobra.Command{
		Use:   "watch",
		Short: "Re-fetch a listing page on an interval",
		Long: "Show a listing page and refresh it on a fixed interval, keeping the\n" +
			"current facets and page. Accepts the same facet flags as browse.",
		Example: `  spd watch --category Electronics --on-sale --interval 1m
  spd watch --location '?brand=Lumen' --count 3
  spd watch --category Home --metrics-addr :9102`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			log := newLogger()
			c := newClient()

			f, page, err := initialListing(ctx, cmd.Flags(), c, log)
			if err != nil {
				return err
			}

			if metricsAddr != "" {
				srv := serveMetrics(metricsAddr, log)
				defer func() {
					shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
					defer cancel()
					if err := srv.Shutdown(shutdownCtx); err != nil {
						log.Warn("metrics server shutdown failed", "error", err)
					}
				}()
			}

			updates := make(chan discovery.ListingView)
			done := make(chan struct{})
			listing := discovery.NewListing(c, discoveryOptions(log,
				discovery.WithListingObserver(func(v discovery.ListingView) {
					if v.Status == discovery.ListingLoading {
						return
					}
					select {
					case updates <- v:
					case <-done:
					}
				}),
			)...)
			defer listing.Close()
			defer close(done)

			sched, err := schedule.New(listing, interval, log)
			if err != nil {
				return err
			}

			if err := listing.Seed(f, page); err != nil {
				return err
			}
			sched.Start()
			defer func() { <-sched.Stop().Done() }()

			return watchLoop(ctx, cmd, updates, count)
		},
	}

	addFacetFlags(cmd.Flags())
	cmd.Flags().DurationVar(&interval, "interval", 30*time.Second, "refresh interval")
	cmd.Flags().IntVar(&count, "count", 0, "exit after this many updates (0 runs until interrupted)")
	cmd.Flags().StringVar(&metricsAddr, "metrics-addr", "", "serve Prometheus metrics on this address while watching")
	return cmd
}

// serveMetrics exposes the process metrics on addr until shut down.
func serveMetrics(addr string, log *slog.Logger) *http.Server {
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.Handler())
	srv := &http.Server{
		Addr:              addr,
		Handler:           mux,
		ReadHeaderTimeout: 5 * time.Second,
	}
	go func() {
		log.Info("serving metrics", "addr", addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Error("metrics server failed", "error", err)
		}
	}()
	return srv
}

func watchLoop(ctx context.Context, cmd *cobra.Command, updates <-chan discovery.ListingView, count int) error {
	w := cmd.OutOrStdout()
	var seq uint64
	for n := 0; count == 0 || n < count; {
		select {
		case <-ctx.Done():
			return nil
		case v := <-updates:
			if v.Seq < seq {
				continue
			}
			seq = v.Seq
			n++
			if _, err := fmt.Fprintf(w, "--- %s ---\n", time.Now().Format(time.TimeOnly)); err != nil {
				return err
			}
			if v.Status == discovery.ListingError {
				if _, err := fmt.Fprintf(w, "refresh failed: %s\n", v.Err); err != nil {
					return err
				}
				continue
			}
			if err := printListing(w, &v); err != nil {
				return err
			}
		}
	}
	return nil
}
