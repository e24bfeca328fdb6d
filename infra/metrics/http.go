package metrics

import (
	"context"
	"net"
	"net/http"
	"strings"
	"time"

	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/ceto-project/ceto/infra/logger"
)

// StartPromServer serves Prometheus metrics on /metrics at the given
// address until the context is canceled. A dedicated ServeMux is used to
// avoid interfering with other handlers.
func StartPromServer(ctx context.Context, addr string) error {
	ln, err := net.Listen("tcp", addr)
	if err != nil {
		return err
	}
	return servePromMetrics(ctx, ln)
}

func servePromMetrics(ctx context.Context, ln net.Listener) error {
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.Handler())
	srv := &http.Server{Handler: mux}
	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			logger.New("metrics").Errorf("prom server shutdown: %v", err)
		}
	}()
	if err := srv.Serve(ln); err != nil && err != http.ErrServerClosed {
		return err
	}
	return nil
}

// servedPromSink couples a PromSink with the HTTP server that exposes its
// registry for scraping.
type servedPromSink struct {
	*PromSink
	cancel context.CancelFunc
	done   chan struct{}
}

func newServedPromSink(sink *PromSink, addr string) *servedPromSink {
	ctx, cancel := context.WithCancel(context.Background())
	s := &servedPromSink{PromSink: sink, cancel: cancel, done: make(chan struct{})}
	go func() {
		defer close(s.done)
		if err := StartPromServer(ctx, addr); err != nil {
			logger.New("metrics").Errorf("prom server: %v", err)
		}
	}()
	return s
}

// Close shuts the metrics endpoint down and waits for the server to exit.
func (s *servedPromSink) Close() error {
	s.cancel()
	<-s.done
	return nil
}

// promAddr accepts either a bare port or a full listen address.
func promAddr(port string) string {
	if strings.Contains(port, ":") {
		return port
	}
	return ":" + port
}
