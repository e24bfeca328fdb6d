package metrics

import (
	"context"
	"io"
	"net"
	"net/http"
	"testing"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/ceto-project/ceto/core/factory"
	coremetrics "github.com/ceto-project/ceto/core/metrics"
)

func TestPromServerServesMetrics(t *testing.T) {
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	if err != nil {
		t.Fatalf("listen: %v", err)
	}
	ctx, cancel := context.WithCancel(context.Background())
	served := make(chan error, 1)
	go func() { served <- servePromMetrics(ctx, ln) }()

	resp, err := http.Get("http://" + ln.Addr().String() + "/metrics")
	if err != nil {
		t.Fatalf("scrape: %v", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("scrape status %d", resp.StatusCode)
	}
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		t.Fatalf("read body: %v", err)
	}
	if len(body) == 0 {
		t.Fatalf("empty metrics payload")
	}

	cancel()
	if err := <-served; err != nil {
		t.Fatalf("serve: %v", err)
	}
}

func TestServedPromSinkClose(t *testing.T) {
	reg := prometheus.NewRegistry()
	sink, err := NewPromSinkWithRegistry(coremetrics.Config{}, reg)
	if err != nil {
		t.Fatalf("new sink: %v", err)
	}
	served := newServedPromSink(sink, "127.0.0.1:0")
	if err := served.Close(); err != nil {
		t.Fatalf("close: %v", err)
	}
	// The embedded sink keeps recording after the endpoint is gone.
	if err := served.RecordSuggestion(nil); err != nil {
		t.Fatalf("record after close: %v", err)
	}
}

func TestServedPromSinkIsCloser(t *testing.T) {
	var sink coremetrics.MetricsSink = &servedPromSink{}
	if _, ok := sink.(io.Closer); !ok {
		t.Fatalf("served prom sink does not expose Close")
	}
	if _, ok := sink.(coremetrics.FuelEstimateRecorder); !ok {
		t.Fatalf("served prom sink lost the fuel estimate recorder")
	}
}

func TestPrometheusSinkConfigStartsServer(t *testing.T) {
	sink, err := coremetrics.NewMetricsSink([]factory.ModuleConfig{{
		Type: "prometheus",
		Conf: map[string]any{"prometheus_port": "127.0.0.1:0"},
	}})
	if err != nil {
		t.Fatalf("new sink: %v", err)
	}
	c, ok := sink.(io.Closer)
	if !ok {
		t.Fatalf("prometheus sink with a port is not closable: %T", sink)
	}
	if err := c.Close(); err != nil {
		t.Fatalf("close: %v", err)
	}
}

func TestPromAddr(t *testing.T) {
	cases := map[string]string{
		"9090":           ":9090",
		":9090":          ":9090",
		"127.0.0.1:9090": "127.0.0.1:9090",
	}
	for port, want := range cases {
		if got := promAddr(port); got != want {
			t.Errorf("promAddr(%q) = %q, want %q", port, got, want)
		}
	}
}
