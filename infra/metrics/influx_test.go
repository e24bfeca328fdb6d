package metrics

import (
	"testing"

	coremetrics "github.com/ceto-project/ceto/core/metrics"
)

func TestInfluxSinkFallback(t *testing.T) {
	sink := NewInfluxSinkWithFallback("http://127.0.0.1:1", "token", "org", "bucket")
	if _, ok := sink.(coremetrics.NopSink); !ok {
		t.Fatalf("unreachable InfluxDB should fall back to NopSink, got %T", sink)
	}
}

func TestInfluxURLNormalisation(t *testing.T) {
	sink := NewInfluxSink("http://influx.local/api/v2/write", "token", "org", "bucket")
	defer sink.Close()
	if sink.client == nil || sink.writeAPI == nil {
		t.Fatalf("sink not initialised")
	}
}

func TestRound3(t *testing.T) {
	if got := round3(1.23456); got != 1.235 {
		t.Errorf("round3(1.23456) = %v", got)
	}
	if got := round3(-0.0004); got != 0 {
		t.Errorf("round3(-0.0004) = %v", got)
	}
}
