package metrics

import (
	"context"
	"math"
	"net/http"
	"strconv"
	"strings"
	"time"

	influxdb2 "github.com/influxdata/influxdb-client-go/v2"
	"github.com/influxdata/influxdb-client-go/v2/api"
	"github.com/influxdata/influxdb-client-go/v2/api/write"

	coremetrics "github.com/ceto-project/ceto/core/metrics"
	"github.com/ceto-project/ceto/infra/logger"
)

// InfluxSink writes estimation events to an InfluxDB instance using the
// official client.
type InfluxSink struct {
	client   influxdb2.Client
	writeAPI api.WriteAPIBlocking
	log      logger.Logger
}

// NewInfluxSink creates a new sink configured for the given InfluxDB endpoint.
func NewInfluxSink(url, token, org, bucket string) *InfluxSink {
	base := strings.TrimSuffix(url, "/api/v2/write")
	client := influxdb2.NewClientWithOptions(base, token,
		influxdb2.DefaultOptions().SetHTTPClient(&http.Client{Timeout: 5 * time.Second}))
	return &InfluxSink{
		client:   client,
		writeAPI: client.WriteAPIBlocking(org, bucket),
		log:      logger.New("influx-sink"),
	}
}

// NewInfluxSinkWithFallback tries to ping the InfluxDB instance and
// returns a NopSink if the health check fails.
func NewInfluxSinkWithFallback(url, token, org, bucket string) coremetrics.MetricsSink {
	sink := NewInfluxSink(url, token, org, bucket)
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	health, err := sink.client.Health(ctx)
	if err != nil || health.Status != "pass" {
		if err != nil {
			sink.log.Errorf("influx health check error: %v", err)
		} else {
			sink.log.Errorf("influx health status: %s", health.Status)
		}
		sink.client.Close()
		return coremetrics.NopSink{}
	}
	return sink
}

// RecordSuggestion writes each suggestion result as a point.
func (s *InfluxSink) RecordSuggestion(results []coremetrics.SuggestionEvent) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	for _, r := range results {
		p := write.NewPointWithMeasurement("energy_system_suggestion").
			AddTag("run_id", r.RunID).
			AddTag("strategy", r.Strategy).
			AddTag("vessel_type", r.VesselType).
			AddTag("converged", strconv.FormatBool(r.Converged)).
			AddField("iterations", r.Iterations).
			AddField("total_weight_kg", round3(r.TotalWeightKg)).
			AddField("total_volume_m3", round3(r.TotalVolumeM3)).
			AddField("change_in_draft_m", round3(r.DraftChangeM)).
			SetTime(r.Time)
		if err := s.writeAPI.WritePoint(ctx, p); err != nil {
			return err
		}
	}
	return nil
}

// RecordSolverIteration persists one draft-feedback iteration snapshot.
func (s *InfluxSink) RecordSolverIteration(ev coremetrics.SolverIterationEvent) error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	p := write.NewPointWithMeasurement("solver_iteration").
		AddTag("run_id", ev.RunID).
		AddTag("strategy", ev.Strategy).
		AddField("iteration", ev.Iteration).
		AddField("energy_kwh", round3(ev.EnergyKWh)).
		AddField("max_power_kw", round3(ev.MaxPowerKW)).
		AddField("total_weight_kg", round3(ev.TotalWeightKg)).
		AddField("change_in_draft_m", round3(ev.DraftChangeM)).
		SetTime(ev.Time)
	return s.writeAPI.WritePoint(ctx, p)
}

// RecordFuelEstimate writes a baseline fuel estimate.
func (s *InfluxSink) RecordFuelEstimate(ev coremetrics.FuelEstimateEvent) error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	p := write.NewPointWithMeasurement("fuel_estimate").
		AddTag("run_id", ev.RunID).
		AddTag("vessel_type", ev.VesselType).
		AddTag("fuel_type", ev.FuelType).
		AddField("total_kg", round3(ev.TotalKg)).
		AddField("average_fuel_consumption_l_per_nm", round3(ev.AverageLPerNM)).
		SetTime(ev.Time)
	return s.writeAPI.WritePoint(ctx, p)
}

// Close releases the underlying client.
func (s *InfluxSink) Close() error {
	s.client.Close()
	return nil
}

func round3(v float64) float64 {
	return math.Round(v*1000) / 1000
}
