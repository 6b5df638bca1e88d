package aggregation

import (
	"context"
	"math"
	"strings"
	"testing"
	"time"

	"github.com/gridpulse/power-monitor/internal/pkg/infrastructure/storage"
	"github.com/gridpulse/power-monitor/pkg/types"
	"github.com/matryer/is"
)

func TestSummarizeConstantLoad(t *testing.T) {
	is := is.New(t)

	// one hour of 1000W at the nominal 5 minute cadence
	start := time.Date(2025, 6, 10, 8, 0, 0, 0, time.UTC)
	readings := make([]types.PowerReading, 12)
	for i := range readings {
		readings[i] = types.PowerReading{
			DeviceID:  "PZEM-001",
			Power:     1000.0,
			Timestamp: start.Add(time.Duration(i) * 5 * time.Minute),
		}
	}

	summary := summarize(readings)

	is.True(math.Abs(summary.ConsumptionKwh-1.0) < 1e-6)
	is.Equal(1000.0, summary.AvgPower)
	is.Equal(1000.0, summary.PeakPower)
	is.Equal(1000.0, summary.MinPower)
}

func TestSummarizeCapsGaps(t *testing.T) {
	is := is.New(t)

	// an hour long outage between the two readings must not contribute a
	// full hour of the first reading's power
	start := time.Date(2025, 6, 10, 8, 0, 0, 0, time.UTC)
	readings := []types.PowerReading{
		{DeviceID: "PZEM-001", Power: 1200.0, Timestamp: start},
		{DeviceID: "PZEM-001", Power: 600.0, Timestamp: start.Add(time.Hour)},
	}

	summary := summarize(readings)

	// both readings held for 5 minutes each
	want := (1200.0 + 600.0) * (5.0 / 60.0) / 1000.0
	is.True(math.Abs(summary.ConsumptionKwh-want) < 1e-6)
	is.Equal(1200.0, summary.PeakPower)
	is.Equal(600.0, summary.MinPower)
}

func TestSummarizeUnorderedInput(t *testing.T) {
	is := is.New(t)

	start := time.Date(2025, 6, 10, 8, 0, 0, 0, time.UTC)
	readings := []types.PowerReading{
		{Power: 500.0, Timestamp: start.Add(10 * time.Minute)},
		{Power: 500.0, Timestamp: start},
		{Power: 500.0, Timestamp: start.Add(5 * time.Minute)},
	}

	summary := summarize(readings)

	want := 3 * 500.0 * (5.0 / 60.0) / 1000.0
	is.True(math.Abs(summary.ConsumptionKwh-want) < 1e-6)
}

func TestCalculateDailyStoresZeroRecordWhenNoReadings(t *testing.T) {
	is := is.New(t)
	ctx := context.Background()

	s := &AggregationStorageMock{
		QueryPowerReadingsFunc: func(ctx context.Context, conditions ...storage.ConditionFunc) (types.Collection[types.PowerReading], error) {
			return types.Collection[types.PowerReading]{Data: []types.PowerReading{}}, nil
		},
		GetTariffFunc: func(ctx context.Context, conditions ...storage.ConditionFunc) (types.Tariff, error) {
			return types.Tariff{}, storage.ErrNoRows
		},
		UpsertDailyConsumptionFunc: func(ctx context.Context, dc types.DailyConsumption) error {
			return nil
		},
	}

	svc := New(s)

	dc, err := svc.CalculateDaily(ctx, "PZEM-001", time.Date(2025, 6, 10, 14, 30, 0, 0, time.UTC))
	is.NoErr(err)

	is.Equal(1, len(s.UpsertDailyConsumptionCalls()))
	is.Equal(0.0, dc.TotalConsumption)
	is.Equal(0.0, dc.TotalCost)
	is.Equal(time.Date(2025, 6, 10, 0, 0, 0, 0, time.UTC), dc.Date)
}

func TestCalculateDailyAppliesTariff(t *testing.T) {
	is := is.New(t)
	ctx := context.Background()

	start := time.Date(2025, 6, 10, 8, 0, 0, 0, time.UTC)
	readings := make([]types.PowerReading, 12)
	for i := range readings {
		readings[i] = types.PowerReading{
			DeviceID:  "PZEM-001",
			Power:     1000.0,
			Timestamp: start.Add(time.Duration(i) * 5 * time.Minute),
		}
	}

	s := &AggregationStorageMock{
		QueryPowerReadingsFunc: func(ctx context.Context, conditions ...storage.ConditionFunc) (types.Collection[types.PowerReading], error) {
			return types.Collection[types.PowerReading]{Data: readings, Count: uint64(len(readings))}, nil
		},
		GetTariffFunc: func(ctx context.Context, conditions ...storage.ConditionFunc) (types.Tariff, error) {
			return types.Tariff{ID: "default", RatePerKwh: 225.0, Currency: "NGN", Active: true}, nil
		},
		UpsertDailyConsumptionFunc: func(ctx context.Context, dc types.DailyConsumption) error {
			return nil
		},
	}

	svc := New(s)

	dc, err := svc.CalculateDaily(ctx, "PZEM-001", start)
	is.NoErr(err)
	is.True(math.Abs(dc.TotalConsumption-1.0) < 1e-6)
	is.True(math.Abs(dc.TotalCost-225.0) < 1e-6)
}

func TestCalculateRangeCoversEveryDayInclusive(t *testing.T) {
	is := is.New(t)
	ctx := context.Background()

	s := &AggregationStorageMock{
		QueryPowerReadingsFunc: func(ctx context.Context, conditions ...storage.ConditionFunc) (types.Collection[types.PowerReading], error) {
			return types.Collection[types.PowerReading]{}, nil
		},
		GetTariffFunc: func(ctx context.Context, conditions ...storage.ConditionFunc) (types.Tariff, error) {
			return types.Tariff{}, storage.ErrNoRows
		},
		UpsertDailyConsumptionFunc: func(ctx context.Context, dc types.DailyConsumption) error {
			return nil
		},
	}

	svc := New(s)

	err := svc.CalculateRange(ctx,
		"PZEM-001",
		time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC),
		time.Date(2025, 6, 7, 0, 0, 0, 0, time.UTC),
	)
	is.NoErr(err)
	is.Equal(7, len(s.UpsertDailyConsumptionCalls()))
}

func TestEstimateCostWithoutTariff(t *testing.T) {
	is := is.New(t)
	ctx := context.Background()

	s := &AggregationStorageMock{
		GetTariffFunc: func(ctx context.Context, conditions ...storage.ConditionFunc) (types.Tariff, error) {
			return types.Tariff{}, storage.ErrNoRows
		},
	}

	svc := New(s)

	_, _, err := svc.EstimateCost(ctx, 10.0, "")
	is.Equal(ErrNoTariff, err)
}

func TestEstimateCostResolvesTariffReference(t *testing.T) {
	is := is.New(t)
	ctx := context.Background()

	s := &AggregationStorageMock{
		GetTariffFunc: func(ctx context.Context, conditions ...storage.ConditionFunc) (types.Tariff, error) {
			condition := &storage.Condition{}
			for _, f := range conditions {
				f(condition)
			}
			if condition.TariffID == "night" {
				return types.Tariff{ID: "night", RatePerKwh: 110.0, Currency: "NGN"}, nil
			}
			return types.Tariff{ID: "default", RatePerKwh: 225.0, Currency: "NGN", Active: true}, nil
		},
	}

	svc := New(s)

	cost, tariff, err := svc.EstimateCost(ctx, 10.0, "night")
	is.NoErr(err)
	is.Equal("night", tariff.ID)
	is.True(math.Abs(cost-1100.0) < 1e-6)

	cost, tariff, err = svc.EstimateCost(ctx, 10.0, "")
	is.NoErr(err)
	is.Equal("default", tariff.ID)
	is.True(math.Abs(cost-2250.0) < 1e-6)
}

func TestQueryBoundsConsumptionByDateColumns(t *testing.T) {
	is := is.New(t)
	ctx := context.Background()

	var applied storage.Condition

	s := &AggregationStorageMock{
		QueryDailyConsumptionFunc: func(ctx context.Context, conditions ...storage.ConditionFunc) (types.Collection[types.DailyConsumption], error) {
			for _, f := range conditions {
				f(&applied)
			}
			return types.Collection[types.DailyConsumption]{}, nil
		},
	}

	svc := New(s)

	_, err := svc.Query(ctx, map[string][]string{
		"device_id": {"PZEM-001"},
		"from":      {"2024-06-01"},
		"to":        {"2024-06-07"},
	})
	is.NoErr(err)

	is.Equal("PZEM-001", applied.DeviceID)
	is.Equal("2024-06-01", applied.StartDate)
	is.Equal("2024-06-07", applied.EndDate)

	// the interval lands on the date column, never on a timestamp column
	where := applied.Where()
	is.True(strings.Contains(where, "date >= @start_date"))
	is.True(strings.Contains(where, "date <= @end_date"))
	is.True(!strings.Contains(where, "ts >="))
}

func TestQueryDefaultsToTrailingWindow(t *testing.T) {
	is := is.New(t)
	ctx := context.Background()

	var applied storage.Condition

	s := &AggregationStorageMock{
		QueryDailyConsumptionFunc: func(ctx context.Context, conditions ...storage.ConditionFunc) (types.Collection[types.DailyConsumption], error) {
			for _, f := range conditions {
				f(&applied)
			}
			return types.Collection[types.DailyConsumption]{}, nil
		},
	}

	svc := New(s)

	_, err := svc.Query(ctx, map[string][]string{"period": {"weekly"}})
	is.NoErr(err)

	start, perr := time.Parse(time.DateOnly, applied.StartDate)
	is.NoErr(perr)
	end, perr := time.Parse(time.DateOnly, applied.EndDate)
	is.NoErr(perr)

	// seven inclusive days ending today
	is.Equal(6*24*time.Hour, end.Sub(start))
}
