package sim

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRun_InvalidConfig_ReturnsErrorNoRecords(t *testing.T) {
	cfg := DefaultConfig()
	cfg.StationARate = 0

	records, err := Run(cfg)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "station A rate")
	assert.Nil(t, records, "no partial state on rejected config")
}

func TestRun_MinuteTags_ContiguousFromZero(t *testing.T) {
	cfg := DefaultConfig()
	cfg.HorizonMinutes = 10

	records, err := Run(cfg)

	require.NoError(t, err)
	require.Len(t, records, 10)
	for i, r := range records {
		assert.Equal(t, i, r.Minute)
	}
}

func TestRun_SnapshotInvariants(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Buffer1Capacity = 40
	cfg.Buffer2Capacity = 25
	cfg.HorizonMinutes = 60

	records, err := Run(cfg)
	require.NoError(t, err)

	prevCompleted := 0
	for _, r := range records {
		assert.GreaterOrEqual(t, r.Buffer1Len, 0)
		assert.LessOrEqual(t, r.Buffer1Len, cfg.Buffer1Capacity)
		assert.GreaterOrEqual(t, r.Buffer2Len, 0)
		assert.LessOrEqual(t, r.Buffer2Len, cfg.Buffer2Capacity)
		assert.GreaterOrEqual(t, r.Completed, prevCompleted, "completed must not decrease")
		prevCompleted = r.Completed
	}
}

func TestRun_SameSeed_BitIdenticalSeries(t *testing.T) {
	cfg := DefaultConfig()
	cfg.HorizonMinutes = 60

	first, err := Run(cfg)
	require.NoError(t, err)
	second, err := Run(cfg)
	require.NoError(t, err)

	require.Equal(t, first, second)
}

func TestRun_DifferentSeed_DifferentSeries(t *testing.T) {
	cfg := DefaultConfig()
	cfg.HorizonMinutes = 60

	first, err := Run(cfg)
	require.NoError(t, err)
	cfg.Seed = 43
	second, err := Run(cfg)
	require.NoError(t, err)

	assert.NotEqual(t, first, second)
}

// The reference scenario: arrivals (30/min) exceed Station A (30), Station B
// (20), and the fleet's aggregate 3x5=15/min, so work piles up ahead of the
// slowest stage.
func TestRun_ReferenceScenario(t *testing.T) {
	records, err := Run(DefaultConfig())
	require.NoError(t, err)
	require.Len(t, records, 120)

	final := records[len(records)-1]
	assert.Positive(t, final.Completed)
	// the fleet physically cannot beat its aggregate rate
	assert.LessOrEqual(t, final.Completed, 15*120)
	// the 20-vs-15 units/min mismatch accumulates ahead of the fleet
	assert.Greater(t, final.Buffer2Len, 0)

	again, err := Run(DefaultConfig())
	require.NoError(t, err)
	require.Equal(t, records, again, "reference scenario must reproduce exactly")
}

func TestRun_ZeroCapacityBuffer1_NothingEverCompletes(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Buffer1Capacity = 0
	cfg.HorizonMinutes = 30

	records, err := Run(cfg)
	require.NoError(t, err)

	for _, r := range records {
		assert.Zero(t, r.Buffer1Len)
		assert.Zero(t, r.Buffer2Len)
		assert.Zero(t, r.Completed)
	}
}

func TestRun_SingleSlowWorker_SaturatesBuffer2(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Buffer2Capacity = 10
	cfg.TerminalWorkers = 1
	cfg.TerminalRate = 0.5 // 2 min per unit, far below Station B's 20/min
	cfg.StationBRetry = 1
	cfg.HorizonMinutes = 60

	records, err := Run(cfg)
	require.NoError(t, err)

	reached := -1
	for i, r := range records {
		if r.Buffer2Len == cfg.Buffer2Capacity {
			reached = i
			break
		}
	}
	require.NotEqual(t, -1, reached, "buffer 2 never reached capacity")
	// After saturating, the single slow worker frees at most one slot every
	// two minutes and Station B refills it within its one-minute retry.
	for _, r := range records[reached:] {
		assert.GreaterOrEqual(t, r.Buffer2Len, cfg.Buffer2Capacity-1)
	}
}

func TestLine_Conservation(t *testing.T) {
	cfg := DefaultConfig()
	cfg.HorizonMinutes = 45

	line, err := NewLine(cfg)
	require.NoError(t, err)
	_, err = line.Run()
	require.NoError(t, err)

	// every unit pushed was either pulled or is still buffered
	assert.Equal(t, line.buffer1.Puts(), line.buffer1.Gets()+uint64(line.buffer1.Len()))
	assert.Equal(t, line.buffer2.Puts(), line.buffer2.Gets()+uint64(line.buffer2.Len()))
	assert.Equal(t, line.intake.Puts(), line.intake.Gets()+uint64(line.intake.Len()))
	// stations only push what they pulled; workers only finish what they pulled
	assert.LessOrEqual(t, line.buffer1.Puts(), line.intake.Gets())
	assert.LessOrEqual(t, line.buffer2.Puts(), line.buffer1.Gets())
	assert.LessOrEqual(t, uint64(line.completed.Value()), line.buffer2.Gets())
}
