package density

import (
	"slices"
	"testing"
)

// countingKernel records resets and does nothing else.
type countingKernel struct {
	chameleonKernel
	resets int
}

func (k *countingKernel) reset() { k.resets++ }

func (k *countingKernel) release() {}

func TestBlockLifecycle_Sequence(t *testing.T) {
	opts := Options{BlockSignatures: 4, EfficiencyCheckSignatures: 2, ResetCycle: 2, OutputLookahead: 1}
	life := newBlockLifecycle(&opts)
	life.init()

	var (
		k     countingKernel
		stats Stats
		got   []Status
	)
	for len(got) < 20 {
		got = append(got, life.prepare(1, &k, &stats))
	}

	R, E, N := StatusReady, StatusEfficiencyCheck, StatusNewBlock
	want := []Status{
		R, R, E, R, R,
		N, R, R, E, R, R,
		N, R, R, E, R, R, // the second boundary resets
		N, R, R,
	}
	if !slices.Equal(got, want) {
		t.Fatalf("statuses:\n got=%v\nwant=%v", got, want)
	}

	if stats.Blocks != 3 || stats.Resets != 1 || k.resets != 1 {
		t.Fatalf("blocks=%d resets=%d kernel resets=%d", stats.Blocks, stats.Resets, k.resets)
	}
	if stats.Signatures != 14 {
		t.Fatalf("signatures=%d, want 14", stats.Signatures)
	}
}

func TestBlockLifecycle_ResetEveryBoundary(t *testing.T) {
	opts := Options{BlockSignatures: 1, ResetCycle: 1, OutputLookahead: 1}
	life := newBlockLifecycle(&opts)
	life.init()

	var (
		k     countingKernel
		stats Stats
	)
	for range 10 {
		life.prepare(1, &k, &stats)
	}

	// R N R N ...: five boundaries, each a reset.
	if stats.Blocks != 5 || k.resets != 5 {
		t.Fatalf("blocks=%d kernel resets=%d", stats.Blocks, k.resets)
	}
}

func TestBlockLifecycle_StallsWithoutLookahead(t *testing.T) {
	opts := Options{BlockSignatures: 2, EfficiencyCheckSignatures: 1, OutputLookahead: 8}
	life := newBlockLifecycle(&opts)
	life.init()

	var (
		k     countingKernel
		stats Stats
	)
	if status := life.prepare(7, &k, &stats); status != StatusStallOnOutput {
		t.Fatalf("prepare with short output = %s", status)
	}
	if stats != (Stats{}) {
		t.Fatalf("stall changed stats: %+v", stats)
	}

	if status := life.prepare(8, &k, &stats); status != StatusReady {
		t.Fatalf("prepare = %s, want %s", status, StatusReady)
	}
	if status := life.prepare(8, &k, &stats); status != StatusEfficiencyCheck {
		t.Fatalf("prepare = %s, want %s", status, StatusEfficiencyCheck)
	}

	// A stall between a checkpoint and the signature does not repeat the checkpoint.
	if status := life.prepare(0, &k, &stats); status != StatusStallOnOutput {
		t.Fatalf("prepare with no output = %s", status)
	}
	if status := life.prepare(8, &k, &stats); status != StatusReady {
		t.Fatalf("prepare = %s, want %s", status, StatusReady)
	}
}
