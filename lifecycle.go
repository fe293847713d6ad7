// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/density

package density

// blockLifecycle decides, each time a signature is about to start, whether the
// caller must first hear about an efficiency check or a block boundary. Encoder
// and decoder run identical instances, so dictionary resets line up without any
// marker in the stream.
type blockLifecycle struct {
	blockSignatures int
	efficiencyCheck int // 0 disables
	resetCycle      int // 0 disables
	lookahead       int

	signatures        int // started in the current block
	countdown         int // block boundaries left before the next reset
	efficiencyChecked bool
}

func newBlockLifecycle(o *Options) blockLifecycle {
	return blockLifecycle{
		blockSignatures: o.BlockSignatures,
		efficiencyCheck: o.EfficiencyCheckSignatures,
		resetCycle:      o.ResetCycle,
		lookahead:       o.OutputLookahead,
	}
}

func (l *blockLifecycle) init() {
	l.signatures = 0
	l.efficiencyChecked = false
	l.countdown = max(l.resetCycle-1, 0)
}

// prepare returns StatusReady once a new signature may start and counts it.
// Checkpoint statuses leave the signature unstarted; the next call resumes.
func (l *blockLifecycle) prepare(outRoom int, k kernel, stats *Stats) Status {
	if outRoom < l.lookahead {
		return StatusStallOnOutput
	}

	switch l.signatures {
	case l.efficiencyCheck:
		if l.efficiencyCheck > 0 && !l.efficiencyChecked {
			l.efficiencyChecked = true
			return StatusEfficiencyCheck
		}

	case l.blockSignatures:
		l.signatures = 0
		l.efficiencyChecked = false
		stats.Blocks++

		if l.resetCycle > 0 {
			if l.countdown > 0 {
				l.countdown--
			} else {
				k.reset()
				l.countdown = l.resetCycle - 1
				stats.Resets++
			}
		}

		return StatusNewBlock
	}

	l.signatures++
	stats.Signatures++

	return StatusReady
}
