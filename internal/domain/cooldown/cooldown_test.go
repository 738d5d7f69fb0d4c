//go:build unit

package cooldown_test

import (
	"testing"
	"time"

	"shiba-faucet/internal/domain/cooldown"

	"github.com/stretchr/testify/assert"
)

func TestEligible(t *testing.T) {
	t0 := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)
	window := 8 * time.Hour
	entry := &cooldown.Entry{Wallet: "0xabc", Asset: "BONE", LastClaimAt: t0}

	cases := []struct {
		name string
		now  time.Time
		want bool
	}{
		{name: "no prior entry", now: t0, want: true},
		{name: "immediately after claim", now: t0.Add(time.Second), want: false},
		{name: "one hour in", now: t0.Add(time.Hour), want: false},
		{name: "exactly at the boundary", now: t0.Add(window), want: false},
		{name: "one second past the boundary", now: t0.Add(window + time.Second), want: true},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			e := entry
			if c.name == "no prior entry" {
				e = nil
			}
			assert.Equal(t, c.want, cooldown.Eligible(e, window, c.now))
		})
	}
}

func TestRemaining(t *testing.T) {
	t0 := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)
	window := 8 * time.Hour
	entry := &cooldown.Entry{Wallet: "0xabc", Asset: "BONE", LastClaimAt: t0}

	assert.Equal(t, time.Duration(0), cooldown.Remaining(nil, window, t0))
	assert.Equal(t, window, cooldown.Remaining(entry, window, t0))
	assert.Equal(t, 7*time.Hour, cooldown.Remaining(entry, window, t0.Add(time.Hour)))
	assert.Equal(t, time.Duration(0), cooldown.Remaining(entry, window, t0.Add(window)))
	assert.Equal(t, time.Duration(0), cooldown.Remaining(entry, window, t0.Add(window+time.Minute)))
}

func TestNextEligibleAt(t *testing.T) {
	t0 := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)
	assert.Equal(t, t0.Add(8*time.Hour), cooldown.NextEligibleAt(t0, 8*time.Hour))
}
