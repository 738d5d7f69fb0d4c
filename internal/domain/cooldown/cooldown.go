// Package cooldown holds the pure admission arithmetic of the cooldown
// ledger. Durable state lives in the repository; eligibility is a
// function of an entry, the asset's window, and the current time.
package cooldown

import "time"

// Entry is the durable (wallet, asset) → last successful claim record.
type Entry struct {
	Wallet      string
	Asset       string
	LastClaimAt time.Time
}

// Eligible reports whether a wallet may claim again. A nil entry means
// no prior claim. The comparison is strict: exactly at the window
// boundary the wallet is still cooling down.
func Eligible(e *Entry, window time.Duration, now time.Time) bool {
	if e == nil {
		return true
	}
	return now.Sub(e.LastClaimAt) > window
}

// Remaining returns how long until the wallet is eligible again, zero
// when it already is.
func Remaining(e *Entry, window time.Duration, now time.Time) time.Duration {
	if e == nil {
		return 0
	}
	rest := window - now.Sub(e.LastClaimAt)
	if rest < 0 {
		return 0
	}
	return rest
}

// NextEligibleAt returns the first instant a fresh claim at `at` allows
// another claim (the instant itself is still within the window).
func NextEligibleAt(at time.Time, window time.Duration) time.Time {
	return at.Add(window)
}
