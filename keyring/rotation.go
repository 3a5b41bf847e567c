package keyring

import "time"

// ShouldRotate reports whether a key pair created at createdAt has exceeded
// maxAge and should be re-derived. maxAge <= 0 disables rotation.
func ShouldRotate(createdAt time.Time, maxAge time.Duration) bool {
	if maxAge <= 0 {
		return false
	}
	return time.Since(createdAt) >= maxAge
}

// NextVersion increments a key-pair version counter used to select the
// HKDF info string (e.g. fmt.Sprintf("siv-pair-v%d", NextVersion(v))) for
// the next derived pair. SIV's wire format carries no version byte — this
// is bookkeeping for the caller's rotation schedule only.
func NextVersion(current int) int {
	return current + 1
}
