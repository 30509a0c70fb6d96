package version

import "testing"

func TestString(t *testing.T) {
	origV, origSHA, origTime := Version, GitSHA, BuildTime
	defer func() { Version, GitSHA, BuildTime = origV, origSHA, origTime }()

	Version, GitSHA, BuildTime = "0.3.0", "abc1234", "2026-10-19T12:00:00Z"
	want := "beacon-scan 0.3.0 (commit abc1234, built 2026-10-19T12:00:00Z)"
	if got := String(); got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}
}
