package filter

import (
	"testing"
	"time"
)

func TestIsRecent_Boundary(t *testing.T) {
	now := time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)
	window := 2 * time.Hour

	oneHourAgo := now.Add(-1 * time.Hour).Format("2006-01-02 15:04:05")
	if !IsRecent(oneHourAgo, window, now) {
		t.Error("item from 1 hour ago should be recent")
	}

	threeHoursAgo := now.Add(-3 * time.Hour).Format("2006-01-02 15:04:05")
	if IsRecent(threeHoursAgo, window, now) {
		t.Error("item from 3 hours ago should not be recent")
	}
}

func TestIsRecent_DefaultWindowIsTwoHours(t *testing.T) {
	if DefaultRecencyWindow != 2*time.Hour {
		t.Fatalf("default recency window changed: %v", DefaultRecencyWindow)
	}
}

func TestIsRecent_Formats(t *testing.T) {
	now := time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)
	cases := []struct {
		name string
		raw  string
		want bool
	}{
		{"platform created_at", "Tue Mar 10 11:30:00 +0000 2026", true},
		{"plain", "2026-03-10 11:30:00", true},
		{"iso fractional", "2026-03-10T11:30:00.000Z", true},
		{"rfc3339", "2026-03-10T11:30:00Z", true},
		{"old platform created_at", "Mon Mar 09 11:30:00 +0000 2026", false},
		{"empty", "", false},
		{"garbage", "not a timestamp", false},
		{"relative", "2h ago", false},
	}

	for _, tc := range cases {
		if got := IsRecent(tc.raw, 2*time.Hour, now); got != tc.want {
			t.Errorf("%s: IsRecent(%q) = %v, want %v", tc.name, tc.raw, got, tc.want)
		}
	}
}

func TestIsRecent_OffsetDiscarded(t *testing.T) {
	now := time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)

	// Wall clock reads 11:30 with a +0500 offset; the offset is dropped, so
	// this compares as 11:30 and counts as recent.
	if !IsRecent("Tue Mar 10 11:30:00 +0500 2026", 2*time.Hour, now) {
		t.Error("expected offset to be discarded before comparison")
	}
}

func TestMatchesKeyword(t *testing.T) {
	vocab := []string{"DeFi", "NFT", "Layer2"}

	if !MatchesKeyword("Exploring DEFI trends", []string{"DeFi"}) {
		t.Error("expected case-insensitive match")
	}
	if !MatchesKeyword("the DeFiance of it all", vocab) {
		t.Error("expected substring match without word boundaries")
	}
	if MatchesKeyword("", vocab) {
		t.Error("empty text must not match")
	}
	if MatchesKeyword("nothing relevant here", vocab) {
		t.Error("unrelated text must not match")
	}
}
