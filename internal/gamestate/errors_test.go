package gamestate

import "testing"

func TestRetryable(t *testing.T) {
	cases := []struct {
		msg  string
		want bool
	}{
		{"network timeout", true},
		{"request timed out", true},
		{"connection refused", true},
		{"server error: 502 Bad Gateway", true},
		{"503 Service Unavailable", true},
		{"rate limit exceeded", true},
		{"429 Too Many Requests", true},
		{"no photos found", true},
		{"no results for category", true},
		{"Network Timeout", true}, // case-insensitive
		{"invalid guess: year 1850 must be between 1900 and 2026", false},
		{"photo p3: missing license", false},
		{"score calculation failed: upstream down", false},
		{"", false},
	}
	for _, tc := range cases {
		if got := Retryable(tc.msg); got != tc.want {
			t.Errorf("Retryable(%q) = %v, want %v", tc.msg, got, tc.want)
		}
	}
}

func TestIsScoringFailure(t *testing.T) {
	if !IsScoringFailure(scoringFailurePrefix + ": scorer returned garbage") {
		t.Error("prefixed message not classified as scorer failure")
	}
	if IsScoringFailure("invalid guess: no location selected on the map") {
		t.Error("validation message classified as scorer failure")
	}
	if IsScoringFailure(ErrNoCurrentPhoto) {
		t.Error("missing-photo message classified as scorer failure")
	}
}
