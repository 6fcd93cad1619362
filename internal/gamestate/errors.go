package gamestate

import "strings"

// ErrorKind classifies the failure surfaces of the engine. Reducers never
// return errors; every failure path lands in a slice's error field, and the
// kind tells the UI which recovery to offer.
type ErrorKind string

const (
	// ErrorKindValidation is a bad guess: local, recoverable, blocks
	// submission until the player fixes it.
	ErrorKindValidation ErrorKind = "validation"
	// ErrorKindFetch is a photo-loading failure: usually retryable.
	ErrorKindFetch ErrorKind = "fetch"
	// ErrorKindScoring is an external scorer failure: the UI should offer a
	// new game rather than "fix your guess".
	ErrorKindScoring ErrorKind = "scoring"
	// ErrorKindLifecycle puts the whole game into the recoverable ERROR
	// state; resetGame or clearGameError leads back to NOT_STARTED.
	ErrorKindLifecycle ErrorKind = "lifecycle"
)

// scoringFailurePrefix distinguishes scorer breakage from guess validation
// in the shared scoring error field.
const scoringFailurePrefix = "score calculation failed"

// ErrNoCurrentPhoto is the message surfaced when a guess is submitted with
// no resolvable current photo.
const ErrNoCurrentPhoto = "No current photo available"

var retryableCategories = []string{
	"network",
	"timeout",
	"timed out",
	"connection",
	"server error",
	"service unavailable",
	"rate limit",
	"too many requests",
	"no photos found",
	"no results",
}

// Retryable classifies an error message: network, server, rate-limit and
// no-results failures are worth retrying; everything else is not.
func Retryable(msg string) bool {
	msg = strings.ToLower(msg)
	for _, cat := range retryableCategories {
		if strings.Contains(msg, cat) {
			return true
		}
	}
	return false
}

// IsScoringFailure reports whether a scoring-slice error came from the
// external scorer rather than from guess validation.
func IsScoringFailure(msg string) bool {
	return strings.HasPrefix(msg, scoringFailurePrefix)
}
