package engine

import (
	"context"
	"crypto/sha1"
	"encoding/hex"
	"time"

	"github.com/ranok/entro/mask"
)

// Terminal states of a cracking search.
type Outcome int

const (
	// OutcomeFound means a single-target search hit its digest; Plaintext
	// carries the recovered candidate.
	OutcomeFound Outcome = iota

	// OutcomeExhausted means the whole candidate space was enumerated.
	OutcomeExhausted

	// OutcomeTimeout means the wall-clock budget ran out mid-search.
	OutcomeTimeout

	// OutcomeInterrupted means the context was cancelled mid-search.
	OutcomeInterrupted
)

func (o Outcome) String() string {
	switch o {
	case OutcomeFound:
		return "found"
	case OutcomeExhausted:
		return "exhausted"
	case OutcomeTimeout:
		return "timeout"
	case OutcomeInterrupted:
		return "interrupted"
	}
	return "unknown"
}

// CrackResult is the terminal state of one search. Matches is the running
// count accumulated up to the moment the search stopped, whatever the
// reason; callers tell "found" apart from "zero matches" by Outcome, never
// by the count.
type CrackResult struct {
	Outcome   Outcome
	Plaintext string
	Matches   int
	Elapsed   time.Duration
}

// Crack enumerates the mask's candidates in order, hashes each with SHA-1
// and compares against the target. Single-digest targets stop the whole
// search at the first hit; set targets count every match over the full
// enumeration. A timeout of zero means unbounded. Cancellation is
// cooperative, checked once per candidate, and lands in a normal
// Interrupted result carrying the partial count rather than an error.
func (e *Engine) Crack(ctx context.Context, m mask.Mask, target Target, timeout time.Duration) (CrackResult, error) {
	lists, err := e.resolveMask(m)
	if err != nil {
		return CrackResult{}, err
	}

	start := time.Now()
	var deadline time.Time
	if timeout > 0 {
		deadline = start.Add(timeout)
	}

	res := CrackResult{Outcome: OutcomeExhausted}

	for candidate := range Product(lists) {
		if ctx.Err() != nil {
			res.Outcome = OutcomeInterrupted
			res.Elapsed = time.Since(start)
			return res, nil
		}
		if !deadline.IsZero() && !time.Now().Before(deadline) {
			res.Outcome = OutcomeTimeout
			res.Elapsed = time.Since(start)
			return res, nil
		}

		sum := sha1.Sum([]byte(candidate))
		digest := hex.EncodeToString(sum[:])

		if target.set != nil {
			if _, ok := target.set[digest]; ok {
				res.Matches++
			}
		} else if digest == target.digest {
			res.Outcome = OutcomeFound
			res.Plaintext = candidate
			res.Matches++
			res.Elapsed = time.Since(start)
			return res, nil
		}
	}

	res.Elapsed = time.Since(start)
	return res, nil
}
