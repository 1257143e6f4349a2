package matcher

import (
	"fmt"
	"time"
)

type after struct{ threshold time.Time }

// After matches timestamps strictly later than threshold.
//
// Timestamps written by the database are compared with a client clock,
// so give some margin to threshold.
func After(threshold time.Time) Matcher[time.Time] { return after{threshold: threshold} }
func (a after) Match(t time.Time) bool            { return t.After(a.threshold) }
func (a after) String() string                    { return "(after " + a.threshold.Format(time.RFC3339Nano) + ")" }
func (a after) Format(s fmt.State, _ rune)        { fmt.Fprint(s, a.String()) }
