// Package promotions holds the promotion campaign projections consumed by
// other read models, and records promotion actions through the shared action
// bus.
package promotions

import "fmt"

// Outcome is the resolution of a promotion campaign. A pending campaign has
// no outcome; projections model that as a nil *Outcome, never a zero value.
type Outcome string

const (
	OutcomeAccepted Outcome = "accepted"
	OutcomeRejected Outcome = "rejected"
)

// outcomeOrdinals maps the storage layer's numeric encoding of an outcome.
// Some rows carry the outcome as this ordinal, others as its string name;
// projection normalizes both.
var outcomeOrdinals = map[int64]Outcome{
	0: OutcomeAccepted,
	1: OutcomeRejected,
}

// ParseOutcome validates an outcome's string form.
func ParseOutcome(s string) (Outcome, error) {
	switch Outcome(s) {
	case OutcomeAccepted, OutcomeRejected:
		return Outcome(s), nil
	}
	return "", fmt.Errorf("unknown campaign outcome: %q", s)
}

// OutcomeFromOrdinal validates an outcome's numeric storage form.
func OutcomeFromOrdinal(n int64) (Outcome, error) {
	o, ok := outcomeOrdinals[n]
	if !ok {
		return "", fmt.Errorf("unknown campaign outcome ordinal: %d", n)
	}
	return o, nil
}

// UserBrief is a minimal view of a guild member, for use inside other
// projections. Many briefs may reference the same member.
type UserBrief struct {
	ID       uint64
	Username string
	Nickname string
}

// RoleBrief is a minimal view of a guild role, for use inside other
// projections.
type RoleBrief struct {
	ID       uint64
	Name     string
	Position int
}

// CampaignBrief is a partial read-only view of a promotion campaign, for use
// within the context of another projected model. Outcome is nil exactly when
// the campaign is still pending.
type CampaignBrief struct {
	ID         int64
	Subject    UserBrief
	TargetRole RoleBrief
	Outcome    *Outcome
}
