package promotions

import (
	"database/sql"
	"fmt"
)

// CampaignRow is the raw storage form of a campaign projection, fetched
// untransformed. The storage layer represents "no outcome" and "outcome of
// value X" through two physical encodings depending on row vintage: a
// nullable enum name or a nullable ordinal. Normalization happens in memory,
// in Brief, decoupled from any storage-query limitation.
type CampaignRow struct {
	ID int64

	SubjectID       int64
	SubjectUsername string
	SubjectNickname sql.NullString

	TargetRoleID       int64
	TargetRoleName     string
	TargetRolePosition int

	OutcomeName    sql.NullString
	OutcomeOrdinal sql.NullInt64
}

// Brief projects the raw row into a CampaignBrief, normalizing the outcome
// encodings to one optional value. Both encodings absent means the campaign
// is pending and Outcome stays nil.
func (r CampaignRow) Brief() (CampaignBrief, error) {
	brief := CampaignBrief{
		ID: r.ID,
		Subject: UserBrief{
			ID:       uint64(r.SubjectID),
			Username: r.SubjectUsername,
			Nickname: r.SubjectNickname.String,
		},
		TargetRole: RoleBrief{
			ID:       uint64(r.TargetRoleID),
			Name:     r.TargetRoleName,
			Position: r.TargetRolePosition,
		},
	}

	switch {
	case r.OutcomeName.Valid:
		outcome, err := ParseOutcome(r.OutcomeName.String)
		if err != nil {
			return CampaignBrief{}, fmt.Errorf("campaign %d: %w", r.ID, err)
		}
		brief.Outcome = &outcome
	case r.OutcomeOrdinal.Valid:
		outcome, err := OutcomeFromOrdinal(r.OutcomeOrdinal.Int64)
		if err != nil {
			return CampaignBrief{}, fmt.Errorf("campaign %d: %w", r.ID, err)
		}
		brief.Outcome = &outcome
	}
	return brief, nil
}
