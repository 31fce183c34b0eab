package service

import (
	"strings"

	"contest-backend/internal/database/models"
	apperrors "contest-backend/internal/errors"
)

// MaxTeamMembers is the roster cap, excluding the owning account
const MaxTeamMembers = 3

// TeamMemberInput is one submitted roster entry
type TeamMemberInput struct {
	Name       string `json:"name"`
	ExternalID string `json:"external_id"`
}

// ValidateRoster checks a submitted member list against the roster rules and returns
// the normalized (trimmed) entries ready for a replacement write. Rules run in a fixed
// order and the first failure wins: size cap, self-reference, duplicates, blank fields.
// Pure; no side effects.
func ValidateRoster(ownerExternalID string, entries []TeamMemberInput) ([]models.TeamMember, error) {
	if len(entries) > MaxTeamMembers {
		return nil, apperrors.ErrTooManyMembers
	}

	owner := strings.TrimSpace(ownerExternalID)
	trimmed := make([]TeamMemberInput, len(entries))
	for i, entry := range entries {
		trimmed[i] = TeamMemberInput{
			Name:       strings.TrimSpace(entry.Name),
			ExternalID: strings.TrimSpace(entry.ExternalID),
		}
	}

	for _, entry := range trimmed {
		if entry.ExternalID == owner {
			return nil, apperrors.ErrSelfAsMember
		}
	}

	seen := make(map[string]bool, len(trimmed))
	for _, entry := range trimmed {
		if seen[entry.ExternalID] {
			return nil, apperrors.ErrDuplicateMember
		}
		seen[entry.ExternalID] = true
	}

	for i, entry := range trimmed {
		if entry.Name == "" || entry.ExternalID == "" {
			// 1-based index, the position shown to the participant
			return nil, apperrors.NewValidationErrorf("team member %d: name and external id are required", i+1)
		}
	}

	members := make([]models.TeamMember, len(trimmed))
	for i, entry := range trimmed {
		members[i] = models.TeamMember{
			Name:       entry.Name,
			ExternalID: entry.ExternalID,
		}
	}
	return members, nil
}
