package models

import (
	"encoding/json"

	"github.com/marlon/enrollhub/internal/pkg/logger"
)

// FamilyMember is one entry of an admission's family list. The list is stored
// serialized as JSON text in a single column; relation and name gate
// inclusion, the remaining fields are optional.
type FamilyMember struct {
	ID         string `json:"id,omitempty" example:"family-1"`
	Relation   string `json:"relation" example:"Mother"`
	Name       string `json:"name" example:"Maria Dela Cruz"`
	Occupation string `json:"occupation,omitempty"`
	Contact    string `json:"contact,omitempty"`
	Address    string `json:"address,omitempty"`
}

// FilterFamilyMembers drops entries missing a relation or a name, preserving
// the order of the rest. Invalid entries are never stored.
func FilterFamilyMembers(members []FamilyMember) []FamilyMember {
	filtered := make([]FamilyMember, 0, len(members))
	for _, m := range members {
		if m.Relation == "" || m.Name == "" {
			continue
		}
		filtered = append(filtered, m)
	}
	return filtered
}

// EncodeFamilyMembers serializes a family list for storage. A nil list
// encodes as an empty JSON array.
func EncodeFamilyMembers(members []FamilyMember) (string, error) {
	if members == nil {
		members = []FamilyMember{}
	}
	data, err := json.Marshal(members)
	if err != nil {
		return "", err
	}
	return string(data), nil
}

// DecodeFamilyMembers deserializes a stored family list. Malformed data is
// downgraded to an empty list with a warning rather than an error.
func DecodeFamilyMembers(raw string) []FamilyMember {
	if raw == "" {
		return []FamilyMember{}
	}
	var members []FamilyMember
	if err := json.Unmarshal([]byte(raw), &members); err != nil {
		logger.Warn().Err(err).Msg("Malformed family member data, returning empty list")
		return []FamilyMember{}
	}
	if members == nil {
		return []FamilyMember{}
	}
	return members
}
