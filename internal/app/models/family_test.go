package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFilterFamilyMembers(t *testing.T) {
	members := []FamilyMember{
		{Relation: "Mother", Name: "Maria"},
		{Relation: "", Name: "Nameless Relation"},
		{Relation: "Brother", Name: ""},
		{Relation: "Father", Name: "Jose", Occupation: "Farmer"},
	}

	filtered := FilterFamilyMembers(members)
	require.Len(t, filtered, 2)
	assert.Equal(t, "Maria", filtered[0].Name)
	assert.Equal(t, "Jose", filtered[1].Name)
}

func TestEncodeFamilyMembersNilIsEmptyArray(t *testing.T) {
	raw, err := EncodeFamilyMembers(nil)
	require.NoError(t, err)
	assert.Equal(t, "[]", raw)
}

func TestDecodeFamilyMembersRoundTrip(t *testing.T) {
	members := []FamilyMember{
		{Relation: "Mother", Name: "Maria", Contact: "0917-000-0000"},
		{Relation: "Father", Name: "Jose"},
	}

	raw, err := EncodeFamilyMembers(members)
	require.NoError(t, err)

	decoded := DecodeFamilyMembers(raw)
	require.Len(t, decoded, 2)
	assert.Equal(t, members, decoded)
}

func TestDecodeFamilyMembersLenient(t *testing.T) {
	// malformed or empty blobs degrade to an empty list, never an error
	for _, raw := range []string{"", "not json", "{", "null", "{}"} {
		decoded := DecodeFamilyMembers(raw)
		assert.NotNil(t, decoded, "input %q", raw)
		assert.Empty(t, decoded, "input %q", raw)
	}
}

func TestDecodeStudentSubjectsLenient(t *testing.T) {
	subjects := DecodeStudentSubjects(`[{"subject":"Math","teacher":"Mr. Cruz"}]`)
	require.Len(t, subjects, 1)
	assert.Equal(t, "Math", subjects[0].Subject)

	for _, raw := range []string{"", "garbage", "null"} {
		assert.Empty(t, DecodeStudentSubjects(raw), "input %q", raw)
	}
}
