package models

import "time"

// Section defines a grade-level cohort, based on the 'sections' table.
// A student's section field references a section by name only; it is not an
// owning relationship.
type Section struct {
	ID         int64  `json:"id" db:"id" example:"1"`
	GradeLevel int    `json:"grade_level" db:"grade_level" example:"7"`
	Name       string `json:"name" db:"name" example:"Sampaguita"`
	SchoolYear string `json:"school_year" db:"school_year" example:"2025-2026"`
	Adviser    string `json:"adviser" db:"adviser" example:"Mrs. Santos"`

	// Succession metadata for end-of-year promotion planning. Declarative
	// only; no automatic promotion acts on it.
	NextGradeLevel  *int    `json:"next_grade_level,omitempty" db:"next_grade_level" example:"8"`
	NextSectionName *string `json:"next_section_name,omitempty" db:"next_section_name" example:"Rosal"`

	CreatedAt time.Time `json:"created_at" db:"created_at"`
}

// Succession is the declared next-grade/next-section pointer of a section.
type Succession struct {
	NextGradeLevel  int    `json:"next_grade_level" example:"8"`
	NextSectionName string `json:"next_section_name" example:"Rosal"`
}
