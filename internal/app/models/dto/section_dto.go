package dto

import "github.com/marlon/enrollhub/internal/app/models"

// SectionRequest carries a section upsert with optional bulk roster and
// subject assignment. GradeLevel accepts both "7" and "Grade 7" forms.
type SectionRequest struct {
	GradeLevel string                  `json:"grade_level" binding:"required" example:"Grade 7"`
	Name       string                  `json:"name" binding:"required" example:"Sampaguita"`
	SchoolYear string                  `json:"school_year" example:"2025-2026"`
	Adviser    string                  `json:"adviser" example:"Mrs. Santos"`
	StudentIDs []int64                 `json:"student_ids"`
	Subjects   []models.StudentSubject `json:"subjects"`
}

// SuccessionRequest sets a section's declared successor.
type SuccessionRequest struct {
	NextGradeLevel  string `json:"next_grade_level" binding:"required" example:"Grade 8"`
	NextSectionName string `json:"next_section_name" binding:"required" example:"Rosal"`
}
