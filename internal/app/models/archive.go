package models

import "time"

// ArchivedApplication defines a rejected application, based on the
// 'archived_applications' table. The table is append-only; rows are created
// only by the reject path of the transition workflow.
type ArchivedApplication struct {
	ID                    int64     `json:"id" db:"id" example:"1"`
	FirstName             string    `json:"first_name" db:"first_name"`
	MiddleName            string    `json:"middle_name" db:"middle_name"`
	LastName              string    `json:"last_name" db:"last_name"`
	ExtName               string    `json:"ext_name" db:"ext_name"`
	Citizenship           string    `json:"citizenship" db:"citizenship"`
	Religion              string    `json:"religion" db:"religion"`
	Gender                string    `json:"gender" db:"gender"`
	Age                   int       `json:"age" db:"age"`
	Email                 string    `json:"email" db:"email"`
	Phone                 string    `json:"phone" db:"phone"`
	Street                string    `json:"street" db:"street"`
	Barangay              string    `json:"barangay" db:"barangay"`
	City                  string    `json:"city" db:"city"`
	Province              string    `json:"province" db:"province"`
	Program               string    `json:"program" db:"program"`
	YearLevel             string    `json:"year_level" db:"year_level"`
	CurriculumCode        string    `json:"curriculum_code" db:"curriculum_code"`
	LRN                   string    `json:"lrn" db:"lrn"`
	DateGraduated         string    `json:"date_graduated" db:"date_graduated"`
	PreviousSchool        string    `json:"previous_school" db:"previous_school"`
	PreviousSchoolAddress string    `json:"previous_school_address" db:"previous_school_address"`
	Achievement           string    `json:"achievement" db:"achievement"`
	AdmissionDate         string    `json:"admission_date" db:"admission_date"`
	SchoolYear            string    `json:"school_year" db:"school_year"`
	Period                string    `json:"period" db:"period"`
	RejectionDate         string    `json:"rejection_date" db:"rejection_date" example:"2025-06-02"`
	RejectionReason       string    `json:"rejection_reason" db:"rejection_reason" example:"Application rejected by admin"`
	FamilyMembersRaw      string    `json:"-" db:"family_members"`
	CreatedAt             time.Time `json:"created_at" db:"created_at"`

	FamilyMembers []FamilyMember `json:"family_members"`
}
