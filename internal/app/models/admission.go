package models

import "time"

// Admission defines an application awaiting a decision, based on the
// 'admissions' table. Rows exist only while the application is undecided;
// the transition workflow relocates them to students or the archive.
type Admission struct {
	ID                    int64     `json:"id" db:"id" example:"1"`
	FirstName             string    `json:"first_name" db:"first_name" example:"Juan"`
	MiddleName            string    `json:"middle_name" db:"middle_name" example:"Santos"`
	LastName              string    `json:"last_name" db:"last_name" example:"Dela Cruz"`
	ExtName               string    `json:"ext_name" db:"ext_name" example:"Jr."`
	Citizenship           string    `json:"citizenship" db:"citizenship" example:"Filipino"`
	Religion              string    `json:"religion" db:"religion" example:"Catholic"`
	Gender                string    `json:"gender" db:"gender" example:"Male"`
	Age                   int       `json:"age" db:"age" example:"12"`
	Email                 string    `json:"email" db:"email" example:"juan@example.com"`
	Phone                 string    `json:"phone" db:"phone" example:"09171234567"`
	Street                string    `json:"street" db:"street"`
	Barangay              string    `json:"barangay" db:"barangay"`
	City                  string    `json:"city" db:"city"`
	Province              string    `json:"province" db:"province"`
	Program               string    `json:"program" db:"program" example:"Junior High School"`
	YearLevel             string    `json:"year_level" db:"year_level" example:"Grade 7"`
	CurriculumCode        string    `json:"curriculum_code" db:"curriculum_code"`
	LRN                   string    `json:"lrn" db:"lrn" example:"136428110012"`
	DateGraduated         string    `json:"date_graduated" db:"date_graduated"`
	PreviousSchool        string    `json:"previous_school" db:"previous_school"`
	PreviousSchoolAddress string    `json:"previous_school_address" db:"previous_school_address"`
	Achievement           string    `json:"achievement" db:"achievement"`
	AdmissionDate         string    `json:"admission_date" db:"admission_date" example:"2025-06-02"`
	SchoolYear            string    `json:"school_year" db:"school_year" example:"2025-2026"`
	Period                string    `json:"period" db:"period" example:"1st Semester"`
	Status                Status    `json:"status" db:"status" example:"pending"`
	FamilyMembersRaw      string    `json:"-" db:"family_members"`
	CreatedAt             time.Time `json:"created_at" db:"created_at"`

	// FamilyMembers is decoded from FamilyMembersRaw when the record is read.
	FamilyMembers []FamilyMember `json:"family_members"`
}
