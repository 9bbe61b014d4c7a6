package models

import (
	"encoding/json"
	"time"

	"github.com/marlon/enrollhub/internal/pkg/logger"
)

// Student defines an enrolled learner, based on the 'students' table.
// Presence in this table implies an accepted application; there is no
// status column.
type Student struct {
	ID                    int64     `json:"id" db:"id" example:"1"`
	StudentNo             string    `json:"student_no" db:"student_no" example:"A25-0001"`
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
	Section               string    `json:"section" db:"section"`
	FamilyMembersRaw      string    `json:"-" db:"family_members"`
	StudentSubjectsRaw    string    `json:"-" db:"student_subjects"`
	CreatedAt             time.Time `json:"created_at" db:"created_at"`

	FamilyMembers   []FamilyMember   `json:"family_members"`
	StudentSubjects []StudentSubject `json:"student_subjects"`
}

// StudentSubject is one entry of a student's assigned subject list, stored
// serialized as JSON text in a single column.
type StudentSubject struct {
	Subject string `json:"subject" example:"Mathematics 7"`
	Teacher string `json:"teacher,omitempty" example:"Mr. Reyes"`
}

// EncodeStudentSubjects serializes a subject list for storage. A nil list
// encodes as an empty JSON array.
func EncodeStudentSubjects(subjects []StudentSubject) (string, error) {
	if subjects == nil {
		subjects = []StudentSubject{}
	}
	data, err := json.Marshal(subjects)
	if err != nil {
		return "", err
	}
	return string(data), nil
}

// DecodeStudentSubjects deserializes a stored subject list. Malformed data is
// downgraded to an empty list with a warning rather than an error.
func DecodeStudentSubjects(raw string) []StudentSubject {
	if raw == "" {
		return []StudentSubject{}
	}
	var subjects []StudentSubject
	if err := json.Unmarshal([]byte(raw), &subjects); err != nil {
		logger.Warn().Err(err).Msg("Malformed student subject data, returning empty list")
		return []StudentSubject{}
	}
	if subjects == nil {
		return []StudentSubject{}
	}
	return subjects
}
