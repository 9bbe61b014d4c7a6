package dto

import "github.com/marlon/enrollhub/internal/app/models"

// AdmissionRequest carries the full field set of an application. Used for
// both creation and pre-decision edits; an unspecified status defaults to
// pending.
type AdmissionRequest struct {
	FirstName             string                `json:"first_name" binding:"required"`
	MiddleName            string                `json:"middle_name"`
	LastName              string                `json:"last_name" binding:"required"`
	ExtName               string                `json:"ext_name"`
	Citizenship           string                `json:"citizenship"`
	Religion              string                `json:"religion"`
	Gender                string                `json:"gender"`
	Age                   int                   `json:"age" binding:"omitempty,min=0"`
	Email                 string                `json:"email" binding:"omitempty,email"`
	Phone                 string                `json:"phone"`
	Street                string                `json:"street"`
	Barangay              string                `json:"barangay"`
	City                  string                `json:"city"`
	Province              string                `json:"province"`
	Program               string                `json:"program"`
	YearLevel             string                `json:"year_level"`
	CurriculumCode        string                `json:"curriculum_code"`
	LRN                   string                `json:"lrn"`
	DateGraduated         string                `json:"date_graduated"`
	PreviousSchool        string                `json:"previous_school"`
	PreviousSchoolAddress string                `json:"previous_school_address"`
	Achievement           string                `json:"achievement"`
	AdmissionDate         string                `json:"admission_date"`
	SchoolYear            string                `json:"school_year"`
	Period                string                `json:"period"`
	Status                string                `json:"status"`
	FamilyMembers         []models.FamilyMember `json:"family_members"`
}

// ToModel converts the request into an Admission model. The family list is
// filtered here so entries without a relation or name are never stored.
func (r *AdmissionRequest) ToModel() *models.Admission {
	status := models.StatusPending
	if r.Status != "" {
		if parsed, err := models.ParseStatus(r.Status); err == nil {
			status = parsed
		}
	}

	return &models.Admission{
		FirstName:             r.FirstName,
		MiddleName:            r.MiddleName,
		LastName:              r.LastName,
		ExtName:               r.ExtName,
		Citizenship:           r.Citizenship,
		Religion:              r.Religion,
		Gender:                r.Gender,
		Age:                   r.Age,
		Email:                 r.Email,
		Phone:                 r.Phone,
		Street:                r.Street,
		Barangay:              r.Barangay,
		City:                  r.City,
		Province:              r.Province,
		Program:               r.Program,
		YearLevel:             r.YearLevel,
		CurriculumCode:        r.CurriculumCode,
		LRN:                   r.LRN,
		DateGraduated:         r.DateGraduated,
		PreviousSchool:        r.PreviousSchool,
		PreviousSchoolAddress: r.PreviousSchoolAddress,
		Achievement:           r.Achievement,
		AdmissionDate:         r.AdmissionDate,
		SchoolYear:            r.SchoolYear,
		Period:                r.Period,
		Status:                status,
		FamilyMembers:         models.FilterFamilyMembers(r.FamilyMembers),
	}
}

// UpdateStatusRequest is the body of a status-change request.
type UpdateStatusRequest struct {
	Status string `json:"status" binding:"required" example:"accepted"`
}

// TransitionResult reports the outcome of a status transition. StudentID and
// StudentNo are set on acceptance, ArchiveID on rejection. Identity is never
// carried across the move; callers must use the new ids.
type TransitionResult struct {
	Status    models.Status `json:"status" example:"accepted"`
	StudentID int64         `json:"student_id,omitempty" example:"42"`
	StudentNo string        `json:"student_no,omitempty" example:"A25-0004"`
	ArchiveID int64         `json:"archive_id,omitempty" example:"17"`
}
