package dto

import "github.com/marlon/enrollhub/internal/app/models"

// StudentRequest carries the field set for directly creating an enrollee
// (students who never went through the admission workflow). A blank
// student_no is allocated from the year-scoped counter.
type StudentRequest struct {
	StudentNo             string                `json:"student_no"`
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
	Section               string                `json:"section"`
	FamilyMembers         []models.FamilyMember `json:"family_members"`
}

// ToModel converts the request into a Student model.
func (r *StudentRequest) ToModel() *models.Student {
	return &models.Student{
		StudentNo:             r.StudentNo,
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
		Section:               r.Section,
		FamilyMembers:         models.FilterFamilyMembers(r.FamilyMembers),
	}
}
