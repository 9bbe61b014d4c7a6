package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/marlon/enrollhub/internal/app/models/dto"
	"github.com/marlon/enrollhub/internal/app/services"
	"github.com/marlon/enrollhub/internal/middleware"
)

// StudentController handles student roster operations
type StudentController struct {
	studentService services.StudentService
}

// NewStudentController creates a new StudentController
func NewStudentController(studentService services.StudentService) *StudentController {
	return &StudentController{studentService: studentService}
}

// CreateStudent handles directly enrolling a student
// @Summary Enroll a student directly
// @Description Creates a student without going through the admission workflow. A blank student_no gets one allocated from the year-scoped counter.
// @Tags students
// @Accept json
// @Produce json
// @Param request body dto.StudentRequest true "Student details"
// @Success 201 {object} dto.APIResponse "Student created"
// @Failure 400 {object} dto.ErrorResponse "Invalid request format"
// @Failure 409 {object} dto.ErrorResponse "Student number already exists"
// @Router /students [post]
func (c *StudentController) CreateStudent(ctx *gin.Context) {
	var req dto.StudentRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(dto.HandleValidationError(err)))
		return
	}

	student := req.ToModel()
	id, err := c.studentService.CreateStudent(ctx, student)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.NewAPIResponse(
		gin.H{"id": id, "student_no": student.StudentNo}, "Student enrolled successfully"))
}

// GetAllStudents handles retrieving the full roster
// @Summary List students
// @Description Retrieves all enrolled students ordered by last name
// @Tags students
// @Produce json
// @Success 200 {object} dto.APIResponse "Students retrieved"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /students [get]
func (c *StudentController) GetAllStudents(ctx *gin.Context) {
	students, err := c.studentService.ListStudents(ctx)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(students, "Students retrieved successfully"))
}

// SearchStudents handles name search over the roster
// @Summary Search students by name
// @Description Case-insensitive substring match over first, middle and last name
// @Tags students
// @Produce json
// @Param q query string true "Search term"
// @Success 200 {object} dto.APIResponse "Matching students retrieved"
// @Failure 400 {object} dto.ErrorResponse "Missing search term"
// @Router /students/search [get]
func (c *StudentController) SearchStudents(ctx *gin.Context) {
	students, err := c.studentService.SearchStudents(ctx, ctx.Query("q"))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(students, "Students retrieved successfully"))
}

// GetStudentByID handles retrieving a single student
// @Summary Get a student
// @Tags students
// @Produce json
// @Param id path int true "Student ID"
// @Success 200 {object} dto.APIResponse "Student retrieved"
// @Failure 400 {object} dto.ErrorResponse "Invalid student ID"
// @Failure 404 {object} dto.ErrorResponse "Student not found"
// @Router /students/{id} [get]
func (c *StudentController) GetStudentByID(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	student, err := c.studentService.GetStudent(ctx, id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(student, "Student retrieved successfully"))
}
