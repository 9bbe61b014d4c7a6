package routes

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"github.com/marlon/enrollhub/internal/app/controllers"
)

// Controllers groups the handlers the router wires up
type Controllers struct {
	Auth      *controllers.AuthController
	Admission *controllers.AdmissionController
	Student   *controllers.StudentController
	Record    *controllers.RecordController
	Section   *controllers.SectionController
}

// SetupRoutes registers all API routes on the engine
func SetupRoutes(router *gin.Engine, c *Controllers) {
	api := router.Group("/api")
	{
		api.POST("/login", c.Auth.Login)

		admissions := api.Group("/admissions")
		{
			admissions.POST("", c.Admission.CreateAdmission)
			admissions.GET("", c.Admission.GetAllAdmissions)
			admissions.GET("/:id", c.Admission.GetAdmissionByID)
			admissions.PUT("/:id", c.Admission.UpdateAdmission)
			admissions.DELETE("/:id", c.Admission.DeleteAdmission)
			admissions.PATCH("/:id/status", c.Admission.UpdateAdmissionStatus)
		}

		students := api.Group("/students")
		{
			students.POST("", c.Student.CreateStudent)
			students.GET("", c.Student.GetAllStudents)
			students.GET("/search", c.Student.SearchStudents)
			students.GET("/:id", c.Student.GetStudentByID)
		}

		archive := api.Group("/archive")
		{
			archive.GET("", c.Record.GetAllArchived)
			archive.GET("/:id", c.Record.GetArchivedByID)
		}

		api.GET("/records/:status/:id", c.Record.GetRecord)

		sections := api.Group("/sections")
		{
			sections.POST("", c.Section.CreateSection)
			sections.GET("", c.Section.GetAllSections)
			sections.GET("/:id", c.Section.GetSectionByID)
			sections.PUT("/:id", c.Section.UpdateSection)
			// The router allows one wildcard name per segment, so the
			// succession routes reuse :id for the grade level.
			sections.GET("/:id/:name/succession", c.Section.GetSuccession)
			sections.PUT("/:id/:name/succession", c.Section.SetSuccession)
			sections.DELETE("/:id/:name/succession", c.Section.ClearSuccession)
		}

		api.GET("/health", healthCheck)
	}

	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
}

// healthCheck reports process liveness
// @Summary Health check
// @Tags health
// @Produce json
// @Success 200 {object} map[string]interface{} "Service is up"
// @Router /health [get]
func healthCheck(ctx *gin.Context) {
	ctx.JSON(http.StatusOK, gin.H{
		"status":    "ok",
		"timestamp": time.Now().UTC(),
	})
}
