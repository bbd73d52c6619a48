package endpoint

import (
	"github.com/gin-gonic/gin"

	"github.com/arogyaventures/opd-server/middleware"
)

// RegisterRoutes mounts every route group on the engine. The create endpoints
// sit behind a per-IP rate limiter that degrades to a no-op without redis.
func RegisterRoutes(router gin.IRouter) {
	createLimiter := middleware.RateLimiter(middleware.RateLimitConfig{})

	router.GET("/health", Health)

	doctor := router.Group("/api/doctor")
	{
		doctor.GET("", ListDoctors)
		doctor.GET("/:id", GetDoctorInfo)
		doctor.POST("/visit", createLimiter, CreateVisit)
		doctor.PATCH("/visit/:id", UpdateVisit)
	}

	patient := router.Group("/api/patient")
	{
		patient.GET("", ListPatients)
		patient.GET("/:id", GetPatientInfo)
	}

	reception := router.Group("/api/reception")
	{
		reception.POST("/patient", createLimiter, CreatePatient)
		reception.POST("/appointment", createLimiter, CreateAppointment)
		reception.POST("/billing", createLimiter, CreateBill)
		reception.PATCH("/billing/:id", UpdateBill)
	}

	admin := router.Group("/api/admin")
	{
		admin.GET("/departments", ListDepartments)
		admin.GET("/shifts", ListShifts)
		admin.GET("/doctors", ListDoctorsWithDept)
		admin.GET("/staff", ListStaff)
		admin.GET("/rooms", ListRooms)

		admin.POST("/department", CreateDepartment)
		admin.POST("/shift", CreateShift)
		admin.POST("/doctor", CreateDoctor)
		admin.POST("/staff", CreateStaff)
		admin.POST("/room", CreateRoom)

		admin.PATCH("/department/:id", UpdateDepartment)
		admin.PATCH("/shift/:id", UpdateShift)
		admin.PATCH("/doctor/:id", UpdateDoctor)
		admin.PATCH("/staff/:id", UpdateStaff)
		admin.PATCH("/room/:id", UpdateRoom)
	}

	appointment := router.Group("/api/appointment")
	{
		appointment.GET("/:id", GetAppointmentInfo)
		appointment.PATCH("/:id", UpdateAppointment)
	}

	pathology := router.Group("/api/pathology")
	{
		pathology.GET("/visit/:id", GetVisitInfo)
		pathology.POST("/visit/:id/investigation", createLimiter, CreateInvestigation)
		pathology.PATCH("/investigation/:id", UpdateInvestigation)
	}
}
