package controller

import (
	"github.com/Freeeeeet/eduschedule/internal/service"
	"github.com/Freeeeeet/eduschedule/internal/session"
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

// Controller связывает HTTP-интерфейс браузерного приложения с сервисами
type Controller struct {
	userService     *service.UserService
	bookingService  *service.BookingService
	teacherService  *service.TeacherService
	scheduleService *service.ScheduleService
	sessions        *session.Manager
	logger          *zap.Logger
}

func NewController(
	userService *service.UserService,
	bookingService *service.BookingService,
	teacherService *service.TeacherService,
	scheduleService *service.ScheduleService,
	sessions *session.Manager,
	logger *zap.Logger,
) *Controller {
	return &Controller{
		userService:     userService,
		bookingService:  bookingService,
		teacherService:  teacherService,
		scheduleService: scheduleService,
		sessions:        sessions,
		logger:          logger,
	}
}

// RegisterRoutes регистрирует все маршруты API
func (c *Controller) RegisterRoutes(e *echo.Echo) {
	api := e.Group("/api")

	api.POST("/login", c.handleLogin)

	// Маршруты, требующие активной сессии
	authed := api.Group("", c.sessionMiddleware)
	authed.POST("/logout", c.handleLogout)
	authed.GET("/notifications", c.handleNotifications)
	authed.GET("/teachers", c.handleTeachers)
	authed.GET("/appointments", c.handleAppointments)

	// Запись на занятие — только для студентов
	booking := authed.Group("/booking", c.requireStudent)
	booking.GET("", c.handleBookingState)
	booking.GET("/slots", c.handleBookingSlots)
	booking.POST("/teacher", c.handleSelectTeacher)
	booking.POST("/time", c.handleSelectTime)
	booking.POST("/back", c.handleBookingBack)
	booking.POST("/cancel", c.handleBookingCancel)
	booking.POST("/confirm", c.handleBookingConfirm)

	// Панель и редактор доступности — только для преподавателей
	authed.GET("/dashboard", c.handleDashboard, c.requireTeacher)

	sched := authed.Group("/schedule", c.requireTeacher)
	sched.GET("", c.handleScheduleState)
	sched.POST("/mode", c.handleScheduleMode)
	sched.POST("/day", c.handleToggleDay)
	sched.POST("/slot", c.handleToggleSlot)
	sched.POST("/save", c.handleScheduleSave)
	sched.POST("/clear", c.handleScheduleClear)
}
