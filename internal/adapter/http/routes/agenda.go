package routes

import (
	"agenda_facil/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const (
	PathClients       = "/clients"
	PathProfessionals = "/professionals"
	PathServices      = "/services"
	PathAppointments  = "/appointments"
	PathCalendar      = "/calendar"
	PathDashboard     = "/dashboard"
)

type agendaHandlers struct {
	clients       *handlers.ClientHandler
	professionals *handlers.ProfessionalHandler
	services      *handlers.ServiceHandler
	appointments  *handlers.AppointmentHandler
	calendar      *handlers.CalendarHandler
	dashboard     *handlers.DashboardHandler
}

func addAgendaRoutes(rg *gin.RouterGroup, h agendaHandlers) {
	clients := rg.Group(PathClients)
	{
		clients.GET("", h.clients.ListClients)
		clients.POST("", h.clients.CreateClient)
		clients.GET("/:id", h.clients.GetClient)
		clients.PUT("/:id", h.clients.UpdateClient)
		clients.DELETE("/:id", h.clients.DeleteClient)
	}

	professionals := rg.Group(PathProfessionals)
	{
		professionals.GET("", h.professionals.ListProfessionals)
		professionals.POST("", h.professionals.CreateProfessional)
		professionals.GET("/:id", h.professionals.GetProfessional)
		professionals.PUT("/:id", h.professionals.UpdateProfessional)
		professionals.DELETE("/:id", h.professionals.DeleteProfessional)
	}

	services := rg.Group(PathServices)
	{
		services.GET("", h.services.ListServices)
		services.POST("", h.services.CreateService)
		services.GET("/:id", h.services.GetService)
		services.PUT("/:id", h.services.UpdateService)
		services.DELETE("/:id", h.services.DeleteService)
	}

	appointments := rg.Group(PathAppointments)
	{
		appointments.GET("", h.appointments.ListAppointments)
		appointments.POST("", h.appointments.CreateAppointment)
		appointments.GET("/:id", h.appointments.GetAppointment)
		appointments.PUT("/:id", h.appointments.UpdateAppointment)
		appointments.PATCH("/:id/status", h.appointments.UpdateAppointmentStatus)
		appointments.DELETE("/:id", h.appointments.DeleteAppointment)
	}

	cal := rg.Group(PathCalendar)
	{
		cal.GET("/events", h.calendar.ListEvents)
		cal.GET("/events.ics", h.calendar.ExportICS)
	}

	rg.GET(PathDashboard+"/monthly", h.dashboard.Monthly)
}
