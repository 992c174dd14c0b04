package routes

import (
	"context"
	"log"
	"os"

	_ "agenda_facil/docs"
	"agenda_facil/internal/adapter/http/handlers"
	"agenda_facil/internal/adapter/http/middleware"
	"agenda_facil/internal/adapter/persistence/repository"
	"agenda_facil/internal/infrastructure/calendar"
	"agenda_facil/internal/infrastructure/security"
	"agenda_facil/internal/usecase"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

var router = gin.Default()

const defaultPort = "8080"

// Run will start the server
func Run() {
	setMiddlewares()

	// Swagger documentation endpoint
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	repos, err := repository.NewRepositoriesFromEnv(context.Background())
	if err != nil {
		log.Fatalf("Failed to configure storage: %v", err)
	}
	defer func() {
		if err := repos.Close(); err != nil {
			log.Printf("[storage] close failed err=%v", err)
		}
	}()

	tokens, err := security.NewJWTIssuerFromEnv()
	if err != nil {
		log.Fatalf("Failed to configure authentication: %v", err)
	}

	getRoutes(router, repos, tokens)

	port := os.Getenv("PORT")
	if port == "" {
		port = defaultPort
	}
	if err := router.Run(":" + port); err != nil {
		log.Fatalf("Failed to startup the application: %v", err.Error())
	}
}

func getRoutes(r *gin.Engine, repos repository.Repositories, tokens *security.JWTIssuer) {
	loc := calendar.LocationFromEnv()
	clock := usecase.SystemClock{}
	log.Printf("[routes] agenda time zone=%s", loc)

	snapshots := usecase.NewRepositorySnapshotProvider(repos.Clients, repos.Professionals, repos.Services, repos.Appointments)

	clientUseCase := usecase.NewClientUseCase(repos.Clients)
	professionalUseCase := usecase.NewProfessionalUseCase(repos.Professionals)
	serviceUseCase := usecase.NewServiceUseCase(repos.Services)
	appointmentUseCase := usecase.NewAppointmentUseCase(repos.Appointments, repos.Clients, repos.Professionals, repos.Services, snapshots)
	calendarUseCase := usecase.NewCalendarUseCase(snapshots, loc)
	dashboardUseCase := usecase.NewDashboardUseCase(snapshots, clock, loc)
	authUseCase := usecase.NewAuthUseCase(repos.Users, security.NewBcryptHasher(0), tokens)

	agendaHandlers := agendaHandlers{
		clients:       handlers.NewClientHandler(clientUseCase),
		professionals: handlers.NewProfessionalHandler(professionalUseCase),
		services:      handlers.NewServiceHandler(serviceUseCase),
		appointments:  handlers.NewAppointmentHandler(appointmentUseCase),
		calendar:      handlers.NewCalendarHandler(calendarUseCase, loc, clock),
		dashboard:     handlers.NewDashboardHandler(dashboardUseCase, loc),
	}
	requireAuth := middleware.RequireAuth(authUseCase)

	// Rotas publicas
	v1 := r.Group("/v1")
	addPingRoutes(v1)
	addAuthRoutes(v1, handlers.NewAuthHandler(authUseCase), requireAuth)

	// Rotas autenticadas
	private := v1.Group("", requireAuth)
	addAgendaRoutes(private, agendaHandlers)
}

func setMiddlewares() {
	router.Use(gin.Logger())
	router.Use(gin.Recovery())
	router.Use(gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		log.Printf("Recovered from panic: %v", recovered)
		c.AbortWithStatus(500)
	}))
}
