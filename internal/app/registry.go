package app

import (
	"database/sql"
	"net/http"

	"timetrack/internal/account"
	"timetrack/internal/administrator"
	"timetrack/internal/calendar"
	"timetrack/internal/company"
	"timetrack/internal/department"
	"timetrack/internal/director"
	"timetrack/internal/messaging/kafka"
	"timetrack/internal/middleware"
	"timetrack/internal/project"
	"timetrack/internal/timeentry"
	"timetrack/internal/user"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

func registerModules(
	router *gin.Engine,
	db *sql.DB,
	gormDB *gorm.DB,
	rdb *redis.Client,
) error {
	router.Use(middleware.RequestID(), middleware.ContextLogger(zap.L()))

	// --- Repositories ---
	companyRepo := company.NewRepository(gormDB)
	projectRepo := project.NewRepository(gormDB)
	departmentRepo := department.NewRepository(gormDB)
	userRepo := user.NewRepository(gormDB)
	invitationRepo := administrator.NewRepository(gormDB)
	timeEntryRepo := timeentry.NewRepository(gormDB)
	outboxRepo := kafka.NewOutboxRepository(db)

	// --- Services ---
	companyService := company.NewService(db, companyRepo)
	projectService := project.NewService(db, projectRepo, companyRepo)
	departmentService := department.NewService(db, departmentRepo, companyRepo, projectRepo)
	userService := user.NewService(db, userRepo)
	accountService := account.NewService(db, userRepo, invitationRepo)
	administratorService := administrator.NewService(db, invitationRepo, userRepo, departmentRepo, outboxRepo)
	timeEntryService := timeentry.NewService(db, timeEntryRepo, calendar.BelarusHolidays{})
	directorService := director.NewService(userRepo, timeEntryRepo)

	// --- Handlers ---
	companyHandler := company.NewHandler(companyService)
	projectHandler := project.NewHandler(projectService)
	departmentHandler := department.NewHandler(departmentService)
	userHandler := user.NewHandler(userService)
	accountHandler := account.NewHandler(accountService)
	administratorHandler := administrator.NewHandlerWithRedis(administratorService, rdb)
	timeEntryHandler := timeentry.NewHandler(timeEntryService)
	directorHandler := director.NewHandler(directorService)

	// --- Routes ---
	root := router.Group("")
	{
		account.RegisterRoutes(root, accountHandler)
		company.RegisterRoutes(root, companyHandler)
		project.RegisterRoutes(root, projectHandler)
		department.RegisterRoutes(root, departmentHandler)
		user.RegisterRoutes(root, userHandler)
		administrator.RegisterRoutes(root, administratorHandler, rdb)
		timeentry.RegisterRoutes(root, timeEntryHandler)
		director.RegisterRoutes(root, directorHandler)
	}

	// The landing page dispatches each role to its own area.
	router.GET("/", middleware.Auth(), func(c *gin.Context) {
		c.Redirect(http.StatusFound, middleware.Role(c).LandingPath())
	})

	return nil
}
