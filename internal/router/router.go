package router

import (
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/campushire/driveport-backend/internal/config"
	"github.com/campushire/driveport-backend/internal/handler"
	"github.com/campushire/driveport-backend/internal/middleware"
	"github.com/campushire/driveport-backend/internal/response"
	"github.com/campushire/driveport-backend/internal/service"
)

// Handlers groups all handler instances for route setup.
type Handlers struct {
	Auth         *handler.AuthHandler
	Drive        *handler.DriveHandler
	Question     *handler.QuestionHandler
	Student      *handler.StudentHandler
	Email        *handler.EmailHandler
	Reference    *handler.ReferenceHandler
	AdminCompany *handler.AdminCompanyHandler
	AdminDrive   *handler.AdminDriveHandler
	Dashboard    *handler.DashboardHandler
	Media        *handler.MediaHandler
	System       *handler.SystemHandler
	WS           *handler.WSHandler
}

// SetupRouter configures all Gin route groups with appropriate middlewares.
func SetupRouter(
	authService *service.AuthService,
	handlers *Handlers,
	cfg *config.Config,
) *gin.Engine {
	gin.SetMode(cfg.GinMode)
	router := gin.Default()

	// ─── CORS ──────────────────────────────────────────────────────────
	// If AllowedOrigins is set in config, restrict to that list;
	// otherwise allow all (*) so dev works without extra config.
	corsConfig := cors.DefaultConfig()
	if len(cfg.AllowedOrigins) > 0 {
		corsConfig.AllowOrigins = cfg.AllowedOrigins
	} else {
		corsConfig.AllowAllOrigins = true
	}
	corsConfig.AllowMethods = []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"}
	corsConfig.AllowHeaders = []string{"Origin", "Content-Type", "Authorization", "X-Request-ID"}
	corsConfig.ExposeHeaders = []string{"X-Request-ID"}
	corsConfig.MaxAge = 12 * time.Hour
	router.Use(cors.New(corsConfig))

	// Apply request ID middleware globally so every response includes metadata.
	router.Use(response.RequestIDMiddleware())

	// Apply brotli middleware globally.
	router.Use(middleware.Brotli())

	// Serve uploaded logos statically with aggressive caching (1 year).
	uploadsGroup := router.Group("/uploads")
	uploadsGroup.Use(middleware.CacheControl(31536000))
	{
		uploadsGroup.Static("/", cfg.UploadDir)
	}

	// Health check.
	router.GET("/health", func(c *gin.Context) {
		response.Success(c, http.StatusOK, gin.H{"status": "ok"})
	})

	// Rate limiter for auth routes (30 requests per minute per IP).
	authLimiter := middleware.NewRateLimiter(30, time.Minute)

	// ─── 1. Auth Group (Public, Rate Limited) ──────────────────────────
	auth := router.Group("/api/auth")
	auth.Use(authLimiter.Middleware())
	{
		auth.POST("/company/register", handlers.Auth.CompanyRegister)
		auth.POST("/company/login", handlers.Auth.CompanyLogin)
		auth.POST("/admin/login", handlers.Auth.AdminLogin)

		// Authenticated profile routes
		auth.GET("/company/me", middleware.RequireCompanyJWT(authService), handlers.Auth.GetCompanyProfile)
		auth.GET("/admin/me", middleware.RequireAdminJWT(authService), handlers.Auth.GetAdminProfile)
	}

	// ─── 2. Company Group (Company JWT) ────────────────────────────────
	companyAPI := router.Group("/api/company")
	companyAPI.Use(middleware.RequireCompanyJWT(authService))
	{
		// Drive lifecycle
		companyAPI.GET("/drives", handlers.Drive.ListDrives)
		companyAPI.POST("/drives", handlers.Drive.CreateDrive)
		companyAPI.GET("/drives/:drive_id", handlers.Drive.GetDrive)
		companyAPI.PUT("/drives/:drive_id", handlers.Drive.UpdateDrive)
		companyAPI.DELETE("/drives/:drive_id", handlers.Drive.DeleteDrive)
		companyAPI.PUT("/drives/:drive_id/submit", handlers.Drive.SubmitDrive)
		companyAPI.POST("/drives/:drive_id/duplicate", handlers.Drive.DuplicateDrive)

		// Question bank
		companyAPI.GET("/drives/:drive_id/questions", handlers.Question.ListQuestions)
		companyAPI.POST("/drives/:drive_id/questions", handlers.Question.UploadQuestions)
		companyAPI.POST("/drives/:drive_id/questions/csv-upload", handlers.Question.UploadQuestionsCSV)

		// Student roster
		companyAPI.GET("/drives/:drive_id/students", handlers.Student.ListStudents)
		companyAPI.POST("/drives/:drive_id/students", handlers.Student.UploadStudents)
		companyAPI.POST("/drives/:drive_id/students/csv-upload", handlers.Student.UploadStudentsCSV)
		companyAPI.DELETE("/drives/:drive_id/students/:student_id", handlers.Student.DeleteStudent)

		// Invitation emails
		companyAPI.GET("/email-template", handlers.Email.GetTemplate)
		companyAPI.PUT("/email-template", handlers.Email.UpdateTemplate)
		companyAPI.POST("/email-template/preview", handlers.Email.PreviewTemplate)
		companyAPI.POST("/send-emails", handlers.Email.SendEmails)
		companyAPI.GET("/drives/:drive_id/email-status", handlers.Email.EmailStatus)

		// Reference data for the drive form (cached, safe to revalidate hourly)
		companyAPI.GET("/colleges", middleware.CacheControl(3600), handlers.Reference.ListApprovedColleges)
		companyAPI.GET("/student-groups", middleware.CacheControl(3600), handlers.Reference.ListApprovedStudentGroups)

		// Profile
		companyAPI.POST("/logo", handlers.Media.UploadLogo)
	}

	// ─── 3. WebSocket Group (Company WS Auth) ──────────────────────────
	ws := router.Group("/ws")
	ws.Use(middleware.RequireCompanyWSAuth(authService))
	{
		ws.GET("/company/drives/:drive_id/email-progress", handlers.WS.EmailProgressStream)
	}

	// ─── 4. Admin Group (Admin JWT) ────────────────────────────────────
	adminAPI := router.Group("/api/admin")
	adminAPI.Use(middleware.RequireAdminJWT(authService))
	{
		// Company review
		adminAPI.GET("/companies", handlers.AdminCompany.ListCompanies)
		adminAPI.PUT("/companies/:company_id/approve", handlers.AdminCompany.ReviewCompany)
		adminAPI.DELETE("/companies/:company_id", handlers.AdminCompany.DeleteCompany)

		// Drive review
		adminAPI.GET("/drives", handlers.AdminDrive.ListDrives)
		adminAPI.GET("/drives/:drive_id", handlers.AdminDrive.GetDrive)
		adminAPI.PUT("/drives/:drive_id/approve", handlers.AdminDrive.ReviewDrive)

		// College reference data
		adminAPI.GET("/colleges", handlers.Reference.ListColleges)
		adminAPI.GET("/colleges/pending", handlers.Reference.ListPendingColleges)
		adminAPI.POST("/colleges", handlers.Reference.CreateCollege)
		adminAPI.PUT("/colleges/:college_id", handlers.Reference.UpdateCollege)
		adminAPI.DELETE("/colleges/:college_id", handlers.Reference.DeleteCollege)
		adminAPI.POST("/colleges/approve-custom", handlers.Reference.ApproveCustomCollege)

		// Student group reference data
		adminAPI.GET("/student-groups", handlers.Reference.ListStudentGroups)
		adminAPI.GET("/student-groups/pending", handlers.Reference.ListPendingStudentGroups)
		adminAPI.POST("/student-groups", handlers.Reference.CreateStudentGroup)
		adminAPI.PUT("/student-groups/:group_id", handlers.Reference.UpdateStudentGroup)
		adminAPI.DELETE("/student-groups/:group_id", handlers.Reference.DeleteStudentGroup)
		adminAPI.POST("/student-groups/approve-custom", handlers.Reference.ApproveCustomStudentGroup)

		// Dashboard
		adminAPI.GET("/dashboard", handlers.Dashboard.GetDashboardData)

		// System Monitoring
		adminAPI.GET("/system/metrics", handlers.System.SystemMetricsSSE)
	}

	return router
}
