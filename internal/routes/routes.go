package routes

import (
	"database/sql"

	"github.com/labstack/echo/v4"

	adminControllers "github.com/klinik-trah/klinik-backend/internal/administrasi/controllers"
	adminServices "github.com/klinik-trah/klinik-backend/internal/administrasi/services"
	"github.com/klinik-trah/klinik-backend/internal/common/middlewares"
	dokterControllers "github.com/klinik-trah/klinik-backend/internal/dokter/controllers"
	dokterServices "github.com/klinik-trah/klinik-backend/internal/dokter/services"
	manajemenControllers "github.com/klinik-trah/klinik-backend/internal/manajemen/controllers"
	manajemenModels "github.com/klinik-trah/klinik-backend/internal/manajemen/models"
	manajemenServices "github.com/klinik-trah/klinik-backend/internal/manajemen/services"
	"github.com/klinik-trah/klinik-backend/ws"
)

// Init menginisialisasi semua routes menggunakan Echo framework.
// Semua endpoint data memakai JWT; hanya /login dan upgrade /ws yang terbuka.
func Init(e *echo.Echo, db *sql.DB, uploadDir, baseURL string) {
	// Inisialisasi service
	pasienService := adminServices.NewPasienService(db)
	pendaftaranService := adminServices.NewPendaftaranService(db)
	sdmService := manajemenServices.NewSDMService(db)
	authService := manajemenServices.NewAuthService(db)
	jadwalService := dokterServices.NewJadwalKontrolService(db)
	assessmentService := dokterServices.NewAssessmentService(db)
	icdService := dokterServices.NewICDService(db)

	// Inisialisasi controller
	pasienController := adminControllers.NewPasienController(pasienService)
	pendaftaranController := adminControllers.NewPendaftaranController(pendaftaranService)
	uploadController := adminControllers.NewUploadController(uploadDir, baseURL)
	sdmController := manajemenControllers.NewSDMController(sdmService)
	authController := manajemenControllers.NewAuthController(authService)
	jadwalController := dokterControllers.NewJadwalKontrolController(jadwalService)
	assessmentController := dokterControllers.NewAssessmentController(assessmentService)
	icdController := dokterControllers.NewICDController(icdService)

	jwt := middlewares.JWTMiddleware()
	adminOnly := middlewares.RequireRole(manajemenModels.RoleAdmin)

	// Autentikasi
	e.POST("/login", authController.Login) // Tidak pakai JWT
	e.GET("/verify-token", authController.VerifyToken, jwt)

	// Upload gambar
	e.POST("/upload-image", uploadController.UploadImage, jwt)
	e.POST("/upload-images", uploadController.UploadImages, jwt)
	e.Static("/uploads", uploadDir)

	// Pasien
	e.GET("/patients", pasienController.ListPasien, jwt)
	e.GET("/patients/search", pasienController.SearchPasien, jwt)
	e.POST("/patients", pasienController.CreatePasien, jwt)
	e.GET("/patients/:id", pasienController.GetPasien, jwt)
	e.PATCH("/patients/:id", pasienController.UpdatePasien, jwt)
	e.DELETE("/patients/:id", pasienController.DeletePasien, jwt)
	e.POST("/generate-rekam-medik", pasienController.GenerateRekamMedik, jwt)

	// Pendaftaran
	e.GET("/registrations", pendaftaranController.ListPendaftaran, jwt)
	e.POST("/registrations", pendaftaranController.CreatePendaftaran, jwt)
	e.GET("/registrations/patient/:patientId", pendaftaranController.ListPendaftaranByPatient, jwt)
	e.PUT("/registrations/:id", pendaftaranController.UpdatePendaftaran, jwt)
	e.DELETE("/registrations/:id", pendaftaranController.DeletePendaftaran, jwt)

	// SDM; mutasi hanya untuk admin
	e.GET("/sdm", sdmController.ListSDM, jwt)
	e.GET("/sdm/search", sdmController.SearchSDM, jwt)
	e.POST("/sdm", sdmController.CreateSDM, jwt, adminOnly)
	e.GET("/sdm/:id", sdmController.GetSDM, jwt)
	e.PUT("/sdm/:id", sdmController.UpdateSDM, jwt, adminOnly)
	e.DELETE("/sdm/:id", sdmController.DeleteSDM, jwt, adminOnly)

	// Jadwal kontrol
	e.GET("/create-jadwal-table", jadwalController.EnsureTable, jwt)
	e.GET("/jadwal-kontrol/:patientId", jadwalController.ListByPatient, jwt)
	e.POST("/jadwal-kontrol", jadwalController.Create, jwt)
	e.PUT("/jadwal-kontrol/:id", jadwalController.Update, jwt)
	e.DELETE("/jadwal-kontrol/:id", jadwalController.Delete, jwt)

	// Assessment
	e.GET("/create-assessment-table", assessmentController.EnsureTable, jwt)
	e.GET("/assessments/:patientId", assessmentController.ListHistory, jwt)
	e.GET("/assessments/detail/:id", assessmentController.GetDetail, jwt)
	e.POST("/assessments", assessmentController.Create, jwt)
	e.PUT("/assessments/:id", assessmentController.Update, jwt)
	e.DELETE("/assessments/:id", assessmentController.Delete, jwt)

	// Referensi ICD (read-only)
	e.GET("/icd10", icdController.ListICD10, jwt)
	e.GET("/icd10/search", icdController.SearchICD10, jwt)
	e.GET("/icd9", icdController.ListICD9, jwt)
	e.GET("/icd9/search", icdController.SearchICD9, jwt)

	// WebSocket antrian
	e.GET("/ws", ws.ServeWS(ws.HubInstance))
}
