package connection

import (
	"log"
	"safespace/controller/admin"
	"safespace/controller/ai"
	"safespace/controller/analysis"
	"safespace/controller/auth"
	"safespace/controller/evidence"
	"safespace/controller/fir"
	"safespace/controller/incident"
	"safespace/controller/station"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

func StartServer() {
	router := gin.Default()

	DB, err := DBConnection()
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	FB, err := FBConnection()
	if err != nil {
		log.Fatalf("Failed to initialize Firestore client: %v", err)
	}

	router.GET("/", func(c *gin.Context) {
		c.JSON(200, gin.H{"message": "Api is running!"})
	})

	router.Use(cors.Default())

	auth.AuthController(router, DB, FB)

	incident.IncidentController(router, DB, FB)
	incident.CreateIncidentController(router, DB, FB)
	incident.UpdateIncidentController(router, DB, FB)
	incident.DeleteIncidentController(router, DB, FB)

	evidence.EvidenceController(router, DB, FB)

	analysis.AnalysisController(router, DB, FB)
	station.StationController(router, DB, FB)
	fir.FirController(router, DB, FB)

	ai.AiAssistantController(router, DB, FB)

	admin.AdminAuthController(router, DB, FB)
	admin.TotpController(router, DB, FB)
	admin.CasesController(router, DB, FB)
	admin.AuditLogController(router, DB, FB)
	admin.AnalyticsController(router, DB, FB)

	router.Run()
}
