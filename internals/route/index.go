// file: internals/route/index.go
package route

import (
	"log"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"kelasku_backend/internals/ai"
	routeDetails "kelasku_backend/internals/route/details"
)

func SetupRoutes(app *fiber.App, db *gorm.DB, aiClient *ai.Client) {
	// ===================== AUTH / USER BASE =====================
	log.Println("[INFO] Setting up AuthRoutes...")
	routeDetails.AuthRoutes(app, db)

	log.Println("[INFO] Setting up UserRoutes...")
	routeDetails.UserRoutes(app, db)

	// ===================== CLASSROOM =====================
	log.Println("[INFO] Setting up ClassroomRoutes...")
	routeDetails.ClassroomRoutes(app, db)

	// ===================== ASSESSMENTS =====================
	log.Println("[INFO] Setting up AssessmentRoutes...")
	routeDetails.AssessmentRoutes(app, db, aiClient)
}
