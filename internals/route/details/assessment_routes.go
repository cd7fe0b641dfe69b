// file: internals/route/details/assessment_routes.go
package details

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"kelasku_backend/internals/ai"
	assignmentController "kelasku_backend/internals/features/assessments/assignments/controller"
	evaluationController "kelasku_backend/internals/features/assessments/evaluation/controller"
	submissionController "kelasku_backend/internals/features/assessments/submissions/controller"
	"kelasku_backend/internals/middlewares"
	authMiddleware "kelasku_backend/internals/middlewares/auth"
)

func AssessmentRoutes(app *fiber.App, db *gorm.DB, aiClient *ai.Client) {
	asgCtrl := assignmentController.NewAssignmentController(db)
	subCtrl := submissionController.NewSubmissionController(db)
	evalCtrl := evaluationController.NewEvaluationController(db, aiClient)

	// ================= ASSIGNMENTS =================
	assignments := app.Group("/api/assignments", authMiddleware.AuthMiddleware())
	assignments.Post("/create", asgCtrl.Create)
	assignments.Get("/classroom/:classroomId", asgCtrl.ListByClassroom)
	assignments.Get("/:id", asgCtrl.GetByID)
	assignments.Put("/:id", asgCtrl.Update)

	// submissions lewat path assignment
	assignments.Post("/:id/submit", subCtrl.SubmitToAssignment)
	assignments.Get("/:id/submissions", subCtrl.ListByAssignment)
	assignments.Get("/:id/my-submission", subCtrl.GetMySubmission)

	// evaluation engine — batch run dibatasi rate limiter sendiri
	assignments.Post("/:id/evaluate-all", middlewares.EvaluateRateLimiter(), evalCtrl.EvaluateAll)
	assignments.Post("/:id/submissions/:submissionId/evaluate", evalCtrl.EvaluateOne)

	// ================= SUBMISSIONS =================
	submissions := app.Group("/api/submissions", authMiddleware.AuthMiddleware())
	submissions.Post("/create", subCtrl.Create)
	submissions.Get("/:id", subCtrl.GetByID)
	submissions.Put("/grade/:submissionId", subCtrl.Grade)
}
