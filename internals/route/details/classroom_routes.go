// file: internals/route/details/classroom_routes.go
package details

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	attendanceController "kelasku_backend/internals/features/classroom/attendance/controller"
	classroomController "kelasku_backend/internals/features/classroom/classrooms/controller"
	messageController "kelasku_backend/internals/features/classroom/messages/controller"
	authMiddleware "kelasku_backend/internals/middlewares/auth"
)

func ClassroomRoutes(app *fiber.App, db *gorm.DB) {
	clsCtrl := classroomController.NewClassroomController(db)
	msgCtrl := messageController.NewMessageController(db)
	attCtrl := attendanceController.NewAttendanceController(db)

	// ================= CLASSROOMS =================
	classrooms := app.Group("/api/classrooms", authMiddleware.AuthMiddleware())
	classrooms.Post("/create", clsCtrl.Create)
	classrooms.Post("/join", clsCtrl.Join)
	classrooms.Get("/my", clsCtrl.ListMine)
	classrooms.Get("/:id", clsCtrl.GetByID)
	classrooms.Put("/:id", clsCtrl.Update)
	classrooms.Delete("/:id", clsCtrl.Delete)
	classrooms.Post("/:id/leave", clsCtrl.Leave)
	classrooms.Post("/:id/promote", clsCtrl.Promote)
	classrooms.Post("/:id/demote", clsCtrl.Demote)
	classrooms.Post("/:id/remove-user", clsCtrl.RemoveUser)

	// ================= MESSAGES =================
	messages := app.Group("/api/messages", authMiddleware.AuthMiddleware())
	messages.Post("/send", msgCtrl.Send)
	messages.Get("/classroom/:classroomId", msgCtrl.ListByClassroom)

	// ================= ATTENDANCE =================
	attendance := app.Group("/api/attendance", authMiddleware.AuthMiddleware())
	attendance.Post("/mark", attCtrl.Mark)
	attendance.Get("/date/:date", attCtrl.GetByDate)
	attendance.Get("/summary/:month", attCtrl.MonthlySummary)
}
