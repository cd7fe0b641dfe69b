// file: internals/route/details/user_routes.go
package details

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	userController "kelasku_backend/internals/features/users/user/controller"
	authMiddleware "kelasku_backend/internals/middlewares/auth"
)

func UserRoutes(app *fiber.App, db *gorm.DB) {
	ctrl := userController.NewUserController(db)

	users := app.Group("/api/users", authMiddleware.AuthMiddleware())
	users.Post("/add", ctrl.Add)
	users.Get("/", ctrl.List)
}
