package handler

import (
	"github.com/gofiber/fiber/v2"
)

func RegisterRoutes(app *fiber.App, auth *AuthHandler, users *UserHandler) {
	app.Post("/auth/register", auth.Register)
	app.Post("/auth/login", auth.Login)

	api := app.Group("/api")
	api.Get("/users", users.GetAllUsers)
	api.Get("/users/:id", users.GetUserByID)
	api.Delete("/users/:id", users.DeleteUser)
}
