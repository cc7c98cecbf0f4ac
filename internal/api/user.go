package api

import (
	"net/http" // HTTP status codes

	"contact_system/internal/apperr"
	"contact_system/internal/middleware"
	"contact_system/internal/model"
	"contact_system/internal/service"

	"github.com/gin-gonic/gin" // Gin web framework
)

// RegisterHandler creates a new user account
func RegisterHandler(userService service.UserServiceInterface) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req model.RegisterUserRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			apperr.Handle(c, apperr.Validation("request body is not valid"))
			return
		}
		resp, err := userService.Register(&req)
		if err != nil {
			apperr.Handle(c, err)
			return
		}
		c.JSON(http.StatusOK, model.WebResponse{Data: resp})
	}
}

// LoginHandler authenticates a user and returns a fresh session token
func LoginHandler(userService service.UserServiceInterface) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req model.LoginUserRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			apperr.Handle(c, apperr.Validation("request body is not valid"))
			return
		}
		resp, err := userService.Login(&req)
		if err != nil {
			apperr.Handle(c, err)
			return
		}
		c.JSON(http.StatusOK, model.WebResponse{Data: resp})
	}
}

// CurrentUserHandler returns the authenticated user's projection
func CurrentUserHandler(userService service.UserServiceInterface) gin.HandlerFunc {
	return func(c *gin.Context) {
		user := middleware.CurrentUser(c)
		c.JSON(http.StatusOK, model.WebResponse{Data: userService.Current(user)})
	}
}

// UpdateUserHandler updates the authenticated user's name and/or password
func UpdateUserHandler(userService service.UserServiceInterface) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req model.UpdateUserRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			apperr.Handle(c, apperr.Validation("request body is not valid"))
			return
		}
		resp, err := userService.Update(middleware.CurrentUser(c), &req)
		if err != nil {
			apperr.Handle(c, err)
			return
		}
		c.JSON(http.StatusOK, model.WebResponse{Data: resp})
	}
}

// LogoutHandler clears the authenticated user's session token
func LogoutHandler(userService service.UserServiceInterface) gin.HandlerFunc {
	return func(c *gin.Context) {
		if err := userService.Logout(middleware.CurrentUser(c)); err != nil {
			apperr.Handle(c, err)
			return
		}
		c.JSON(http.StatusOK, model.WebResponse{Data: "logout success"})
	}
}
