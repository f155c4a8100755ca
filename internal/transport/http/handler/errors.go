package handler

import "github.com/gin-gonic/gin"

const (
	slugConflict     = "conflict"
	slugUnauthorized = "unauthorized"
	slugNotFound     = "not_found"
	slugBadRequest   = "bad_request"
	slugInternal     = "internal"

	msgEmailExists        = "Email already exists"
	msgInvalidCredentials = "Invalid credentials"
	msgPropertyNotFound   = "Property not found"
	msgInternalServer     = "Internal server error"
)

type errorBody struct {
	Error   string `json:"error"`
	Message string `json:"message"`
}

// fail writes the uniform error envelope: {"error": slug, "message": text}.
func fail(c *gin.Context, status int, slug, message string) {
	c.JSON(status, errorBody{Error: slug, Message: message})
}
