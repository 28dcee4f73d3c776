package handlers

import (
	"fmt"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
)

// AllowedMethods is advertised for every informational route
const AllowedMethods = "GET, HEAD, OPTIONS"

// ErrorResponse is the body returned with every non-2xx status
type ErrorResponse struct {
	Error   string `json:"error" example:"Not Found"`
	Message string `json:"message" example:"no route for GET /api/unknown"`
}

// NotFound is registered as the engine's NoRoute handler
func NotFound(c *gin.Context) {
	c.JSON(http.StatusNotFound, ErrorResponse{
		Error:   "Not Found",
		Message: fmt.Sprintf("no route for %s %s", c.Request.Method, c.Request.URL.Path),
	})
}

// MethodNotAllowed is registered as the engine's NoMethod handler
func MethodNotAllowed(c *gin.Context) {
	c.JSON(http.StatusMethodNotAllowed, ErrorResponse{
		Error:   "Method Not Allowed",
		Message: fmt.Sprintf("method %s is not allowed for %s", c.Request.Method, c.Request.URL.Path),
	})
}

// internalError logs the cause and answers 500 without leaking it to the client
func internalError(c *gin.Context, err error) {
	log.Printf("ERROR: %s %s: %v", c.Request.Method, c.Request.URL.Path, err)
	_ = c.Error(err)
	c.JSON(http.StatusInternalServerError, ErrorResponse{
		Error:   "Internal Server Error",
		Message: "the server encountered an internal error",
	})
}

// Options answers a bare OPTIONS request (no CORS preflight) with the
// methods every informational route supports
func Options(c *gin.Context) {
	c.Header("Allow", AllowedMethods)
	c.Status(http.StatusOK)
}
