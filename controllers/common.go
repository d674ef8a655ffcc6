package controllers

import (
	"log"
	"net/http"
	"strconv"

	"srif-api/config"

	"github.com/gin-gonic/gin"
)

// respondServerError logs the underlying error and answers with a generic
// message in production, full detail otherwise.
func respondServerError(c *gin.Context, publicMsg string, err error) {
	log.Printf("%s %s failed: %v", c.Request.Method, c.FullPath(), err)

	msg := publicMsg
	if !config.IsProduction() && err != nil {
		msg = err.Error()
	}
	c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": msg})
}

func respondBadRequest(c *gin.Context, msg string) {
	c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": msg})
}

func respondNotFound(c *gin.Context, msg string) {
	c.JSON(http.StatusNotFound, gin.H{"success": false, "message": msg})
}

// intParam parses a numeric :param, returning ok=false after answering 400.
func intParam(c *gin.Context, name string) (int, bool) {
	v, err := strconv.Atoi(c.Param(name))
	if err != nil || v <= 0 {
		respondBadRequest(c, "Invalid "+name)
		return 0, false
	}
	return v, true
}

func clientIP(c *gin.Context) *string {
	ip := c.ClientIP()
	if ip == "" {
		return nil
	}
	return &ip
}

func optional(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
