package handlers

import (
	"net/http"

	"github.com/samabhi804-sketch/trip-ai/services"

	"github.com/gin-gonic/gin"
)

func ChatHandler(c *gin.Context) {
	var req services.ChatRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}

	if req.Message == "" || req.AgentType == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Message and agentType are required"})
		return
	}

	engine := services.DefaultAgentEngine()
	c.JSON(http.StatusOK, engine.Chat(req))
}
