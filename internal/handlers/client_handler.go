package handlers

import (
	"net/http"

	"alumni_backend/internal/middleware"
	"alumni_backend/internal/services"
	"alumni_backend/internal/services/dto"

	"github.com/gin-gonic/gin"
)

type ClientHandler struct {
	*BaseHandler
	clientService services.ClientService
}

func NewClientHandler(base *BaseHandler, clientService services.ClientService) *ClientHandler {
	return &ClientHandler{
		BaseHandler:   base,
		clientService: clientService,
	}
}

// RegisterRoutes регистрирует маршруты клиентов. Все операции требуют сессии.
func (h *ClientHandler) RegisterRoutes(rg *gin.RouterGroup) {
	clients := rg.Group("/clients")
	clients.Use(middleware.AuthMiddleware())
	{
		clients.POST("", h.AddClient)
		clients.GET("", h.ListClients)
		clients.GET("/stats", h.GetStats)
		clients.PUT("/:clientId", h.UpdateClient)
		clients.DELETE("/:clientId", h.DeleteClient)
	}
}

func (h *ClientHandler) AddClient(c *gin.Context) {
	var req dto.ClientRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	db := h.GetDB(c)

	resp, err := h.clientService.AddClient(db, &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "Client added successfully",
		"client":  resp,
	})
}

func (h *ClientHandler) UpdateClient(c *gin.Context) {
	clientID := c.Param("clientId")

	var req dto.ClientRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	db := h.GetDB(c)

	resp, err := h.clientService.UpdateClient(db, clientID, &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Client updated successfully",
		"client":  resp,
	})
}

func (h *ClientHandler) DeleteClient(c *gin.Context) {
	clientID := c.Param("clientId")

	db := h.GetDB(c)

	if err := h.clientService.DeleteClient(db, clientID); err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Client deleted successfully",
	})
}

func (h *ClientHandler) ListClients(c *gin.Context) {
	search := c.Query("search")

	page := ParseQueryInt(c, "page", 1)

	db := h.GetDB(c)

	resp, err := h.clientService.ListClients(db, search, page)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

func (h *ClientHandler) GetStats(c *gin.Context) {
	db := h.GetDB(c)

	resp, err := h.clientService.GetStats(db)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}
