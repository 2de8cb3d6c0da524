package handlers

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"
	"github.com/warblerapp/warbler/internal/models"
	"github.com/warblerapp/warbler/internal/repositories"
)

// MessageHandler handles message HTTP requests
type MessageHandler struct {
	messageRepository repositories.MessageRepository
	likeRepository    repositories.LikeRepository
	userRepository    repositories.UserRepository
}

// NewMessageHandler creates a new MessageHandler
func NewMessageHandler(messageRepo repositories.MessageRepository, likeRepo repositories.LikeRepository, userRepo repositories.UserRepository) *MessageHandler {
	return &MessageHandler{
		messageRepository: messageRepo,
		likeRepository:    likeRepo,
		userRepository:    userRepo,
	}
}

// RegisterPublicRoutes registers message routes that need no session
func (h *MessageHandler) RegisterPublicRoutes(g *echo.Group) {
	g.GET("/messages/:id", h.GetMessage)
	g.GET("/users/:id/messages", h.ListUserMessages)
}

// RegisterMessageRoutes registers session-gated message routes
func (h *MessageHandler) RegisterMessageRoutes(g *echo.Group) {
	g.POST("/messages", h.CreateMessage)
	g.DELETE("/messages/:id", h.DeleteMessage)
}

// CreateMessage posts a new message as the authenticated user
func (h *MessageHandler) CreateMessage(c echo.Context) error {
	userID := getUserIDFromContext(c)

	var req models.CreateMessageRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request payload")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	message, err := h.messageRepository.CreateMessage(userID, req.Text)
	if err != nil {
		return toHTTPError(err)
	}
	return c.JSON(http.StatusCreated, message)
}

// GetMessage retrieves a single message with its like count
func (h *MessageHandler) GetMessage(c echo.Context) error {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid message ID")
	}

	message, err := h.messageRepository.GetMessageByID(uint(id))
	if err != nil {
		return toHTTPError(err)
	}

	likes, err := h.likeRepository.GetLikesCount(message.ID)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.JSON(http.StatusOK, echo.Map{"message": message, "likes_count": likes})
}

// DeleteMessage removes a message owned by the authenticated user
func (h *MessageHandler) DeleteMessage(c echo.Context) error {
	userID := getUserIDFromContext(c)

	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid message ID")
	}

	if err := h.messageRepository.DeleteMessage(uint(id), userID); err != nil {
		return toHTTPError(err)
	}
	return c.NoContent(http.StatusNoContent)
}

// ListUserMessages lists a user's messages, newest first
func (h *MessageHandler) ListUserMessages(c echo.Context) error {
	targetID, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid user ID")
	}
	if _, err := h.userRepository.GetUserByID(uint(targetID)); err != nil {
		return toHTTPError(err)
	}

	messages, err := h.messageRepository.GetMessagesByUserID(uint(targetID))
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.JSON(http.StatusOK, messages)
}
