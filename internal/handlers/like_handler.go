package handlers

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"
	"github.com/warblerapp/warbler/internal/repositories"
)

// LikeHandler handles like/unlike HTTP requests
type LikeHandler struct {
	likeRepository repositories.LikeRepository
	userRepository repositories.UserRepository
}

// NewLikeHandler creates a new LikeHandler
func NewLikeHandler(likeRepo repositories.LikeRepository, userRepo repositories.UserRepository) *LikeHandler {
	return &LikeHandler{
		likeRepository: likeRepo,
		userRepository: userRepo,
	}
}

// RegisterPublicRoutes registers like routes that need no session
func (h *LikeHandler) RegisterPublicRoutes(g *echo.Group) {
	g.GET("/users/:id/likes", h.ListLikedMessages)
}

// RegisterLikeRoutes registers session-gated like routes
func (h *LikeHandler) RegisterLikeRoutes(g *echo.Group) {
	g.POST("/messages/:id/like", h.LikeMessage)
	g.DELETE("/messages/:id/like", h.UnlikeMessage)
}

// LikeMessage likes a message as the authenticated user
func (h *LikeHandler) LikeMessage(c echo.Context) error {
	userID := getUserIDFromContext(c)

	messageID, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid message ID")
	}

	if err := h.likeRepository.Like(userID, uint(messageID)); err != nil {
		return toHTTPError(err)
	}
	return c.JSON(http.StatusOK, echo.Map{"liked": true})
}

// UnlikeMessage removes the authenticated user's like from a message
func (h *LikeHandler) UnlikeMessage(c echo.Context) error {
	userID := getUserIDFromContext(c)

	messageID, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid message ID")
	}

	if err := h.likeRepository.Unlike(userID, uint(messageID)); err != nil {
		return toHTTPError(err)
	}
	return c.JSON(http.StatusOK, echo.Map{"liked": false})
}

// ListLikedMessages lists the messages a user has liked
func (h *LikeHandler) ListLikedMessages(c echo.Context) error {
	targetID, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid user ID")
	}
	if _, err := h.userRepository.GetUserByID(uint(targetID)); err != nil {
		return toHTTPError(err)
	}

	messages, err := h.likeRepository.GetLikedMessages(uint(targetID))
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.JSON(http.StatusOK, messages)
}
