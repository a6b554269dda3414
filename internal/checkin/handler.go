package checkin

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/NasibAsgarbayli/NFIT-sub000/internal/api"
	"github.com/NasibAsgarbayli/NFIT-sub000/internal/auth"
)

type Handler struct {
	service Service
}

func NewHandler(service Service) *Handler {
	return &Handler{service: service}
}

// CheckIn godoc
// @Summary      Check in at a gym
// @Description  Opens a session from a scanned QR token. Requires an active membership whose plan covers the gym.
// @Tags         checkins
// @Security     BearerAuth
// @Accept       json
// @Produce      json
// @Param        request  body      CheckInRequest  true  "Scanned token"
// @Success      201      {object}  CheckInSession
// @Failure      400      {object}  gin.H
// @Failure      401      {object}  gin.H
// @Failure      403      {object}  gin.H
// @Failure      409      {object}  gin.H
// @Router       /checkins [post]
func (h *Handler) CheckIn(c *gin.Context) {
	ident, ok := auth.GetIdentity(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	var req CheckInRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	session, err := h.service.CheckIn(c.Request.Context(), ident.UserID, req)
	if err != nil {
		switch {
		case errors.Is(err, ErrCredentialInvalid):
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid access credential"})
		case errors.Is(err, ErrGymInactive):
			c.JSON(http.StatusBadRequest, gin.H{"error": "Gym is not active"})
		case errors.Is(err, ErrNoEntitlement):
			c.JSON(http.StatusForbidden, gin.H{"error": "No active membership covers this gym"})
		case errors.Is(err, ErrAlreadyCheckedIn):
			c.JSON(http.StatusConflict, gin.H{"error": "You already have an active session"})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to check in"})
		}
		return
	}

	c.JSON(http.StatusCreated, session)
}

// CheckOut godoc
// @Summary      Check out of a session
// @Tags         checkins
// @Security     BearerAuth
// @Produce      json
// @Param        sessionID  path      int  true  "Session ID"
// @Success      200        {object}  SessionWithDuration
// @Failure      400        {object}  gin.H
// @Failure      401        {object}  gin.H
// @Failure      403        {object}  gin.H
// @Failure      404        {object}  gin.H
// @Router       /checkins/{sessionID}/checkout [post]
func (h *Handler) CheckOut(c *gin.Context) {
	ident, ok := auth.GetIdentity(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	sessionID, err := strconv.Atoi(c.Param("sessionID"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid session ID"})
		return
	}

	session, err := h.service.CheckOut(c.Request.Context(), ident.UserID, sessionID)
	if err != nil {
		switch {
		case errors.Is(err, ErrSessionNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "Session not found"})
		case errors.Is(err, ErrNotSessionOwner):
			c.JSON(http.StatusForbidden, gin.H{"error": "You can only check out of your own session"})
		case errors.Is(err, ErrAlreadyCheckedOut):
			c.JSON(http.StatusBadRequest, gin.H{"error": "Session is already checked out"})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to check out"})
		}
		return
	}

	c.JSON(http.StatusOK, session)
}

// ListMy godoc
// @Summary      List my sessions
// @Tags         checkins
// @Security     BearerAuth
// @Produce      json
// @Success      200  {array}   SessionWithDuration
// @Failure      401  {object}  gin.H
// @Failure      500  {object}  gin.H
// @Router       /checkins [get]
func (h *Handler) ListMy(c *gin.Context) {
	ident, ok := auth.GetIdentity(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	sessions, err := h.service.ListMy(c.Request.Context(), ident.UserID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch sessions"})
		return
	}

	c.JSON(http.StatusOK, sessions)
}

// Occupancy godoc
// @Summary      Current gym occupancy
// @Description  Count of active sessions for the gym. Public.
// @Tags         checkins
// @Produce      json
// @Param        gymID  path      int  true  "Gym ID"
// @Success      200    {object}  api.OccupancyResponse
// @Failure      400    {object}  gin.H
// @Failure      404    {object}  gin.H
// @Router       /gyms/{gymID}/occupancy [get]
func (h *Handler) Occupancy(c *gin.Context) {
	gymID, err := strconv.Atoi(c.Param("gymID"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid gym ID"})
		return
	}

	count, err := h.service.Occupancy(c.Request.Context(), gymID)
	if err != nil {
		if errors.Is(err, ErrGymNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Gym not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch occupancy"})
		return
	}

	c.JSON(http.StatusOK, api.OccupancyResponse{GymID: gymID, Count: count})
}
