package credential

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	service Service
}

func NewHandler(service Service) *Handler {
	return &Handler{service: service}
}

// Rotate godoc
// @Summary      Rotate gym QR credential
// @Description  Issues a fresh access token for the gym and retires the previous one. Admin only.
// @Tags         credentials
// @Security     BearerAuth
// @Produce      json
// @Param        gymID  path      int  true  "Gym ID"
// @Success      201    {object}  GymAccessCredential
// @Failure      400    {object}  gin.H
// @Failure      404    {object}  gin.H
// @Failure      409    {object}  gin.H
// @Router       /gyms/{gymID}/qr/rotate [post]
func (h *Handler) Rotate(c *gin.Context) {
	gymID, err := strconv.Atoi(c.Param("gymID"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid gym ID"})
		return
	}

	cred, err := h.service.Rotate(c.Request.Context(), gymID)
	if err != nil {
		switch {
		case errors.Is(err, ErrGymNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "Gym not found"})
		case errors.Is(err, ErrGymInactive):
			c.JSON(http.StatusBadRequest, gin.H{"error": "Gym is not active"})
		case errors.Is(err, ErrRotationConflict):
			c.JSON(http.StatusConflict, gin.H{"error": "Credential rotation conflict, please retry"})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to rotate credential"})
		}
		return
	}

	c.JSON(http.StatusCreated, cred)
}

// GetActive godoc
// @Summary      Get active gym QR credential
// @Tags         credentials
// @Security     BearerAuth
// @Produce      json
// @Param        gymID  path      int  true  "Gym ID"
// @Success      200    {object}  GymAccessCredential
// @Failure      400    {object}  gin.H
// @Failure      404    {object}  gin.H
// @Router       /gyms/{gymID}/qr [get]
func (h *Handler) GetActive(c *gin.Context) {
	gymID, err := strconv.Atoi(c.Param("gymID"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid gym ID"})
		return
	}

	cred, err := h.service.GetActive(c.Request.Context(), gymID)
	if err != nil {
		switch {
		case errors.Is(err, ErrGymNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "Gym not found"})
		case errors.Is(err, ErrNoActiveCredential):
			c.JSON(http.StatusNotFound, gin.H{"error": "Gym has no active credential"})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch credential"})
		}
		return
	}

	c.JSON(http.StatusOK, cred)
}

// Deactivate godoc
// @Summary      Deactivate gym QR credential
// @Description  Retires the gym's active credential without issuing a replacement. Admin only.
// @Tags         credentials
// @Security     BearerAuth
// @Produce      json
// @Param        gymID  path      int  true  "Gym ID"
// @Success      200    {object}  gin.H
// @Failure      400    {object}  gin.H
// @Failure      404    {object}  gin.H
// @Router       /gyms/{gymID}/qr/deactivate [post]
func (h *Handler) Deactivate(c *gin.Context) {
	gymID, err := strconv.Atoi(c.Param("gymID"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid gym ID"})
		return
	}

	err = h.service.Deactivate(c.Request.Context(), gymID)
	if err != nil {
		switch {
		case errors.Is(err, ErrGymNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "Gym not found"})
		case errors.Is(err, ErrNoActiveCredential):
			c.JSON(http.StatusNotFound, gin.H{"error": "Gym has no active credential"})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to deactivate credential"})
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Credential deactivated"})
}
