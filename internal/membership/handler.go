package membership

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/NasibAsgarbayli/NFIT-sub000/internal/auth"
)

type Handler struct {
	service Service
}

func NewHandler(service Service) *Handler {
	return &Handler{service: service}
}

// GetMine godoc
// @Summary      Get my membership
// @Description  Returns the caller's active membership, or the most recent one when none is active.
// @Tags         memberships
// @Security     BearerAuth
// @Produce      json
// @Success      200  {object}  CurrentMembership
// @Failure      401  {object}  gin.H
// @Failure      404  {object}  gin.H
// @Router       /memberships/me [get]
func (h *Handler) GetMine(c *gin.Context) {
	ident, ok := auth.GetIdentity(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	m, err := h.service.GetCurrent(c.Request.Context(), ident.UserID)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "No membership found"})
		return
	}

	c.JSON(http.StatusOK, m)
}

// Cancel godoc
// @Summary      Cancel my membership
// @Description  Closes the caller's active membership immediately.
// @Tags         memberships
// @Security     BearerAuth
// @Produce      json
// @Success      200  {object}  gin.H
// @Failure      401  {object}  gin.H
// @Failure      404  {object}  gin.H
// @Failure      500  {object}  gin.H
// @Router       /memberships/cancel [post]
func (h *Handler) Cancel(c *gin.Context) {
	ident, ok := auth.GetIdentity(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	err := h.service.Cancel(c.Request.Context(), ident.UserID)
	if err != nil {
		if errors.Is(err, ErrNoActiveMembership) {
			c.JSON(http.StatusNotFound, gin.H{"error": "No active membership to cancel"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to cancel membership"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Membership cancelled"})
}

// Delete godoc
// @Summary      Delete membership
// @Description  Soft-deletes a membership. Allowed for its owner or an admin.
// @Tags         memberships
// @Security     BearerAuth
// @Produce      json
// @Param        membershipID  path      int  true  "Membership ID"
// @Success      200           {object}  gin.H
// @Failure      400           {object}  gin.H
// @Failure      401           {object}  gin.H
// @Failure      403           {object}  gin.H
// @Failure      404           {object}  gin.H
// @Router       /memberships/{membershipID} [delete]
func (h *Handler) Delete(c *gin.Context) {
	ident, ok := auth.GetIdentity(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	membershipID, err := strconv.Atoi(c.Param("membershipID"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid membership ID"})
		return
	}

	err = h.service.Delete(c.Request.Context(), ident.UserID, ident.Role, membershipID)
	if err != nil {
		switch {
		case errors.Is(err, ErrMembershipNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "Membership not found"})
		case errors.Is(err, ErrNotMembershipOwner):
			c.JSON(http.StatusForbidden, gin.H{"error": "You can only delete your own membership"})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete membership"})
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Membership deleted"})
}
