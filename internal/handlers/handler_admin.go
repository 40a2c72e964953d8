package handlers

import (
	"log/slog"
	"net/http"

	portssvc "github.com/SscSPs/finance_tracker/internal/core/ports/services"
	"github.com/SscSPs/finance_tracker/internal/dto"
	"github.com/SscSPs/finance_tracker/internal/middleware"
	"github.com/gin-gonic/gin"
)

// adminHandler handles the admin dashboard, account management and the activity log.
type adminHandler struct {
	adminService portssvc.AdminSvcFacade
}

func newAdminHandler(as portssvc.AdminSvcFacade) *adminHandler {
	return &adminHandler{adminService: as}
}

// registerAdminRoutes registers the /admin routes. Every route is admin only; the services enforce it.
func registerAdminRoutes(rg *gin.RouterGroup, adminService portssvc.AdminSvcFacade, transactionService portssvc.TransactionSvcFacade) {
	h := newAdminHandler(adminService)
	txnHandler := newTransactionHandler(transactionService)

	admin := rg.Group("/admin")
	{
		admin.GET("/dashboard", h.dashboard)
		admin.GET("/users", h.listUsers)
		admin.GET("/users/:id", h.getUser)
		admin.PUT("/users/:id/toggle-status", h.toggleUserStatus)
		admin.DELETE("/users/:id", h.deleteUser)
		admin.GET("/activities", h.listActivities)
		admin.GET("/activities/stats", h.activityStats)
		admin.GET("/summary/daily", txnHandler.dailySummary) // Same as /transactions/daily-summary
	}
}

// dashboard godoc
// @Summary Admin dashboard
// @Description User counts, global summary, today's activity count, recent activity and per-user totals.
// @Tags admin
// @Produce json
// @Success 200 {object} dto.Response{data=dto.DashboardResponse}
// @Failure 403 {object} dto.Response "Admin required"
// @Security BearerAuth
// @Router /api/v1/admin/dashboard [get]
func (h *adminHandler) dashboard(c *gin.Context) {
	stats, err := h.adminService.Dashboard(c.Request.Context(), middleware.CallerFromContext(c))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.OK(dto.ToDashboardResponse(stats)))
}

// listUsers godoc
// @Summary List users
// @Description Every account with its transaction totals, newest account first.
// @Tags admin
// @Produce json
// @Success 200 {object} dto.Response{data=[]dto.UserStatsResponse}
// @Failure 403 {object} dto.Response "Admin required"
// @Security BearerAuth
// @Router /api/v1/admin/users [get]
func (h *adminHandler) listUsers(c *gin.Context) {
	stats, err := h.adminService.ListUsers(c.Request.Context(), middleware.CallerFromContext(c))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.OKList(dto.ToUserStatsResponseList(stats), len(stats), nil))
}

// getUser godoc
// @Summary Get user detail
// @Description The account, its transactions and summary, and its 20 most recent activities.
// @Tags admin
// @Produce json
// @Param id path string true "User ID"
// @Success 200 {object} dto.Response{data=dto.UserDetailResponse}
// @Failure 403 {object} dto.Response "Admin required"
// @Failure 404 {object} dto.Response "User not found"
// @Security BearerAuth
// @Router /api/v1/admin/users/{id} [get]
func (h *adminHandler) getUser(c *gin.Context) {
	detail, err := h.adminService.GetUserDetail(c.Request.Context(), middleware.CallerFromContext(c), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.OK(dto.ToUserDetailResponse(detail)))
}

// toggleUserStatus godoc
// @Summary Activate or deactivate a user
// @Description Flips the active flag. Admin accounts cannot be toggled.
// @Tags admin
// @Produce json
// @Param id path string true "User ID"
// @Success 200 {object} dto.Response{data=dto.UserResponse}
// @Failure 403 {object} dto.Response "Admin required or target is an admin"
// @Failure 404 {object} dto.Response "User not found"
// @Security BearerAuth
// @Router /api/v1/admin/users/{id}/toggle-status [put]
func (h *adminHandler) toggleUserStatus(c *gin.Context) {
	user, err := h.adminService.ToggleUserStatus(c.Request.Context(), middleware.CallerFromContext(c), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	message := "User deactivated"
	if user.IsActive {
		message = "User activated"
	}
	middleware.GetLoggerFromContext(c).Info(message, slog.String("target_user_id", user.UserID))
	c.JSON(http.StatusOK, dto.OKWithMessage(message, dto.ToUserResponse(user)))
}

// deleteUser godoc
// @Summary Delete a user
// @Description Removes the account and its transactions. Admin accounts cannot be deleted.
// @Tags admin
// @Produce json
// @Param id path string true "User ID"
// @Success 200 {object} dto.Response
// @Failure 403 {object} dto.Response "Admin required or target is an admin"
// @Failure 404 {object} dto.Response "User not found"
// @Security BearerAuth
// @Router /api/v1/admin/users/{id} [delete]
func (h *adminHandler) deleteUser(c *gin.Context) {
	userID := c.Param("id")
	if err := h.adminService.DeleteUser(c.Request.Context(), middleware.CallerFromContext(c), userID); err != nil {
		respondError(c, err)
		return
	}
	middleware.GetLoggerFromContext(c).Info("User deleted", slog.String("target_user_id", userID))
	c.JSON(http.StatusOK, dto.OKWithMessage("User deleted", nil))
}

// listActivities godoc
// @Summary List activity log
// @Tags admin
// @Produce json
// @Param userId query string false "Acting user ID"
// @Param action query string false "Action tag, e.g. LOGIN"
// @Param startDate query string false "YYYY-MM-DD, inclusive"
// @Param endDate query string false "YYYY-MM-DD, inclusive"
// @Param limit query int false "Maximum records, default 100"
// @Success 200 {object} dto.Response{data=[]dto.ActivityResponse}
// @Failure 400 {object} dto.Response "Invalid filter"
// @Failure 403 {object} dto.Response "Admin required"
// @Security BearerAuth
// @Router /api/v1/admin/activities [get]
func (h *adminHandler) listActivities(c *gin.Context) {
	var params dto.ListActivitiesParams
	if !bindQuery(c, &params) {
		return
	}
	records, err := h.adminService.ListActivities(c.Request.Context(), middleware.CallerFromContext(c), params)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.OKList(dto.ToActivityResponseList(records), len(records), nil))
}

// activityStats godoc
// @Summary Activity counts per action
// @Tags admin
// @Produce json
// @Success 200 {object} dto.Response{data=[]dto.ActivityStatResponse}
// @Failure 403 {object} dto.Response "Admin required"
// @Security BearerAuth
// @Router /api/v1/admin/activities/stats [get]
func (h *adminHandler) activityStats(c *gin.Context) {
	stats, err := h.adminService.ActivityStats(c.Request.Context(), middleware.CallerFromContext(c))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.OKList(dto.ToActivityStatResponseList(stats), len(stats), nil))
}
