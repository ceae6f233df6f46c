package controller

import (
	"github.com/gin-gonic/gin"

	"marketo_admin_v1/internal/api/dto"
	"marketo_admin_v1/internal/middleware"
	"marketo_admin_v1/internal/repository"
	"marketo_admin_v1/internal/service"
)

// NotificationController 通知接口，全部按当前登录用户隔离
type NotificationController struct {
	notificationService *service.NotificationService
}

func NewNotificationController(notificationService *service.NotificationService) *NotificationController {
	return &NotificationController{notificationService: notificationService}
}

// GetNotifications 通知列表
// @Summary 获取当前用户的通知列表
// @Tags Notification
// @Security BearerAuth
// @Param type query string false "类型筛选"
// @Param is_read query bool false "已读/未读筛选"
// @Param page query int false "页码" default(1)
// @Param limit query int false "每页数量" default(10)
// @Success 200 {object} dto.ListResp
// @Router /api/notifications [get]
func (ctrl *NotificationController) GetNotifications(c *gin.Context) {
	page, limit := parsePageQuery(c)

	filter := repository.NotificationFilter{
		UserID:    middleware.GetUserID(c),
		Type:      c.Query("type"),
		SortBy:    c.Query("sort_by"),
		SortOrder: c.Query("sort_order"),
		Page:      page,
		Limit:     limit,
	}
	if raw := c.Query("is_read"); raw != "" {
		isRead := raw == "true"
		filter.IsRead = &isRead
	}

	notifications, total, err := ctrl.notificationService.List(c.Request.Context(), filter)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(200, dto.ListResp{
		Code:       0,
		Message:    "success",
		Data:       notifications,
		Pagination: dto.NewPagination(page, limit, total),
	})
}

// GetUnreadCount 未读数
// @Summary 获取当前用户的未读通知数
// @Tags Notification
// @Security BearerAuth
// @Success 200 {object} gin.H
// @Router /api/notifications/unread-count [get]
func (ctrl *NotificationController) GetUnreadCount(c *gin.Context) {
	count, err := ctrl.notificationService.UnreadCount(c.Request.Context(), middleware.GetUserID(c))
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(200, gin.H{"code": 0, "message": "success", "count": count})
}

// GetNotificationStats 通知统计
// @Summary 获取当前用户的通知统计
// @Tags Notification
// @Security BearerAuth
// @Success 200 {object} gin.H
// @Router /api/notifications/stats [get]
func (ctrl *NotificationController) GetNotificationStats(c *gin.Context) {
	overview, byType, err := ctrl.notificationService.Stats(c.Request.Context(), middleware.GetUserID(c))
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(200, gin.H{
		"code":    0,
		"message": "success",
		"data": gin.H{
			"overview": overview,
			"by_type":  byType,
		},
	})
}

// MarkAsRead 标记已读
// @Summary 将单条通知标记为已读
// @Tags Notification
// @Security BearerAuth
// @Param id path int true "通知ID"
// @Success 200 {object} model.Notification
// @Router /api/notifications/{id}/read [put]
func (ctrl *NotificationController) MarkAsRead(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	notification, err := ctrl.notificationService.MarkRead(c.Request.Context(), id, middleware.GetUserID(c))
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(200, gin.H{"code": 0, "message": "success", "data": notification})
}

// MarkAllAsRead 全部已读
// @Summary 将当前用户所有通知标记为已读
// @Tags Notification
// @Security BearerAuth
// @Success 200 {object} gin.H
// @Router /api/notifications/mark-all-read [put]
func (ctrl *NotificationController) MarkAllAsRead(c *gin.Context) {
	affected, err := ctrl.notificationService.MarkAllRead(c.Request.Context(), middleware.GetUserID(c))
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(200, gin.H{"code": 0, "message": "success", "affected": affected})
}

// DeleteNotification 删除通知
// @Summary 删除单条通知
// @Tags Notification
// @Security BearerAuth
// @Param id path int true "通知ID"
// @Success 200 {object} gin.H
// @Router /api/notifications/{id} [delete]
func (ctrl *NotificationController) DeleteNotification(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	if err := ctrl.notificationService.Delete(c.Request.Context(), id, middleware.GetUserID(c)); err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(200, gin.H{"code": 0, "message": "Notification deleted successfully"})
}

// DeleteAllNotifications 清空通知
// @Summary 删除当前用户的全部通知
// @Tags Notification
// @Security BearerAuth
// @Success 200 {object} gin.H
// @Router /api/notifications [delete]
func (ctrl *NotificationController) DeleteAllNotifications(c *gin.Context) {
	affected, err := ctrl.notificationService.DeleteAll(c.Request.Context(), middleware.GetUserID(c))
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(200, gin.H{"code": 0, "message": "success", "affected": affected})
}
