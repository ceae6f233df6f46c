package controller

import (
	"github.com/gin-gonic/gin"

	"marketo_admin_v1/internal/service"
)

type DashboardController struct {
	dashboardService *service.DashboardService
}

func NewDashboardController(dashboardService *service.DashboardService) *DashboardController {
	return &DashboardController{dashboardService: dashboardService}
}

// GetDashboardStats 首页聚合数据
// @Summary 获取后台首页聚合统计
// @Tags Dashboard
// @Security BearerAuth
// @Success 200 {object} service.DashboardStats
// @Router /api/dashboard/stats [get]
func (ctrl *DashboardController) GetDashboardStats(c *gin.Context) {
	stats, err := ctrl.dashboardService.Stats(c.Request.Context())
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(200, gin.H{"code": 0, "message": "success", "data": stats})
}

// Health 健康检查
// @Summary 服务健康检查（公开接口）
// @Tags Dashboard
// @Success 200 {object} service.Health
// @Router /api/dashboard/health [get]
func (ctrl *DashboardController) Health(c *gin.Context) {
	c.JSON(200, ctrl.dashboardService.Health())
}
