package controller

import (
	"github.com/gin-gonic/gin"

	"marketo_admin_v1/internal/api/dto"
	"marketo_admin_v1/internal/service"
)

type SettingsController struct {
	settingsService *service.SettingsService
}

func NewSettingsController(settingsService *service.SettingsService) *SettingsController {
	return &SettingsController{settingsService: settingsService}
}

// GetSettings 获取配置
// @Summary 获取系统配置
// @Tags Settings
// @Security BearerAuth
// @Success 200 {object} model.Settings
// @Router /api/settings [get]
func (ctrl *SettingsController) GetSettings(c *gin.Context) {
	settings, err := ctrl.settingsService.Get(c.Request.Context())
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(200, gin.H{"code": 0, "message": "success", "data": settings})
}

// UpdateSettings 整体更新配置
// @Summary 更新系统配置
// @Tags Settings
// @Security BearerAuth
// @Param body body dto.UpdateSettingsReq true "配置字段"
// @Success 200 {object} model.Settings
// @Router /api/settings [put]
func (ctrl *SettingsController) UpdateSettings(c *gin.Context) {
	var req dto.UpdateSettingsReq
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	settings, err := ctrl.settingsService.Update(c.Request.Context(), service.SettingsInput{
		SiteName:        req.SiteName,
		SiteDescription: req.SiteDescription,
		Currency:        req.Currency,
		Timezone:        req.Timezone,
		DateFormat:      req.DateFormat,
		TimeFormat:      req.TimeFormat,
		ItemsPerPage:    req.ItemsPerPage,
		Notifications:   req.Notifications,
		Theme:           req.Theme,
	})
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(200, gin.H{"code": 0, "message": "success", "data": settings})
}

// GetSettingKey 读取单项
// @Summary 读取单个配置项
// @Tags Settings
// @Security BearerAuth
// @Param key path string true "配置键"
// @Success 200 {object} gin.H
// @Router /api/settings/{key} [get]
func (ctrl *SettingsController) GetSettingKey(c *gin.Context) {
	key := c.Param("key")

	value, err := ctrl.settingsService.GetKey(c.Request.Context(), key)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(200, gin.H{"code": 0, "message": "success", "key": key, "value": value})
}

// UpdateSettingKey 更新单项
// @Summary 更新单个配置项
// @Tags Settings
// @Security BearerAuth
// @Param key path string true "配置键"
// @Param body body dto.UpdateSettingKeyReq true "配置值"
// @Success 200 {object} model.Settings
// @Router /api/settings/{key} [put]
func (ctrl *SettingsController) UpdateSettingKey(c *gin.Context) {
	var req dto.UpdateSettingKeyReq
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	settings, err := ctrl.settingsService.UpdateKey(c.Request.Context(), c.Param("key"), req.Value)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(200, gin.H{"code": 0, "message": "success", "data": settings})
}

// ResetSettings 重置配置
// @Summary 重置为默认配置
// @Tags Settings
// @Security BearerAuth
// @Success 200 {object} model.Settings
// @Router /api/settings/reset [post]
func (ctrl *SettingsController) ResetSettings(c *gin.Context) {
	settings, err := ctrl.settingsService.Reset(c.Request.Context())
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(200, gin.H{"code": 0, "message": "success", "data": settings})
}
