package dto

import "marketo_admin_v1/internal/model"

// ==================== 请求 DTO ====================

// UpdateSettingsReq 整体更新配置请求
type UpdateSettingsReq struct {
	SiteName        *string                    `json:"site_name,omitempty" binding:"omitempty,max=100"`
	SiteDescription *string                    `json:"site_description,omitempty" binding:"omitempty,max=255"`
	Currency        *string                    `json:"currency,omitempty"`
	Timezone        *string                    `json:"timezone,omitempty" binding:"omitempty,max=50"`
	DateFormat      *string                    `json:"date_format,omitempty"`
	TimeFormat      *string                    `json:"time_format,omitempty"`
	ItemsPerPage    *int                       `json:"items_per_page,omitempty" binding:"omitempty,gte=1,lte=100"`
	Notifications   *model.NotificationToggles `json:"notifications,omitempty"`
	Theme           *model.Theme               `json:"theme,omitempty"`
}

// UpdateSettingKeyReq 更新单个配置项请求
type UpdateSettingKeyReq struct {
	Value interface{} `json:"value" binding:"required"`
}
