package service

import (
	"context"

	"gorm.io/datatypes"

	"marketo_admin_v1/internal/model"
	"marketo_admin_v1/internal/repository"
)

// SettingsService 全局配置（单例文档）
type SettingsService struct {
	settingsRepo repository.SettingsRepository
}

func NewSettingsService(settingsRepo repository.SettingsRepository) *SettingsService {
	return &SettingsService{settingsRepo: settingsRepo}
}

// SettingsInput 整体更新入参，nil 字段保持不变
type SettingsInput struct {
	SiteName        *string
	SiteDescription *string
	Currency        *string
	Timezone        *string
	DateFormat      *string
	TimeFormat      *string
	ItemsPerPage    *int
	Notifications   *model.NotificationToggles
	Theme           *model.Theme
}

// ==================== 读写 ====================

// Get 返回配置，首次访问懒创建默认配置
func (s *SettingsService) Get(ctx context.Context) (*model.Settings, error) {
	return s.settingsRepo.GetOrCreate(ctx)
}

// Update 整体更新配置
// 货币代码、日期/时间格式都按白名单校验，非法取值返回 ErrInvalidAction
func (s *SettingsService) Update(ctx context.Context, input SettingsInput) (*model.Settings, error) {
	settings, err := s.settingsRepo.GetOrCreate(ctx)
	if err != nil {
		return nil, err
	}

	if input.Currency != nil {
		if !model.IsValidCurrency(*input.Currency) {
			return nil, ErrInvalidAction
		}
		settings.Currency = *input.Currency
	}
	if input.DateFormat != nil {
		if !contains(model.ValidDateFormats, *input.DateFormat) {
			return nil, ErrInvalidAction
		}
		settings.DateFormat = *input.DateFormat
	}
	if input.TimeFormat != nil {
		if !contains(model.ValidTimeFormats, *input.TimeFormat) {
			return nil, ErrInvalidAction
		}
		settings.TimeFormat = *input.TimeFormat
	}
	if input.SiteName != nil && *input.SiteName != "" {
		settings.SiteName = *input.SiteName
	}
	if input.SiteDescription != nil {
		settings.SiteDescription = *input.SiteDescription
	}
	if input.Timezone != nil && *input.Timezone != "" {
		settings.Timezone = *input.Timezone
	}
	if input.ItemsPerPage != nil && *input.ItemsPerPage > 0 {
		settings.ItemsPerPage = *input.ItemsPerPage
	}
	if input.Notifications != nil {
		settings.Notifications = datatypes.NewJSONType(*input.Notifications)
	}
	if input.Theme != nil {
		settings.Theme = datatypes.NewJSONType(*input.Theme)
	}

	if err := s.settingsRepo.Save(ctx, settings); err != nil {
		return nil, err
	}
	return settings, nil
}

// ==================== 按键读写 ====================

// GetKey 读取单个配置项，未知键返回 ErrSettingNotFound
func (s *SettingsService) GetKey(ctx context.Context, key string) (interface{}, error) {
	settings, err := s.settingsRepo.GetOrCreate(ctx)
	if err != nil {
		return nil, err
	}

	switch key {
	case "site_name":
		return settings.SiteName, nil
	case "site_description":
		return settings.SiteDescription, nil
	case "currency":
		return settings.Currency, nil
	case "timezone":
		return settings.Timezone, nil
	case "date_format":
		return settings.DateFormat, nil
	case "time_format":
		return settings.TimeFormat, nil
	case "items_per_page":
		return settings.ItemsPerPage, nil
	case "notifications":
		return settings.Notifications.Data(), nil
	case "theme":
		return settings.Theme.Data(), nil
	default:
		return nil, ErrSettingNotFound
	}
}

// UpdateKey 更新单个配置项，取值校验与整体更新一致
func (s *SettingsService) UpdateKey(ctx context.Context, key string, value interface{}) (*model.Settings, error) {
	input := SettingsInput{}

	switch key {
	case "site_name":
		v, ok := value.(string)
		if !ok {
			return nil, ErrInvalidAction
		}
		input.SiteName = &v
	case "site_description":
		v, ok := value.(string)
		if !ok {
			return nil, ErrInvalidAction
		}
		input.SiteDescription = &v
	case "currency":
		v, ok := value.(string)
		if !ok {
			return nil, ErrInvalidAction
		}
		input.Currency = &v
	case "timezone":
		v, ok := value.(string)
		if !ok {
			return nil, ErrInvalidAction
		}
		input.Timezone = &v
	case "date_format":
		v, ok := value.(string)
		if !ok {
			return nil, ErrInvalidAction
		}
		input.DateFormat = &v
	case "time_format":
		v, ok := value.(string)
		if !ok {
			return nil, ErrInvalidAction
		}
		input.TimeFormat = &v
	case "items_per_page":
		// JSON 数字解出来是 float64
		switch v := value.(type) {
		case float64:
			n := int(v)
			input.ItemsPerPage = &n
		case int:
			input.ItemsPerPage = &v
		default:
			return nil, ErrInvalidAction
		}
	default:
		return nil, ErrSettingNotFound
	}

	return s.Update(ctx, input)
}

// Reset 重置为默认配置，保留文档主键
func (s *SettingsService) Reset(ctx context.Context) (*model.Settings, error) {
	settings, err := s.settingsRepo.GetOrCreate(ctx)
	if err != nil {
		return nil, err
	}

	defaults := model.DefaultSettings()
	defaults.ID = settings.ID
	defaults.CreatedAt = settings.CreatedAt

	if err := s.settingsRepo.Save(ctx, &defaults); err != nil {
		return nil, err
	}
	return &defaults, nil
}

func contains(list []string, v string) bool {
	for _, item := range list {
		if item == v {
			return true
		}
	}
	return false
}
