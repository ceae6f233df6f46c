package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"marketo_admin_v1/internal/model"
)

// ==================== 接口定义 ====================

// SettingsRepository 配置仓储接口（单例文档）
type SettingsRepository interface {
	// GetOrCreate 返回配置文档，不存在则以默认值懒创建
	GetOrCreate(ctx context.Context) (*model.Settings, error)
	// Exists 是否已有配置文档（启动自举用）
	Exists(ctx context.Context) (bool, error)
	Save(ctx context.Context, settings *model.Settings) error
}

// ==================== 仓储实现 ====================

type settingsRepo struct {
	db *gorm.DB
}

// NewSettingsRepository 创建配置仓储
func NewSettingsRepository(db *gorm.DB) SettingsRepository {
	return &settingsRepo{db: db}
}

func (r *settingsRepo) GetOrCreate(ctx context.Context) (*model.Settings, error) {
	var settings model.Settings
	err := r.db.WithContext(ctx).First(&settings).Error
	if err == nil {
		return &settings, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	settings = model.DefaultSettings()
	if err := r.db.WithContext(ctx).Create(&settings).Error; err != nil {
		return nil, err
	}
	return &settings, nil
}

func (r *settingsRepo) Exists(ctx context.Context) (bool, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&model.Settings{}).Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *settingsRepo) Save(ctx context.Context, settings *model.Settings) error {
	return r.db.WithContext(ctx).Save(settings).Error
}
