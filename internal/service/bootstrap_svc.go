package service

import (
	"context"
	"errors"
	"log"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	"marketo_admin_v1/internal/model"
	"marketo_admin_v1/internal/repository"
)

// 默认管理员账号，首次启动时自举
const (
	defaultAdminName     = "Marketo"
	defaultAdminEmail    = "admin@admin.com"
	defaultAdminPassword = "admin123"
)

// BootstrapService 启动自举：保证默认管理员和配置文档存在
// 所有操作幂等，重复启动不会产生副本
type BootstrapService struct {
	userRepo     repository.UserRepository
	settingsRepo repository.SettingsRepository
}

func NewBootstrapService(userRepo repository.UserRepository, settingsRepo repository.SettingsRepository) *BootstrapService {
	return &BootstrapService{
		userRepo:     userRepo,
		settingsRepo: settingsRepo,
	}
}

// Run 依次执行所有自举步骤
func (s *BootstrapService) Run(ctx context.Context) error {
	if err := s.EnsureDefaultAdmin(ctx); err != nil {
		return err
	}
	return s.EnsureDefaultSettings(ctx)
}

// EnsureDefaultAdmin 默认管理员不存在时创建
func (s *BootstrapService) EnsureDefaultAdmin(ctx context.Context) error {
	_, err := s.userRepo.GetByEmail(ctx, defaultAdminEmail)
	if err == nil {
		return nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(defaultAdminPassword), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	admin := &model.User{
		Name:        defaultAdminName,
		Email:       defaultAdminEmail,
		Password:    string(hashed),
		Role:        model.RoleAdmin,
		IsActive:    true,
		Permissions: datatypes.NewJSONType(model.DefaultPermissions(model.RoleAdmin)),
	}

	if err := s.userRepo.Create(ctx, admin); err != nil {
		return err
	}

	log.Printf("已创建默认管理员账号: %s", defaultAdminEmail)
	return nil
}

// EnsureDefaultSettings 配置文档不存在时写入默认配置
func (s *BootstrapService) EnsureDefaultSettings(ctx context.Context) error {
	exists, err := s.settingsRepo.Exists(ctx)
	if err != nil {
		return err
	}
	if exists {
		return nil
	}

	if _, err := s.settingsRepo.GetOrCreate(ctx); err != nil {
		return err
	}

	log.Println("已写入默认系统配置")
	return nil
}
