package service

import (
	"context"
	"testing"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"marketo_admin_v1/internal/model"
	"marketo_admin_v1/internal/repository"
)

func setupBootstrapTestDB(t *testing.T) *gorm.DB {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("连接测试数据库失败: %v", err)
	}

	if err := db.AutoMigrate(&model.User{}, &model.Settings{}); err != nil {
		t.Fatalf("建表失败: %v", err)
	}
	return db
}

func TestBootstrapService_Idempotent(t *testing.T) {
	db := setupBootstrapTestDB(t)
	svc := NewBootstrapService(
		repository.NewUserRepository(db),
		repository.NewSettingsRepository(db),
	)
	ctx := context.Background()

	// 重复执行不产生副本
	for i := 0; i < 3; i++ {
		if err := svc.Run(ctx); err != nil {
			t.Fatalf("第 %d 次自举失败: %v", i+1, err)
		}
	}

	var userCount, settingsCount int64
	db.Model(&model.User{}).Count(&userCount)
	db.Model(&model.Settings{}).Count(&settingsCount)
	if userCount != 1 || settingsCount != 1 {
		t.Errorf("自举应幂等: users=%d settings=%d", userCount, settingsCount)
	}

	var admin model.User
	db.Where("email = ?", "admin@admin.com").First(&admin)
	if admin.Name != "Marketo" || admin.Role != model.RoleAdmin {
		t.Errorf("默认管理员信息错误: %s %s", admin.Name, admin.Role)
	}
	if err := bcrypt.CompareHashAndPassword([]byte(admin.Password), []byte("admin123")); err != nil {
		t.Errorf("默认密码校验失败: %v", err)
	}
	if !admin.Permissions.Data().Settings {
		t.Errorf("默认管理员应有完整权限")
	}
}

func TestBootstrapService_KeepsExistingAdmin(t *testing.T) {
	db := setupBootstrapTestDB(t)
	userRepo := repository.NewUserRepository(db)
	svc := NewBootstrapService(userRepo, repository.NewSettingsRepository(db))
	ctx := context.Background()

	// 预置同邮箱账号，自举不应覆盖
	existing := &model.User{
		Name:     "Custom Admin",
		Email:    "admin@admin.com",
		Password: "already-hashed",
		Role:     model.RoleAdmin,
		IsActive: true,
	}
	db.Create(existing)

	if err := svc.Run(ctx); err != nil {
		t.Fatalf("自举失败: %v", err)
	}

	var admin model.User
	db.Where("email = ?", "admin@admin.com").First(&admin)
	if admin.Name != "Custom Admin" || admin.Password != "already-hashed" {
		t.Errorf("已有账号被覆盖: %s", admin.Name)
	}
}
