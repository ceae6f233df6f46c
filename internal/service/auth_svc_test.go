package service

import (
	"context"
	"errors"
	"testing"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"marketo_admin_v1/internal/model"
	"marketo_admin_v1/internal/repository"
)

// ==================== 测试辅助 ====================

func setupUserTestDB(t *testing.T) *gorm.DB {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("连接测试数据库失败: %v", err)
	}

	if err := db.AutoMigrate(&model.User{}); err != nil {
		t.Fatalf("建表失败: %v", err)
	}
	return db
}

func newAuthService(db *gorm.DB) *AuthService {
	return NewAuthService(repository.NewUserRepository(db))
}

// ==================== 单元测试 ====================

func TestAuthService_RegisterAndLogin(t *testing.T) {
	db := setupUserTestDB(t)
	svc := newAuthService(db)
	ctx := context.Background()

	result, err := svc.Register(ctx, "Alice", "alice@example.com", "secret123")
	if err != nil {
		t.Fatalf("注册失败: %v", err)
	}
	if result.Token == "" {
		t.Errorf("注册应直接发放令牌")
	}
	if result.User.Role != model.RoleAdmin {
		t.Errorf("注册默认角色应为 admin, got %s", result.User.Role)
	}
	if result.User.Password == "secret123" {
		t.Errorf("密码不应明文入库")
	}

	login, err := svc.Login(ctx, "alice@example.com", "secret123")
	if err != nil {
		t.Fatalf("登录失败: %v", err)
	}
	if login.Token == "" {
		t.Errorf("登录应返回令牌")
	}
	if login.User.LastLogin == nil {
		t.Errorf("登录应记录 last_login")
	}
}

func TestAuthService_RegisterDuplicateEmail(t *testing.T) {
	db := setupUserTestDB(t)
	svc := newAuthService(db)
	ctx := context.Background()

	svc.Register(ctx, "Bob", "bob@example.com", "secret123")
	if _, err := svc.Register(ctx, "Bobby", "bob@example.com", "secret456"); !errors.Is(err, ErrDuplicateEmail) {
		t.Errorf("期望 ErrDuplicateEmail, got %v", err)
	}
}

func TestAuthService_LoginWrongPassword(t *testing.T) {
	db := setupUserTestDB(t)
	svc := newAuthService(db)
	ctx := context.Background()

	svc.Register(ctx, "Carol", "carol@example.com", "secret123")

	if _, err := svc.Login(ctx, "carol@example.com", "wrong"); !errors.Is(err, ErrInvalidCredentials) {
		t.Errorf("密码错误应报 ErrInvalidCredentials, got %v", err)
	}

	// 失败后立即重试被限频
	if _, err := svc.Login(ctx, "carol@example.com", "secret123"); !errors.Is(err, ErrTooManyAttempts) {
		t.Errorf("连续尝试应报 ErrTooManyAttempts, got %v", err)
	}
}

func TestAuthService_LoginUnknownUser(t *testing.T) {
	db := setupUserTestDB(t)
	svc := newAuthService(db)

	// 不存在的账号与密码错误返回同一个错误，避免账号枚举
	if _, err := svc.Login(context.Background(), "ghost@example.com", "whatever"); !errors.Is(err, ErrInvalidCredentials) {
		t.Errorf("期望 ErrInvalidCredentials, got %v", err)
	}
}

func TestAuthService_LoginDisabledAccount(t *testing.T) {
	db := setupUserTestDB(t)
	svc := newAuthService(db)
	ctx := context.Background()

	result, _ := svc.Register(ctx, "Dave", "dave@example.com", "secret123")
	db.Model(&model.User{}).Where("id = ?", result.User.ID).Update("is_active", false)

	if _, err := svc.Login(ctx, "dave@example.com", "secret123"); !errors.Is(err, ErrAccountDisabled) {
		t.Errorf("停用账号应报 ErrAccountDisabled, got %v", err)
	}
}

func TestAuthService_ChangePassword(t *testing.T) {
	db := setupUserTestDB(t)
	svc := newAuthService(db)
	ctx := context.Background()

	result, _ := svc.Register(ctx, "Eve", "eve@example.com", "oldpass123")
	userID := result.User.ID

	if err := svc.ChangePassword(ctx, userID, "wrong", "newpass123"); !errors.Is(err, ErrWrongPassword) {
		t.Errorf("旧密码错误应报 ErrWrongPassword, got %v", err)
	}

	if err := svc.ChangePassword(ctx, userID, "oldpass123", "newpass123"); err != nil {
		t.Fatalf("修改密码失败: %v", err)
	}

	if _, err := svc.Login(ctx, "eve@example.com", "newpass123"); err != nil {
		t.Errorf("新密码登录失败: %v", err)
	}
}

func TestAuthService_UpdateProfile(t *testing.T) {
	db := setupUserTestDB(t)
	svc := newAuthService(db)
	ctx := context.Background()

	result, _ := svc.Register(ctx, "Frank", "frank@example.com", "secret123")

	user, err := svc.UpdateProfile(ctx, result.User.ID, ProfileInput{
		Name:  strPtr("Franklin"),
		Phone: strPtr("555-0100"),
	})
	if err != nil {
		t.Fatalf("更新资料失败: %v", err)
	}
	if user.Name != "Franklin" || user.Phone != "555-0100" {
		t.Errorf("资料未更新: %s %s", user.Name, user.Phone)
	}
	// 角色不可通过资料接口变更
	if user.Role != model.RoleAdmin {
		t.Errorf("角色不应变化, got %s", user.Role)
	}
}
