package service

import (
	"context"
	"errors"
	"testing"

	"marketo_admin_v1/internal/model"
	"marketo_admin_v1/internal/repository"
)

// ==================== 单元测试 ====================

func TestUserService_CreateWithDefaultPermissions(t *testing.T) {
	db := setupUserTestDB(t)
	svc := NewUserService(repository.NewUserRepository(db))
	ctx := context.Background()

	user, err := svc.Create(ctx, UserInput{
		Name:     "Viewer",
		Email:    "viewer@example.com",
		Password: "secret123",
		Role:     model.RoleViewer,
	})
	if err != nil {
		t.Fatalf("创建账号失败: %v", err)
	}

	perms := user.Permissions.Data()
	if perms.CanCreate || perms.CanEdit {
		t.Errorf("viewer 不应有写权限: %+v", perms)
	}
	if !perms.CanView || !perms.Dashboard {
		t.Errorf("viewer 应有读权限: %+v", perms)
	}
}

func TestUserService_RoleChangeResetsPermissions(t *testing.T) {
	db := setupUserTestDB(t)
	svc := NewUserService(repository.NewUserRepository(db))
	ctx := context.Background()

	user, _ := svc.Create(ctx, UserInput{
		Name:     "Gina",
		Email:    "gina@example.com",
		Password: "secret123",
		Role:     model.RoleViewer,
	})

	updated, err := svc.Update(ctx, user.ID, UserInput{Role: model.RoleAdmin})
	if err != nil {
		t.Fatalf("改角色失败: %v", err)
	}

	perms := updated.Permissions.Data()
	if !perms.Settings || !perms.CanDelete {
		t.Errorf("升级为 admin 后权限应重置: %+v", perms)
	}
}

func TestUserService_CreateInvalidRole(t *testing.T) {
	db := setupUserTestDB(t)
	svc := NewUserService(repository.NewUserRepository(db))

	_, err := svc.Create(context.Background(), UserInput{
		Name:     "Nobody",
		Email:    "nobody@example.com",
		Password: "secret123",
		Role:     "superuser",
	})
	if !errors.Is(err, ErrInvalidAction) {
		t.Errorf("非法角色应报 ErrInvalidAction, got %v", err)
	}
}

func TestUserService_LastAdminGuard(t *testing.T) {
	db := setupUserTestDB(t)
	svc := NewUserService(repository.NewUserRepository(db))
	ctx := context.Background()

	admin, _ := svc.Create(ctx, UserInput{
		Name:     "Only Admin",
		Email:    "only@example.com",
		Password: "secret123",
		Role:     model.RoleAdmin,
	})
	staff, _ := svc.Create(ctx, UserInput{
		Name:     "Staff",
		Email:    "staff@example.com",
		Password: "secret123",
		Role:     model.RoleStaff,
	})

	// 最后一个管理员不可删
	if err := svc.Delete(ctx, admin.ID); !errors.Is(err, ErrLastAdmin) {
		t.Errorf("期望 ErrLastAdmin, got %v", err)
	}

	// 非管理员随便删
	if err := svc.Delete(ctx, staff.ID); err != nil {
		t.Errorf("删除普通账号失败: %v", err)
	}

	// 有第二个管理员后可以删
	second, _ := svc.Create(ctx, UserInput{
		Name:     "Second Admin",
		Email:    "second@example.com",
		Password: "secret123",
		Role:     model.RoleAdmin,
	})
	if err := svc.Delete(ctx, admin.ID); err != nil {
		t.Errorf("存在其他管理员时删除失败: %v", err)
	}

	// 删到只剩一个又被保护
	if err := svc.Delete(ctx, second.ID); !errors.Is(err, ErrLastAdmin) {
		t.Errorf("期望 ErrLastAdmin, got %v", err)
	}
}

func TestUserService_DeleteNotFound(t *testing.T) {
	db := setupUserTestDB(t)
	svc := NewUserService(repository.NewUserRepository(db))

	if err := svc.Delete(context.Background(), 9999); !errors.Is(err, ErrNotFound) {
		t.Errorf("期望 ErrNotFound, got %v", err)
	}
}
