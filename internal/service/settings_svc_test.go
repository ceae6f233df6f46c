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

func setupSettingsTestDB(t *testing.T) *gorm.DB {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("连接测试数据库失败: %v", err)
	}

	if err := db.AutoMigrate(&model.Settings{}); err != nil {
		t.Fatalf("建表失败: %v", err)
	}
	return db
}

func newSettingsService(db *gorm.DB) *SettingsService {
	return NewSettingsService(repository.NewSettingsRepository(db))
}

// ==================== 单元测试 ====================

func TestSettingsService_LazyCreateDefaults(t *testing.T) {
	db := setupSettingsTestDB(t)
	svc := newSettingsService(db)
	ctx := context.Background()

	settings, err := svc.Get(ctx)
	if err != nil {
		t.Fatalf("获取配置失败: %v", err)
	}
	if settings.SiteName != "Marketo" || settings.Currency != "USD" {
		t.Errorf("默认配置错误: %s %s", settings.SiteName, settings.Currency)
	}

	// 重复读取不产生副本
	svc.Get(ctx)
	var count int64
	db.Model(&model.Settings{}).Count(&count)
	if count != 1 {
		t.Errorf("配置文档应只有一份, got %d", count)
	}
}

func TestSettingsService_UpdateValidation(t *testing.T) {
	db := setupSettingsTestDB(t)
	svc := newSettingsService(db)
	ctx := context.Background()

	bad := "DOGE"
	if _, err := svc.Update(ctx, SettingsInput{Currency: &bad}); !errors.Is(err, ErrInvalidAction) {
		t.Errorf("非法货币应报 ErrInvalidAction, got %v", err)
	}

	badFormat := "DD.MM.YYYY"
	if _, err := svc.Update(ctx, SettingsInput{DateFormat: &badFormat}); !errors.Is(err, ErrInvalidAction) {
		t.Errorf("非法日期格式应报 ErrInvalidAction, got %v", err)
	}

	eur := "EUR"
	updated, err := svc.Update(ctx, SettingsInput{Currency: &eur})
	if err != nil {
		t.Fatalf("更新货币失败: %v", err)
	}
	if updated.Currency != "EUR" {
		t.Errorf("货币应为 EUR, got %s", updated.Currency)
	}
}

func TestSettingsService_KeyAccess(t *testing.T) {
	db := setupSettingsTestDB(t)
	svc := newSettingsService(db)
	ctx := context.Background()

	value, err := svc.GetKey(ctx, "currency")
	if err != nil || value != "USD" {
		t.Fatalf("读取单项失败: %v %v", value, err)
	}

	if _, err := svc.GetKey(ctx, "nonsense"); !errors.Is(err, ErrSettingNotFound) {
		t.Errorf("未知键应报 ErrSettingNotFound, got %v", err)
	}

	// JSON 数字按 float64 解出
	updated, err := svc.UpdateKey(ctx, "items_per_page", float64(25))
	if err != nil {
		t.Fatalf("更新单项失败: %v", err)
	}
	if updated.ItemsPerPage != 25 {
		t.Errorf("items_per_page 应为 25, got %d", updated.ItemsPerPage)
	}

	if _, err := svc.UpdateKey(ctx, "currency", 42); !errors.Is(err, ErrInvalidAction) {
		t.Errorf("类型不符应报 ErrInvalidAction, got %v", err)
	}
}

func TestSettingsService_Reset(t *testing.T) {
	db := setupSettingsTestDB(t)
	svc := newSettingsService(db)
	ctx := context.Background()

	name := "Acme Panel"
	svc.Update(ctx, SettingsInput{SiteName: &name})

	reset, err := svc.Reset(ctx)
	if err != nil {
		t.Fatalf("重置失败: %v", err)
	}
	if reset.SiteName != "Marketo" {
		t.Errorf("重置后应回到默认值, got %s", reset.SiteName)
	}

	var count int64
	db.Model(&model.Settings{}).Count(&count)
	if count != 1 {
		t.Errorf("重置不应产生副本, got %d", count)
	}
}
