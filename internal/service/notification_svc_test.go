package service

import (
	"context"
	"testing"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"marketo_admin_v1/internal/model"
	"marketo_admin_v1/internal/repository"
)

// ==================== 测试辅助 ====================

func setupNotificationTestDB(t *testing.T) *gorm.DB {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("连接测试数据库失败: %v", err)
	}

	if err := db.AutoMigrate(&model.Notification{}); err != nil {
		t.Fatalf("建表失败: %v", err)
	}
	return db
}

func newNotificationService(db *gorm.DB) *NotificationService {
	return NewNotificationService(repository.NewNotificationRepository(db))
}

func lowStockProduct() *model.Product {
	return &model.Product{
		BaseModel: model.BaseModel{ID: 42},
		Name:      "Ceramic Mug",
		Stock:     3,
	}
}

// ==================== 单元测试 ====================

func TestNotificationService_LowStockMessage(t *testing.T) {
	db := setupNotificationTestDB(t)
	svc := newNotificationService(db)
	ctx := context.Background()

	svc.NotifyLowStock(ctx, lowStockProduct(), 1)

	var n model.Notification
	if err := db.First(&n).Error; err != nil {
		t.Fatalf("通知未写入: %v", err)
	}
	if n.Message != "Ceramic Mug is running low on stock (3 remaining)" {
		t.Errorf("消息格式错误: %q", n.Message)
	}
	if n.Type != model.NotificationTypeLowStock || n.Priority != model.NotificationPriorityHigh {
		t.Errorf("类型/优先级错误: %s %s", n.Type, n.Priority)
	}
	if n.RelatedKind != model.RelatedKindProduct || n.RelatedID != 42 {
		t.Errorf("关联引用错误: %s %d", n.RelatedKind, n.RelatedID)
	}
	if n.IsRead {
		t.Errorf("新通知应为未读")
	}
}

func TestNotificationService_LowStockDedupe(t *testing.T) {
	db := setupNotificationTestDB(t)
	svc := newNotificationService(db)
	ctx := context.Background()

	product := lowStockProduct()

	// 重复触发只保留一条未读
	svc.NotifyLowStock(ctx, product, 1)
	svc.NotifyLowStock(ctx, product, 1)
	svc.NotifyLowStock(ctx, product, 1)

	var count int64
	db.Model(&model.Notification{}).Count(&count)
	if count != 1 {
		t.Fatalf("去重失败, 期望 1 条, got %d", count)
	}

	// 另一个用户不受影响
	svc.NotifyLowStock(ctx, product, 2)
	db.Model(&model.Notification{}).Count(&count)
	if count != 2 {
		t.Fatalf("不同用户应各有一条, got %d", count)
	}

	// 读过之后可以再次提醒
	var first model.Notification
	db.Where("user_id = ?", 1).First(&first)
	if _, err := svc.MarkRead(ctx, first.ID, 1); err != nil {
		t.Fatalf("标记已读失败: %v", err)
	}

	svc.NotifyLowStock(ctx, product, 1)
	db.Model(&model.Notification{}).Where("user_id = ?", 1).Count(&count)
	if count != 2 {
		t.Errorf("已读后应允许新提醒, got %d", count)
	}
}

func TestNotificationService_LowStockSkipsHealthyStock(t *testing.T) {
	db := setupNotificationTestDB(t)
	svc := newNotificationService(db)
	ctx := context.Background()

	svc.NotifyLowStock(ctx, &model.Product{
		BaseModel: model.BaseModel{ID: 7},
		Name:      "Poster",
		Stock:     model.LowStockThreshold,
	}, 1)

	var count int64
	db.Model(&model.Notification{}).Count(&count)
	if count != 0 {
		t.Errorf("库存达标不应产生通知, got %d", count)
	}
}

func TestNotificationService_NewOrderMessage(t *testing.T) {
	db := setupNotificationTestDB(t)
	svc := newNotificationService(db)
	ctx := context.Background()

	order := &model.Order{
		BaseModel:   model.BaseModel{ID: 11},
		OrderNumber: "ORD-260830-A1B2C3",
		Total:       149.5,
	}

	// 新订单通知不去重，次次都发
	svc.NotifyNewOrder(ctx, order, 1)
	svc.NotifyNewOrder(ctx, order, 1)

	var notifications []model.Notification
	db.Find(&notifications)
	if len(notifications) != 2 {
		t.Fatalf("新订单通知不应去重, got %d", len(notifications))
	}
	if notifications[0].Message != "Order #0-A1B2C3 received for $149.50" {
		t.Errorf("消息格式错误: %q", notifications[0].Message)
	}
	if notifications[0].Priority != model.NotificationPriorityMedium {
		t.Errorf("优先级应为 medium, got %s", notifications[0].Priority)
	}
	if notifications[0].RelatedKind != model.RelatedKindOrder || notifications[0].RelatedID != 11 {
		t.Errorf("关联引用错误")
	}
}

func TestNotificationService_OwnerScoping(t *testing.T) {
	db := setupNotificationTestDB(t)
	svc := newNotificationService(db)
	ctx := context.Background()

	svc.NotifyLowStock(ctx, lowStockProduct(), 1)

	var n model.Notification
	db.First(&n)

	// 其他用户不能操作别人的通知
	if _, err := svc.MarkRead(ctx, n.ID, 2); err == nil {
		t.Errorf("跨用户标记应失败")
	}
	if err := svc.Delete(ctx, n.ID, 2); err == nil {
		t.Errorf("跨用户删除应失败")
	}

	// 本人操作正常
	if err := svc.Delete(ctx, n.ID, 1); err != nil {
		t.Errorf("本人删除失败: %v", err)
	}
}

func TestNotificationService_UnreadCountAndMarkAll(t *testing.T) {
	db := setupNotificationTestDB(t)
	svc := newNotificationService(db)
	ctx := context.Background()

	for i := int64(1); i <= 3; i++ {
		svc.NotifyLowStock(ctx, &model.Product{
			BaseModel: model.BaseModel{ID: i},
			Name:      "P",
			Stock:     1,
		}, 1)
	}

	count, err := svc.UnreadCount(ctx, 1)
	if err != nil || count != 3 {
		t.Fatalf("未读数应为 3, got %d err=%v", count, err)
	}

	affected, err := svc.MarkAllRead(ctx, 1)
	if err != nil || affected != 3 {
		t.Fatalf("全部已读 affected 应为 3, got %d err=%v", affected, err)
	}

	count, _ = svc.UnreadCount(ctx, 1)
	if count != 0 {
		t.Errorf("全部已读后未读数应为 0, got %d", count)
	}
}
