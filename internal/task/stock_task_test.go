package task

import (
	"context"
	"testing"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"marketo_admin_v1/internal/model"
	"marketo_admin_v1/internal/repository"
	"marketo_admin_v1/internal/service"
)

// ==================== Task 测试模型 ====================

// 商品表的 postgres 专用列在 sqlite 下建不出来，用精简模型代替
type TestStockProduct struct {
	ID        int64 `gorm:"primaryKey"`
	Name      string
	Stock     int
	Status    string
	DeletedAt gorm.DeletedAt `gorm:"index"`
}

func (TestStockProduct) TableName() string { return "products" }

// ==================== 辅助函数 ====================

func setupStockTaskTestDB(t *testing.T) *gorm.DB {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("连接测试数据库失败: %v", err)
	}

	err = db.AutoMigrate(
		&TestStockProduct{},
		&model.User{},
		&model.Notification{},
	)
	if err != nil {
		t.Fatalf("数据库迁移失败: %v", err)
	}

	return db
}

func newTestStockTask(db *gorm.DB) *StockTask {
	notificationRepo := repository.NewNotificationRepository(db)
	return NewStockTask(
		repository.NewProductRepository(db),
		repository.NewUserRepository(db),
		service.NewNotificationService(notificationRepo),
	)
}

// ==================== StockTask 测试 ====================

func TestStockTask_SweepNotifiesAdmins(t *testing.T) {
	db := setupStockTaskTestDB(t)

	db.Create(&TestStockProduct{ID: 1, Name: "Widget", Stock: 2, Status: "active"})
	db.Create(&TestStockProduct{ID: 2, Name: "Gadget", Stock: 5, Status: "active"})
	db.Create(&TestStockProduct{ID: 3, Name: "Anvil", Stock: 50, Status: "active"})

	db.Create(&model.User{Name: "Admin A", Email: "a@example.com", Password: "x", Role: model.RoleAdmin})
	db.Create(&model.User{Name: "Admin B", Email: "b@example.com", Password: "x", Role: model.RoleAdmin})
	db.Create(&model.User{Name: "Staff", Email: "s@example.com", Password: "x", Role: model.RoleStaff})

	task := newTestStockTask(db)
	task.sweepJob(context.Background())

	// 2 个低库存商品 × 2 名管理员
	var count int64
	db.Model(&model.Notification{}).Count(&count)
	if count != 4 {
		t.Errorf("通知数量 = %d, want 4", count)
	}

	// staff 不应收到通知
	var staffCount int64
	db.Model(&model.Notification{}).
		Joins("JOIN users ON users.id = notifications.user_id").
		Where("users.role = ?", model.RoleStaff).
		Count(&staffCount)
	if staffCount != 0 {
		t.Errorf("staff 收到了 %d 条通知, want 0", staffCount)
	}
}

func TestStockTask_SweepIsIdempotent(t *testing.T) {
	db := setupStockTaskTestDB(t)

	db.Create(&TestStockProduct{ID: 1, Name: "Widget", Stock: 2, Status: "active"})
	db.Create(&model.User{Name: "Admin", Email: "a@example.com", Password: "x", Role: model.RoleAdmin})

	task := newTestStockTask(db)
	task.sweepJob(context.Background())
	task.sweepJob(context.Background())
	task.sweepJob(context.Background())

	// 未读通知去重，重复巡检不产生新记录
	var count int64
	db.Model(&model.Notification{}).Count(&count)
	if count != 1 {
		t.Errorf("通知数量 = %d, want 1", count)
	}
}

func TestStockTask_SweepStopsOnCancel(t *testing.T) {
	db := setupStockTaskTestDB(t)

	db.Create(&TestStockProduct{ID: 1, Name: "Widget", Stock: 2, Status: "active"})
	db.Create(&model.User{Name: "Admin", Email: "a@example.com", Password: "x", Role: model.RoleAdmin})

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	task := newTestStockTask(db)
	task.sweepJob(ctx)

	// 已取消的 ctx 下查询会失败，不应写入任何通知
	var count int64
	db.Model(&model.Notification{}).Count(&count)
	if count != 0 {
		t.Errorf("通知数量 = %d, want 0", count)
	}
}
