package service

import (
	"context"
	"errors"
	"fmt"
	"log"

	"gorm.io/gorm"

	"marketo_admin_v1/internal/model"
	"marketo_admin_v1/internal/repository"
)

// NotificationService 通知查询 + 派生通知发射
type NotificationService struct {
	notificationRepo repository.NotificationRepository
}

func NewNotificationService(notificationRepo repository.NotificationRepository) *NotificationService {
	return &NotificationService{notificationRepo: notificationRepo}
}

// ==================== 派生通知发射 ====================
// 两个 Notify* 都是尽力而为：由商品/订单写入路径同步调用，
// 失败只记日志不上抛，不影响触发它的主操作。

// NotifyLowStock 库存跌破阈值时给用户插入一条未读低库存通知
// 去重键 (user, low_stock, product, 未读)，由仓储层条件插入原子保证
func (s *NotificationService) NotifyLowStock(ctx context.Context, product *model.Product, userID int64) {
	if !product.IsLowStock() {
		return
	}

	created, err := s.notificationRepo.CreateIfNoUnread(ctx, &model.Notification{
		UserID:      userID,
		Type:        model.NotificationTypeLowStock,
		Title:       "Low Stock Alert",
		Message:     fmt.Sprintf("%s is running low on stock (%d remaining)", product.Name, product.Stock),
		Priority:    model.NotificationPriorityHigh,
		RelatedKind: model.RelatedKindProduct,
		RelatedID:   product.ID,
	})
	if err != nil {
		log.Printf("低库存通知写入失败 product=%d user=%d: %v", product.ID, userID, err)
		return
	}
	if created {
		log.Printf("低库存通知已创建 product=%d stock=%d", product.ID, product.Stock)
	}
}

// NotifyNewOrder 新订单通知，不去重
func (s *NotificationService) NotifyNewOrder(ctx context.Context, order *model.Order, userID int64) {
	suffix := order.OrderNumber
	if len(suffix) > 8 {
		suffix = suffix[len(suffix)-8:]
	}

	err := s.notificationRepo.Create(ctx, &model.Notification{
		UserID:      userID,
		Type:        model.NotificationTypeNewOrder,
		Title:       "New Order",
		Message:     fmt.Sprintf("Order #%s received for $%.2f", suffix, order.Total),
		Priority:    model.NotificationPriorityMedium,
		RelatedKind: model.RelatedKindOrder,
		RelatedID:   order.ID,
	})
	if err != nil {
		log.Printf("新订单通知写入失败 order=%d user=%d: %v", order.ID, userID, err)
	}
}

// ==================== 查询与维护 ====================

func (s *NotificationService) List(ctx context.Context, filter repository.NotificationFilter) ([]model.Notification, int64, error) {
	return s.notificationRepo.List(ctx, filter)
}

func (s *NotificationService) UnreadCount(ctx context.Context, userID int64) (int64, error) {
	return s.notificationRepo.CountUnread(ctx, userID)
}

func (s *NotificationService) MarkRead(ctx context.Context, id, userID int64) (*model.Notification, error) {
	notification, err := s.notificationRepo.MarkRead(ctx, id, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return notification, nil
}

func (s *NotificationService) MarkAllRead(ctx context.Context, userID int64) (int64, error) {
	return s.notificationRepo.MarkAllRead(ctx, userID)
}

func (s *NotificationService) Delete(ctx context.Context, id, userID int64) error {
	err := s.notificationRepo.Delete(ctx, id, userID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrNotFound
	}
	return err
}

func (s *NotificationService) DeleteAll(ctx context.Context, userID int64) (int64, error) {
	return s.notificationRepo.DeleteAll(ctx, userID)
}

func (s *NotificationService) Stats(ctx context.Context, userID int64) (*repository.NotificationOverview, []repository.NotificationTypeCount, error) {
	overview, err := s.notificationRepo.Overview(ctx, userID)
	if err != nil {
		return nil, nil, err
	}
	byType, err := s.notificationRepo.CountByType(ctx, userID)
	if err != nil {
		return nil, nil, err
	}
	return overview, byType, nil
}
