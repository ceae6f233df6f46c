package repository

import (
	"context"
	"time"

	"gorm.io/gorm"

	"marketo_admin_v1/internal/model"
)

// ==================== 过滤条件 ====================

// NotificationFilter 通知查询条件（始终 owner 维度）
type NotificationFilter struct {
	UserID    int64
	Type      string
	IsRead    *bool
	SortBy    string
	SortOrder string
	Page      int
	Limit     int
}

// NotificationOverview 通知统计概览
type NotificationOverview struct {
	Total  int64 `json:"total"`
	Unread int64 `json:"unread"`
	Read   int64 `json:"read"`
}

// NotificationTypeCount 按类型的数量
type NotificationTypeCount struct {
	Type  string `json:"type"`
	Count int64  `json:"count"`
}

// ==================== 接口定义 ====================

// NotificationRepository 通知仓储接口
type NotificationRepository interface {
	Create(ctx context.Context, notification *model.Notification) error

	// CreateIfNoUnread 条件插入：同一 (user, type, related) 存在未读记录则不写
	// 单条 INSERT ... SELECT ... WHERE NOT EXISTS，去重判断在库内原子完成
	CreateIfNoUnread(ctx context.Context, notification *model.Notification) (bool, error)

	List(ctx context.Context, filter NotificationFilter) ([]model.Notification, int64, error)
	CountUnread(ctx context.Context, userID int64) (int64, error)

	MarkRead(ctx context.Context, id, userID int64) (*model.Notification, error)
	MarkAllRead(ctx context.Context, userID int64) (int64, error)

	Delete(ctx context.Context, id, userID int64) error
	DeleteAll(ctx context.Context, userID int64) (int64, error)

	Overview(ctx context.Context, userID int64) (*NotificationOverview, error)
	CountByType(ctx context.Context, userID int64) ([]NotificationTypeCount, error)
}

// ==================== 仓储实现 ====================

type notificationRepo struct {
	db *gorm.DB
}

// NewNotificationRepository 创建通知仓储
func NewNotificationRepository(db *gorm.DB) NotificationRepository {
	return &notificationRepo{db: db}
}

func (r *notificationRepo) Create(ctx context.Context, notification *model.Notification) error {
	return r.db.WithContext(ctx).Create(notification).Error
}

func (r *notificationRepo) CreateIfNoUnread(ctx context.Context, n *model.Notification) (bool, error) {
	now := time.Now()
	result := r.db.WithContext(ctx).Exec(`
		INSERT INTO notifications
			(created_at, updated_at, user_id, type, title, message, priority, is_read, related_kind, related_id)
		SELECT ?, ?, ?, ?, ?, ?, ?, ?, ?, ?
		WHERE NOT EXISTS (
			SELECT 1 FROM notifications
			WHERE user_id = ? AND type = ? AND related_kind = ? AND related_id = ?
			  AND is_read = ? AND deleted_at IS NULL
		)`,
		now, now, n.UserID, n.Type, n.Title, n.Message, n.Priority, false, n.RelatedKind, n.RelatedID,
		n.UserID, n.Type, n.RelatedKind, n.RelatedID, false,
	)
	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected > 0, nil
}

func (r *notificationRepo) List(ctx context.Context, filter NotificationFilter) ([]model.Notification, int64, error) {
	query := r.db.WithContext(ctx).Model(&model.Notification{}).Where("user_id = ?", filter.UserID)

	if filter.Type != "" {
		query = query.Where("type = ?", filter.Type)
	}
	if filter.IsRead != nil {
		query = query.Where("is_read = ?", *filter.IsRead)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	query = query.Order(buildOrderClause(filter.SortBy, filter.SortOrder, notificationSortable))

	page, limit := normalizePage(filter.Page, filter.Limit)
	var notifications []model.Notification
	err := query.
		Offset((page - 1) * limit).
		Limit(limit).
		Find(&notifications).Error
	if err != nil {
		return nil, 0, err
	}

	return notifications, total, nil
}

func (r *notificationRepo) CountUnread(ctx context.Context, userID int64) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&model.Notification{}).
		Where("user_id = ? AND is_read = ?", userID, false).
		Count(&count).Error
	return count, err
}

func (r *notificationRepo) MarkRead(ctx context.Context, id, userID int64) (*model.Notification, error) {
	var notification model.Notification
	err := r.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", id, userID).
		First(&notification).Error
	if err != nil {
		return nil, err
	}

	notification.IsRead = true
	if err := r.db.WithContext(ctx).Save(&notification).Error; err != nil {
		return nil, err
	}
	return &notification, nil
}

func (r *notificationRepo) MarkAllRead(ctx context.Context, userID int64) (int64, error) {
	result := r.db.WithContext(ctx).Model(&model.Notification{}).
		Where("user_id = ? AND is_read = ?", userID, false).
		Update("is_read", true)
	return result.RowsAffected, result.Error
}

func (r *notificationRepo) Delete(ctx context.Context, id, userID int64) error {
	result := r.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", id, userID).
		Delete(&model.Notification{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *notificationRepo) DeleteAll(ctx context.Context, userID int64) (int64, error) {
	result := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Delete(&model.Notification{})
	return result.RowsAffected, result.Error
}

func (r *notificationRepo) Overview(ctx context.Context, userID int64) (*NotificationOverview, error) {
	overview := &NotificationOverview{}
	err := r.db.WithContext(ctx).Model(&model.Notification{}).
		Where("user_id = ?", userID).
		Select(`COUNT(*) AS total,
			COALESCE(SUM(CASE WHEN is_read THEN 0 ELSE 1 END), 0) AS unread,
			COALESCE(SUM(CASE WHEN is_read THEN 1 ELSE 0 END), 0) AS read`).
		Scan(overview).Error
	if err != nil {
		return nil, err
	}
	return overview, nil
}

func (r *notificationRepo) CountByType(ctx context.Context, userID int64) ([]NotificationTypeCount, error) {
	var counts []NotificationTypeCount
	err := r.db.WithContext(ctx).Model(&model.Notification{}).
		Where("user_id = ?", userID).
		Select("type, COUNT(*) AS count").
		Group("type").
		Order("count DESC").
		Scan(&counts).Error
	return counts, err
}
