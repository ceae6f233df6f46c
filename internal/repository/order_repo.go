package repository

import (
	"context"
	"time"

	"gorm.io/gorm"

	"marketo_admin_v1/internal/model"
)

// ==================== 过滤条件 ====================

// OrderFilter 订单查询条件
type OrderFilter struct {
	Search    string // 匹配订单号/客户名/邮箱
	Status    string
	Date      string // YYYY-MM-DD，按下单日过滤
	SortBy    string
	SortOrder string
	Page      int
	Limit     int
}

// OrderOverview 订单统计概览
type OrderOverview struct {
	TotalOrders     int64   `json:"total_orders"`
	TotalRevenue    float64 `json:"total_revenue"`
	AvgOrderValue   float64 `json:"avg_order_value"`
	PendingOrders   int64   `json:"pending_orders"`
	DeliveredOrders int64   `json:"delivered_orders"`
	CancelledOrders int64   `json:"cancelled_orders"`
}

// DailyOrderStat 按天的订单量/流水
type DailyOrderStat struct {
	Date    string  `json:"date"`
	Count   int64   `json:"count"`
	Revenue float64 `json:"revenue"`
}

// ==================== 接口定义 ====================

// OrderRepository 订单仓储接口
type OrderRepository interface {
	Create(ctx context.Context, order *model.Order) error
	GetByID(ctx context.Context, id int64) (*model.Order, error)
	Update(ctx context.Context, order *model.Order) error
	Delete(ctx context.Context, id int64) error

	List(ctx context.Context, filter OrderFilter) ([]model.Order, int64, error)
	ListByEmail(ctx context.Context, email string) ([]model.Order, error)
	ListRecent(ctx context.Context, limit int) ([]model.Order, error)

	// 统计
	Overview(ctx context.Context) (*OrderOverview, error)
	DailyStats(ctx context.Context, days int) ([]DailyOrderStat, error)
}

// ==================== 仓储实现 ====================

type orderRepo struct {
	db *gorm.DB
}

// NewOrderRepository 创建订单仓储
func NewOrderRepository(db *gorm.DB) OrderRepository {
	return &orderRepo{db: db}
}

func (r *orderRepo) Create(ctx context.Context, order *model.Order) error {
	return r.db.WithContext(ctx).Create(order).Error
}

func (r *orderRepo) GetByID(ctx context.Context, id int64) (*model.Order, error) {
	var order model.Order
	if err := r.db.WithContext(ctx).First(&order, id).Error; err != nil {
		return nil, err
	}
	return &order, nil
}

func (r *orderRepo) Update(ctx context.Context, order *model.Order) error {
	return r.db.WithContext(ctx).Save(order).Error
}

func (r *orderRepo) Delete(ctx context.Context, id int64) error {
	return r.db.WithContext(ctx).Delete(&model.Order{}, id).Error
}

func (r *orderRepo) List(ctx context.Context, filter OrderFilter) ([]model.Order, int64, error) {
	query := r.db.WithContext(ctx).Model(&model.Order{})

	if filter.Search != "" {
		like := "%" + filter.Search + "%"
		query = query.Where(
			"LOWER(order_number) LIKE LOWER(?) OR LOWER(user_name) LIKE LOWER(?) OR LOWER(user_email) LIKE LOWER(?)",
			like, like, like,
		)
	}
	if filter.Status != "" {
		query = query.Where("status = ?", filter.Status)
	}
	if filter.Date != "" {
		if day, err := time.Parse("2006-01-02", filter.Date); err == nil {
			query = query.Where("created_at >= ? AND created_at < ?", day, day.AddDate(0, 0, 1))
		}
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	query = query.Order(buildOrderClause(filter.SortBy, filter.SortOrder, orderSortable))

	page, limit := normalizePage(filter.Page, filter.Limit)
	var orders []model.Order
	err := query.
		Offset((page - 1) * limit).
		Limit(limit).
		Find(&orders).Error
	if err != nil {
		return nil, 0, err
	}

	return orders, total, nil
}

func (r *orderRepo) ListByEmail(ctx context.Context, email string) ([]model.Order, error) {
	var orders []model.Order
	err := r.db.WithContext(ctx).
		Where("user_email = ?", email).
		Order("created_at DESC").
		Find(&orders).Error
	return orders, err
}

func (r *orderRepo) ListRecent(ctx context.Context, limit int) ([]model.Order, error) {
	var orders []model.Order
	err := r.db.WithContext(ctx).
		Order("created_at DESC").
		Limit(limit).
		Find(&orders).Error
	return orders, err
}

func (r *orderRepo) Overview(ctx context.Context) (*OrderOverview, error) {
	overview := &OrderOverview{}
	err := r.db.WithContext(ctx).Model(&model.Order{}).
		Select(`COUNT(*) AS total_orders,
			COALESCE(SUM(total), 0) AS total_revenue,
			COALESCE(AVG(total), 0) AS avg_order_value,
			COALESCE(SUM(CASE WHEN status = 'pending' THEN 1 ELSE 0 END), 0) AS pending_orders,
			COALESCE(SUM(CASE WHEN status = 'delivered' THEN 1 ELSE 0 END), 0) AS delivered_orders,
			COALESCE(SUM(CASE WHEN status = 'cancelled' THEN 1 ELSE 0 END), 0) AS cancelled_orders`).
		Scan(overview).Error
	if err != nil {
		return nil, err
	}
	return overview, nil
}

// DailyStats 按天汇总最近 days 天的单量与流水
// DATE() 在 Postgres 与 SQLite 上语义一致，方便测试环境复用
func (r *orderRepo) DailyStats(ctx context.Context, days int) ([]DailyOrderStat, error) {
	var stats []DailyOrderStat
	err := r.db.WithContext(ctx).Model(&model.Order{}).
		Select("DATE(created_at) AS date, COUNT(*) AS count, COALESCE(SUM(total), 0) AS revenue").
		Group("DATE(created_at)").
		Order("date DESC").
		Limit(days).
		Scan(&stats).Error
	return stats, err
}
