package service

import (
	"context"
	"time"

	"marketo_admin_v1/internal/model"
	"marketo_admin_v1/internal/repository"
)

// DashboardService 后台首页聚合统计
type DashboardService struct {
	productRepo  repository.ProductRepository
	orderRepo    repository.OrderRepository
	customerRepo repository.CustomerRepository
	startedAt    time.Time
}

func NewDashboardService(
	productRepo repository.ProductRepository,
	orderRepo repository.OrderRepository,
	customerRepo repository.CustomerRepository,
) *DashboardService {
	return &DashboardService{
		productRepo:  productRepo,
		orderRepo:    orderRepo,
		customerRepo: customerRepo,
		startedAt:    time.Now(),
	}
}

// LowStockItem 低库存面板条目
type LowStockItem struct {
	ID    int64  `json:"id"`
	Name  string `json:"name"`
	Stock int    `json:"stock"`
	Image string `json:"image,omitempty"`
}

// DashboardStats 首页聚合数据，一次请求带全所有面板
type DashboardStats struct {
	Orders          *repository.OrderOverview    `json:"orders"`
	Products        *repository.ProductOverview  `json:"products"`
	Customers       *repository.CustomerOverview `json:"customers"`
	RecentOrders    []model.Order                `json:"recent_orders"`
	LowStock        []LowStockItem               `json:"low_stock_products"`
	RecentCustomers []model.Customer             `json:"recent_customers"`
}

// Stats 聚合各仓储的概览数据
func (s *DashboardService) Stats(ctx context.Context) (*DashboardStats, error) {
	orders, err := s.orderRepo.Overview(ctx)
	if err != nil {
		return nil, err
	}
	products, err := s.productRepo.Overview(ctx)
	if err != nil {
		return nil, err
	}
	customers, err := s.customerRepo.Overview(ctx)
	if err != nil {
		return nil, err
	}

	recentOrders, err := s.orderRepo.ListRecent(ctx, 5)
	if err != nil {
		return nil, err
	}

	lowStockProducts, err := s.productRepo.ListLowStock(ctx, 6)
	if err != nil {
		return nil, err
	}
	lowStock := make([]LowStockItem, 0, len(lowStockProducts))
	for _, p := range lowStockProducts {
		lowStock = append(lowStock, LowStockItem{
			ID:    p.ID,
			Name:  p.Name,
			Stock: p.Stock,
			Image: p.Image,
		})
	}

	recentCustomers, err := s.customerRepo.ListRecent(ctx, 5, true)
	if err != nil {
		return nil, err
	}

	return &DashboardStats{
		Orders:          orders,
		Products:        products,
		Customers:       customers,
		RecentOrders:    recentOrders,
		LowStock:        lowStock,
		RecentCustomers: recentCustomers,
	}, nil
}

// Health 健康检查数据
type Health struct {
	Status    string  `json:"status"`
	Timestamp string  `json:"timestamp"`
	Uptime    float64 `json:"uptime"`
}

// Health 返回进程运行状态
func (s *DashboardService) Health() Health {
	return Health{
		Status:    "ok",
		Timestamp: time.Now().UTC().Format(time.RFC3339),
		Uptime:    time.Since(s.startedAt).Seconds(),
	}
}
