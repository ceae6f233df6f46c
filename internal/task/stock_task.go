package task

import (
	"context"
	"log"
	"time"

	"github.com/robfig/cron/v3"

	"marketo_admin_v1/internal/repository"
	"marketo_admin_v1/internal/service"
)

// StockTask 周期巡检低库存商品，给所有管理员补发未读低库存通知
// 通知插入是去重的，重复巡检不会刷屏
type StockTask struct {
	ProductRepo     repository.ProductRepository
	UserRepo        repository.UserRepository
	NotificationSvc *service.NotificationService
	Cron            *cron.Cron

	sweepLimit int
}

func NewStockTask(
	productRepo repository.ProductRepository,
	userRepo repository.UserRepository,
	notificationSvc *service.NotificationService,
) *StockTask {
	return &StockTask{
		ProductRepo:     productRepo,
		UserRepo:        userRepo,
		NotificationSvc: notificationSvc,
		Cron:            cron.New(cron.WithSeconds()), // 支持秒级控制
		sweepLimit:      200,                          // 单轮最多处理的低库存商品数
	}
}

// Start 启动定时任务
func (t *StockTask) Start() {
	// 首次执行
	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
		defer cancel()
		log.Println("[Task] 服务启动，正在执行首次低库存巡检...")
		t.sweepJob(ctx)
	}()

	// 定时策略
	_, err := t.Cron.AddFunc("0 0/30 * * * *", func() {
		ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
		defer cancel()

		t.sweepJob(ctx)
	})

	if err != nil {
		log.Fatalf("无法启动低库存定时任务: %v", err)
	}

	t.Cron.Start()
	log.Println("低库存巡检任务已启动 (每30分钟检查一次)")
}

// Stop 停止定时任务，等待正在执行的轮次结束
func (t *StockTask) Stop() {
	ctx := t.Cron.Stop()
	<-ctx.Done()
}

// sweepJob 单轮巡检
func (t *StockTask) sweepJob(ctx context.Context) {
	products, err := t.ProductRepo.ListLowStock(ctx, t.sweepLimit)
	if err != nil {
		log.Printf("[Cron] 低库存商品查询失败: %v", err)
		return
	}
	if len(products) == 0 {
		return
	}

	admins, err := t.UserRepo.ListAdmins(ctx)
	if err != nil {
		log.Printf("[Cron] 管理员列表查询失败: %v", err)
		return
	}

	log.Printf("[Cron] 发现 %d 个低库存商品，通知 %d 名管理员", len(products), len(admins))

	for i := range products {
		select {
		case <-ctx.Done():
			log.Println("[Cron] 低库存巡检超时停止")
			return
		default:
		}

		for _, admin := range admins {
			t.NotificationSvc.NotifyLowStock(ctx, &products[i], admin.ID)
		}
	}
}
