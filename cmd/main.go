package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"gorm.io/gorm"

	"marketo_admin_v1/internal/controller"
	"marketo_admin_v1/internal/middleware"
	"marketo_admin_v1/internal/model"
	"marketo_admin_v1/internal/repository"
	"marketo_admin_v1/internal/router"
	"marketo_admin_v1/internal/service"
	"marketo_admin_v1/internal/task"
	"marketo_admin_v1/pkg/database"
)

// @title Marketo Admin API
// @version 1.0
// @description 电商后台管理系统 API
// @BasePath /
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	// 1. 加载环境变量
	if err := godotenv.Load(); err != nil {
		log.Println("未找到 .env 文件，使用系统环境变量")
	}
	initJWTConfig()

	// 2. 初始化数据库
	db := initDatabase()

	// 3. 初始化依赖
	deps := initDependencies(db)

	// 4. 启动自举（默认管理员 + 默认配置，幂等）
	runBootstrap(deps)

	// 5. 启动定时任务
	initTasks(deps)

	// 6. 初始化路由
	r := gin.Default()
	router.InitRoutes(r, deps.Controllers)

	// 7. 启动服务
	startServer(r, deps)
}

// ==================== 依赖容器 ====================

// Dependencies 依赖容器
type Dependencies struct {
	DB          *gorm.DB
	Repos       *Repositories
	Services    *Services
	Controllers *router.Controllers
	StockTask   *task.StockTask
}

// Repositories 仓库集合
type Repositories struct {
	User         repository.UserRepository
	Category     repository.CategoryRepository
	Product      repository.ProductRepository
	Order        repository.OrderRepository
	Customer     repository.CustomerRepository
	Banner       repository.BannerRepository
	Notification repository.NotificationRepository
	Settings     repository.SettingsRepository
}

// Services 服务集合
type Services struct {
	Auth         *service.AuthService
	User         *service.UserService
	Category     *service.CategoryService
	Product      *service.ProductService
	Order        *service.OrderService
	Customer     *service.CustomerService
	Banner       *service.BannerService
	Notification *service.NotificationService
	Settings     *service.SettingsService
	Dashboard    *service.DashboardService
	Bootstrap    *service.BootstrapService
}

// ==================== 初始化函数 ====================

// initJWTConfig 从环境变量覆盖 JWT 默认配置
func initJWTConfig() {
	cfg := middleware.DefaultJWTConfig()
	if secret := os.Getenv("JWT_SECRET"); secret != "" {
		cfg.SecretKey = secret
	}
	if raw := os.Getenv("JWT_EXPIRE_HOURS"); raw != "" {
		if hours, err := strconv.Atoi(raw); err == nil && hours > 0 {
			cfg.AccessTokenTTL = time.Duration(hours) * time.Hour
		}
	}
	middleware.SetJWTConfig(cfg)
}

// initDatabase 初始化数据库
func initDatabase() *gorm.DB {
	dsn := os.Getenv("DATABASE_DSN")
	if dsn == "" {
		dsn = fmt.Sprintf(
			"host=%s user=%s password=%s dbname=%s port=%s sslmode=disable",
			getEnv("DB_HOST", "localhost"),
			getEnv("DB_USER", "marketo"),
			getEnv("DB_PASSWORD", "marketo"),
			getEnv("DB_NAME", "marketo_admin"),
			getEnv("DB_PORT", "5432"),
		)
	}

	db := database.InitDB(dsn,
		// Account
		&model.User{},
		// Catalog
		&model.Category{}, &model.Product{},
		// Sales
		&model.Order{}, &model.Customer{},
		// Content
		&model.Banner{},
		// System
		&model.Notification{}, &model.Settings{},
	)

	// 写操作自动填 created_by / updated_by
	middleware.RegisterAuditCallbacks(db)

	return db
}

// initDependencies 初始化所有依赖
func initDependencies(db *gorm.DB) *Dependencies {
	// -------- Repo 层 --------
	repos := &Repositories{
		User:         repository.NewUserRepository(db),
		Category:     repository.NewCategoryRepository(db),
		Product:      repository.NewProductRepository(db),
		Order:        repository.NewOrderRepository(db),
		Customer:     repository.NewCustomerRepository(db),
		Banner:       repository.NewBannerRepository(db),
		Notification: repository.NewNotificationRepository(db),
		Settings:     repository.NewSettingsRepository(db),
	}

	// -------- 业务服务 --------
	notificationSvc := service.NewNotificationService(repos.Notification)

	services := &Services{
		Auth:         service.NewAuthService(repos.User),
		User:         service.NewUserService(repos.User),
		Category:     service.NewCategoryService(repos.Category, repos.Product),
		Product:      service.NewProductService(repos.Product, notificationSvc),
		Order:        service.NewOrderService(repos.Order, repos.Customer, notificationSvc),
		Customer:     service.NewCustomerService(repos.Customer, repos.Order),
		Banner:       service.NewBannerService(repos.Banner, repos.Product),
		Notification: notificationSvc,
		Settings:     service.NewSettingsService(repos.Settings),
		Dashboard:    service.NewDashboardService(repos.Product, repos.Order, repos.Customer),
		Bootstrap:    service.NewBootstrapService(repos.User, repos.Settings),
	}

	// -------- Controller 层 --------
	controllers := &router.Controllers{
		Auth:         controller.NewAuthController(services.Auth),
		User:         controller.NewUserController(services.User),
		Category:     controller.NewCategoryController(services.Category),
		Product:      controller.NewProductController(services.Product),
		Order:        controller.NewOrderController(services.Order),
		Customer:     controller.NewCustomerController(services.Customer),
		Banner:       controller.NewBannerController(services.Banner),
		Notification: controller.NewNotificationController(services.Notification),
		Settings:     controller.NewSettingsController(services.Settings),
		Dashboard:    controller.NewDashboardController(services.Dashboard),
	}

	return &Dependencies{
		DB:          db,
		Repos:       repos,
		Services:    services,
		Controllers: controllers,
	}
}

// runBootstrap 启动自举
func runBootstrap(deps *Dependencies) {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := deps.Services.Bootstrap.Run(ctx); err != nil {
		log.Fatalf("启动自举失败: %v", err)
	}
}

// ==================== 定时任务 ====================

// initTasks 初始化定时任务
func initTasks(deps *Dependencies) {
	stockTask := task.NewStockTask(
		deps.Repos.Product,
		deps.Repos.User,
		deps.Services.Notification,
	)
	stockTask.Start()
	deps.StockTask = stockTask

	log.Println("定时任务已启动")
}

// ==================== 服务启动 ====================

// startServer 启动服务
func startServer(r *gin.Engine, deps *Dependencies) {
	port := getEnv("SERVER_PORT", "8080")

	srv := &http.Server{
		Addr:    ":" + port,
		Handler: r,
	}

	// 异步启动服务
	go func() {
		log.Printf("服务启动在 :%s", port)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("服务启动失败: %v", err)
		}
	}()

	// 等待退出信号
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("正在关闭服务...")

	if deps.StockTask != nil {
		deps.StockTask.Stop()
	}

	// 优雅关闭，最多等待 30 秒
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Fatalf("服务强制关闭: %v", err)
	}

	log.Println("服务已退出")
}

// ==================== 工具函数 ====================

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
