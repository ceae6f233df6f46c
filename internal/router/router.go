package router

import (
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"marketo_admin_v1/internal/controller"
	"marketo_admin_v1/internal/middleware"
	"marketo_admin_v1/internal/model"

	_ "marketo_admin_v1/docs"
)

// Controllers 路由需要的全部控制器
type Controllers struct {
	Auth         *controller.AuthController
	User         *controller.UserController
	Category     *controller.CategoryController
	Product      *controller.ProductController
	Order        *controller.OrderController
	Customer     *controller.CustomerController
	Banner       *controller.BannerController
	Notification *controller.NotificationController
	Settings     *controller.SettingsController
	Dashboard    *controller.DashboardController
}

// InitRoutes 注册所有路由
func InitRoutes(r *gin.Engine, ctl *Controllers) {
	// 1. Swagger 文档路由
	// 访问 http://localhost:8080/swagger/index.html 即可查看
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	adminOrManager := middleware.RequireRole(model.RoleAdmin, model.RoleManager)
	adminOnly := middleware.RequireRole(model.RoleAdmin)

	// 2. API 路由组
	api := r.Group("/api")
	{
		// auth 鉴权组
		auth := api.Group("/auth")
		{
			auth.POST("/login", ctl.Auth.Login)
			auth.POST("/register", ctl.Auth.Register)

			authed := auth.Group("", middleware.JWTAuth(), middleware.AuditContext())
			{
				authed.GET("/profile", ctl.Auth.Profile)
				authed.GET("/count", ctl.Auth.GetUserCount)
				authed.PUT("/profile", ctl.Auth.UpdateProfile)
				authed.PUT("/change-password", ctl.Auth.ChangePassword)
			}
		}

		// users 账号管理，整组仅管理员可用
		users := api.Group("/users", middleware.JWTAuth(), middleware.AuditContext(), adminOnly)
		{
			users.GET("", ctl.User.GetUsers)
			users.GET("/:id", ctl.User.GetUser)
			users.POST("", ctl.User.CreateUser)
			users.PUT("/:id", ctl.User.UpdateUser)
			users.DELETE("/:id", ctl.User.DeleteUser)
		}

		// categories 分类，读接口公开给前台
		categories := api.Group("/categories")
		{
			categories.GET("", ctl.Category.GetCategories)
			categories.GET("/tree", ctl.Category.GetCategoryTree)
			categories.GET("/:id", ctl.Category.GetCategory)

			categoriesAuthed := categories.Group("", middleware.JWTAuth(), middleware.AuditContext())
			{
				categoriesAuthed.GET("/stats", ctl.Category.GetCategoryStats)
				categoriesAuthed.POST("", adminOrManager, ctl.Category.CreateCategory)
				categoriesAuthed.POST("/bulk", adminOrManager, ctl.Category.BulkCategories)
				categoriesAuthed.PUT("/:id", adminOrManager, ctl.Category.UpdateCategory)
				categoriesAuthed.DELETE("/:id", adminOnly, ctl.Category.DeleteCategory)
			}
		}

		// products 商品
		products := api.Group("/products", middleware.JWTAuth(), middleware.AuditContext())
		{
			products.GET("", ctl.Product.GetProducts)
			products.GET("/stats", ctl.Product.GetProductStats)
			products.GET("/:id", ctl.Product.GetProduct)
			products.POST("", adminOrManager, ctl.Product.CreateProduct)
			products.POST("/bulk", adminOrManager, ctl.Product.BulkProducts)
			products.PUT("/:id", adminOrManager, ctl.Product.UpdateProduct)
			products.DELETE("/:id", adminOnly, ctl.Product.DeleteProduct)
		}

		// orders 订单
		orders := api.Group("/orders", middleware.JWTAuth(), middleware.AuditContext())
		{
			orders.GET("", ctl.Order.GetOrders)
			orders.GET("/stats", ctl.Order.GetOrderStats)
			orders.GET("/:id", ctl.Order.GetOrder)
			orders.POST("", adminOrManager, ctl.Order.CreateOrder)
			orders.PUT("/:id", adminOrManager, ctl.Order.UpdateOrder)
			orders.PUT("/:id/status", adminOrManager, ctl.Order.UpdateOrderStatus)
			orders.PUT("/:id/payment", adminOrManager, ctl.Order.UpdatePaymentStatus)
			orders.DELETE("/:id", adminOnly, ctl.Order.DeleteOrder)
		}

		// customers 客户
		customers := api.Group("/customers", middleware.JWTAuth(), middleware.AuditContext())
		{
			customers.GET("", ctl.Customer.GetCustomers)
			customers.GET("/stats", ctl.Customer.GetCustomerStats)
			customers.GET("/:id", ctl.Customer.GetCustomer)
			customers.POST("", ctl.Customer.CreateCustomer)
			customers.PUT("/:id", ctl.Customer.UpdateCustomer)
			customers.DELETE("/:id", adminOnly, ctl.Customer.DeleteCustomer)
		}

		// banners 横幅，展示端接口公开
		banners := api.Group("/banners")
		{
			banners.GET("/active/:type", ctl.Banner.GetActiveBanners)

			bannersAuthed := banners.Group("", middleware.JWTAuth(), middleware.AuditContext())
			{
				bannersAuthed.GET("", ctl.Banner.GetBanners)
				bannersAuthed.GET("/stats", ctl.Banner.GetBannerStats)
				bannersAuthed.GET("/:id", ctl.Banner.GetBanner)
				bannersAuthed.POST("", adminOrManager, ctl.Banner.CreateBanner)
				bannersAuthed.POST("/bulk", adminOrManager, ctl.Banner.BulkBanners)
				bannersAuthed.PUT("/:id", adminOrManager, ctl.Banner.UpdateBanner)
				bannersAuthed.DELETE("/:id", adminOnly, ctl.Banner.DeleteBanner)
			}
		}

		// notifications 通知，按当前用户隔离
		notifications := api.Group("/notifications", middleware.JWTAuth(), middleware.AuditContext())
		{
			notifications.GET("", ctl.Notification.GetNotifications)
			notifications.GET("/unread-count", ctl.Notification.GetUnreadCount)
			notifications.GET("/stats", ctl.Notification.GetNotificationStats)
			notifications.PUT("/mark-all-read", ctl.Notification.MarkAllAsRead)
			notifications.PUT("/:id/read", ctl.Notification.MarkAsRead)
			notifications.DELETE("/:id", ctl.Notification.DeleteNotification)
			notifications.DELETE("", ctl.Notification.DeleteAllNotifications)
		}

		// settings 系统配置，写操作仅管理员
		settings := api.Group("/settings", middleware.JWTAuth(), middleware.AuditContext())
		{
			settings.GET("", ctl.Settings.GetSettings)
			settings.PUT("", adminOnly, ctl.Settings.UpdateSettings)
			settings.POST("/reset", adminOnly, ctl.Settings.ResetSettings)
			settings.GET("/:key", ctl.Settings.GetSettingKey)
			settings.PUT("/:key", adminOnly, ctl.Settings.UpdateSettingKey)
		}

		// dashboard 首页
		dashboard := api.Group("/dashboard")
		{
			dashboard.GET("/health", ctl.Dashboard.Health)
			dashboard.GET("/stats", middleware.JWTAuth(), middleware.AuditContext(), ctl.Dashboard.GetDashboardStats)
		}
	}
}
