package controller

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"marketo_admin_v1/internal/middleware"
	"marketo_admin_v1/internal/model"
	"marketo_admin_v1/internal/repository"
	"marketo_admin_v1/internal/service"
)

// ==================== 测试辅助 ====================

func setupAuthCtlTestDB(t *testing.T) *gorm.DB {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("连接测试数据库失败: %v", err)
	}

	if err := db.AutoMigrate(&model.User{}); err != nil {
		t.Fatalf("建表失败: %v", err)
	}
	return db
}

func setupAuthCtlRouter(db *gorm.DB) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(gin.Recovery())

	authSvc := service.NewAuthService(repository.NewUserRepository(db))
	ctrl := NewAuthController(authSvc)

	api := r.Group("/api")
	auth := api.Group("/auth")
	{
		auth.POST("/login", ctrl.Login)
		auth.POST("/register", ctrl.Register)

		authed := auth.Group("", middleware.JWTAuth())
		{
			authed.GET("/profile", ctrl.Profile)
		}
	}

	// 角色门禁演示路由
	api.GET("/admin-only", middleware.JWTAuth(), middleware.RequireRole(model.RoleAdmin), func(c *gin.Context) {
		c.JSON(200, gin.H{"code": 0})
	})

	return r
}

func postJSON(r *gin.Engine, path string, body interface{}) *httptest.ResponseRecorder {
	payload, _ := json.Marshal(body)
	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func registerTestUser(t *testing.T, r *gin.Engine, email string) string {
	w := postJSON(r, "/api/auth/register", gin.H{
		"name":     "Test User",
		"email":    email,
		"password": "secret123",
	})
	if w.Code != 201 {
		t.Fatalf("注册失败: %d %s", w.Code, w.Body.String())
	}

	var resp struct {
		Token string `json:"token"`
	}
	json.Unmarshal(w.Body.Bytes(), &resp)
	if resp.Token == "" {
		t.Fatalf("注册响应缺少 token")
	}
	return resp.Token
}

// ==================== 单元测试 ====================

func TestAuthCtl_LoginSuccess(t *testing.T) {
	db := setupAuthCtlTestDB(t)
	r := setupAuthCtlRouter(db)

	registerTestUser(t, r, "login-ok@example.com")

	w := postJSON(r, "/api/auth/login", gin.H{
		"email":    "login-ok@example.com",
		"password": "secret123",
	})
	if w.Code != 200 {
		t.Fatalf("登录应返回 200, got %d: %s", w.Code, w.Body.String())
	}

	var resp struct {
		Token string `json:"token"`
		User  struct {
			Email    string `json:"email"`
			Password string `json:"password"`
		} `json:"user"`
	}
	json.Unmarshal(w.Body.Bytes(), &resp)
	if resp.Token == "" {
		t.Errorf("响应缺少 token")
	}
	if resp.User.Password != "" {
		t.Errorf("密码不应出现在响应里")
	}
}

func TestAuthCtl_LoginBadCredentials(t *testing.T) {
	db := setupAuthCtlTestDB(t)
	r := setupAuthCtlRouter(db)

	registerTestUser(t, r, "login-bad@example.com")

	w := postJSON(r, "/api/auth/login", gin.H{
		"email":    "login-bad@example.com",
		"password": "wrong-password",
	})
	if w.Code != 401 {
		t.Errorf("密码错误应返回 401, got %d", w.Code)
	}
}

func TestAuthCtl_LoginValidation(t *testing.T) {
	db := setupAuthCtlTestDB(t)
	r := setupAuthCtlRouter(db)

	// email 格式不合法
	w := postJSON(r, "/api/auth/login", gin.H{
		"email":    "not-an-email",
		"password": "secret123",
	})
	if w.Code != 400 {
		t.Errorf("非法 email 应返回 400, got %d", w.Code)
	}

	var resp struct {
		Errors []struct {
			Field string `json:"field"`
		} `json:"errors"`
	}
	json.Unmarshal(w.Body.Bytes(), &resp)
	if len(resp.Errors) == 0 {
		t.Errorf("校验错误应逐字段展开: %s", w.Body.String())
	}
}

func TestAuthCtl_ProfileRequiresToken(t *testing.T) {
	db := setupAuthCtlTestDB(t)
	r := setupAuthCtlRouter(db)

	token := registerTestUser(t, r, "profile@example.com")

	// 无令牌
	req := httptest.NewRequest(http.MethodGet, "/api/auth/profile", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	if w.Code != 401 {
		t.Errorf("无令牌应返回 401, got %d", w.Code)
	}

	// 带令牌
	req = httptest.NewRequest(http.MethodGet, "/api/auth/profile", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)
	if w.Code != 200 {
		t.Errorf("带令牌应返回 200, got %d: %s", w.Code, w.Body.String())
	}
}

func TestAuthCtl_RoleGate(t *testing.T) {
	db := setupAuthCtlTestDB(t)
	r := setupAuthCtlRouter(db)

	// 注册默认是 admin，门禁放行
	adminToken := registerTestUser(t, r, "gate-admin@example.com")

	req := httptest.NewRequest(http.MethodGet, "/api/admin-only", nil)
	req.Header.Set("Authorization", "Bearer "+adminToken)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	if w.Code != 200 {
		t.Errorf("admin 应放行, got %d", w.Code)
	}

	// 降级为 staff 后重新签发令牌，门禁拦截
	db.Model(&model.User{}).Where("email = ?", "gate-admin@example.com").Update("role", model.RoleStaff)

	var staff model.User
	db.Where("email = ?", "gate-admin@example.com").First(&staff)
	staffToken, err := middleware.GenerateAccessToken(staff.ID, staff.Email, staff.Role)
	if err != nil {
		t.Fatalf("签发令牌失败: %v", err)
	}

	req = httptest.NewRequest(http.MethodGet, "/api/admin-only", nil)
	req.Header.Set("Authorization", "Bearer "+staffToken)
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)
	if w.Code != 403 {
		t.Errorf("staff 应被拦截, got %d", w.Code)
	}
}
