package controller

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"

	"marketo_admin_v1/internal/api/dto"
)

// ==================== 测试辅助 ====================

// setupBindTestRouter 只挂参数绑定，校验请求 DTO 的边界值
func setupBindTestRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(gin.Recovery())

	r.POST("/products", func(c *gin.Context) {
		var req dto.CreateProductReq
		if err := c.ShouldBindJSON(&req); err != nil {
			respondBindError(c, err)
			return
		}
		c.JSON(200, gin.H{"code": 0, "price": *req.Price})
	})

	r.POST("/orders", func(c *gin.Context) {
		var req dto.CreateOrderReq
		if err := c.ShouldBindJSON(&req); err != nil {
			respondBindError(c, err)
			return
		}
		c.JSON(200, gin.H{"code": 0})
	})

	return r
}

func bindPost(r *gin.Engine, path string, body gin.H) *httptest.ResponseRecorder {
	payload, _ := json.Marshal(body)
	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func productBody(price float64, status string) gin.H {
	body := gin.H{
		"name":            "Sample",
		"category_id":     1,
		"sub_category_id": 2,
		"price":           price,
	}
	if status != "" {
		body["status"] = status
	}
	return body
}

// ==================== 单元测试 ====================

func TestProductBinding_ZeroPriceAccepted(t *testing.T) {
	r := setupBindTestRouter()

	// 免费商品 price=0 是合法边界值
	w := bindPost(r, "/products", productBody(0, ""))
	if w.Code != 200 {
		t.Errorf("price=0 应通过校验, got %d: %s", w.Code, w.Body.String())
	}

	var resp struct {
		Price float64 `json:"price"`
	}
	json.Unmarshal(w.Body.Bytes(), &resp)
	if resp.Price != 0 {
		t.Errorf("绑定后 price = %v, want 0", resp.Price)
	}
}

func TestProductBinding_PriceValidation(t *testing.T) {
	r := setupBindTestRouter()

	// 负数拒绝
	if w := bindPost(r, "/products", productBody(-1, "")); w.Code != 400 {
		t.Errorf("price=-1 应返回 400, got %d", w.Code)
	}

	// 缺失拒绝
	w := bindPost(r, "/products", gin.H{
		"name":            "Sample",
		"category_id":     1,
		"sub_category_id": 2,
	})
	if w.Code != 400 {
		t.Errorf("缺失 price 应返回 400, got %d", w.Code)
	}
}

func TestProductBinding_StatusEnum(t *testing.T) {
	r := setupBindTestRouter()

	if w := bindPost(r, "/products", productBody(9.99, "inactive")); w.Code != 200 {
		t.Errorf("status=inactive 应通过校验, got %d: %s", w.Code, w.Body.String())
	}

	// 领域内只有 active/inactive 两种状态
	if w := bindPost(r, "/products", productBody(9.99, "out_of_stock")); w.Code != 400 {
		t.Errorf("status=out_of_stock 应返回 400, got %d", w.Code)
	}
}

func TestOrderBinding_ZeroPriceItemAccepted(t *testing.T) {
	r := setupBindTestRouter()

	w := bindPost(r, "/orders", gin.H{
		"user_name":  "Jane",
		"user_email": "jane@example.com",
		"items": []gin.H{
			{"name": "Gift", "price": 0, "quantity": 1},
		},
		"shipping_address": gin.H{
			"address":  "1 Main St",
			"city":     "Springfield",
			"state":    "IL",
			"zip_code": "62704",
			"country":  "US",
		},
	})
	if w.Code != 200 {
		t.Errorf("赠品行 price=0 应通过校验, got %d: %s", w.Code, w.Body.String())
	}

	// 负单价仍然拒绝
	w = bindPost(r, "/orders", gin.H{
		"user_name":  "Jane",
		"user_email": "jane@example.com",
		"items": []gin.H{
			{"name": "Bad", "price": -0.01, "quantity": 1},
		},
		"shipping_address": gin.H{
			"address":  "1 Main St",
			"city":     "Springfield",
			"state":    "IL",
			"zip_code": "62704",
			"country":  "US",
		},
	})
	if w.Code != 400 {
		t.Errorf("负单价应返回 400, got %d", w.Code)
	}
}
