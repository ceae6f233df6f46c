package repository

// ==================== 查询构造辅助 ====================

// 各实体允许排序的列，白名单校验防注入
var (
	productSortable      = map[string]bool{"name": true, "price": true, "stock": true, "status": true, "created_at": true, "updated_at": true}
	orderSortable        = map[string]bool{"order_number": true, "total": true, "status": true, "created_at": true, "updated_at": true}
	customerSortable     = map[string]bool{"name": true, "email": true, "total_orders": true, "total_spent": true, "status": true, "created_at": true}
	bannerSortable       = map[string]bool{"title": true, "type": true, "status": true, "created_at": true}
	notificationSortable = map[string]bool{"type": true, "priority": true, "is_read": true, "created_at": true}
)

// buildOrderClause 组装 ORDER BY 子句，非法列回退 created_at
func buildOrderClause(sortBy, sortOrder string, allowed map[string]bool) string {
	if !allowed[sortBy] {
		sortBy = "created_at"
	}
	if sortOrder != "asc" {
		sortOrder = "desc"
	}
	return sortBy + " " + sortOrder
}

// normalizePage 分页参数兜底
func normalizePage(page, limit int) (int, int) {
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = 10
	}
	if limit > 100 {
		limit = 100
	}
	return page, limit
}
