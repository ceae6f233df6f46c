package model

// 通知类型
const (
	NotificationTypeLowStock = "low_stock"
	NotificationTypeNewOrder = "new_order"
	NotificationTypeSystem   = "system"
)

// 通知优先级
const (
	NotificationPriorityLow    = "low"
	NotificationPriorityMedium = "medium"
	NotificationPriorityHigh   = "high"
)

// 关联目标类型（带标签的引用，替代无类型双字段）
const (
	RelatedKindProduct = "product"
	RelatedKindOrder   = "order"
)

type Notification struct {
	BaseModel
	UserID int64 `gorm:"not null;index:idx_user_read" json:"user_id"`
	User   *User `gorm:"foreignKey:UserID" json:"-"`

	Type    string `gorm:"size:20;not null" json:"type"`
	Title   string `gorm:"size:255;not null" json:"title"`
	Message string `gorm:"size:500;not null" json:"message"`

	Priority string `gorm:"size:10;default:medium" json:"priority"`
	IsRead   bool   `gorm:"default:false;index:idx_user_read" json:"is_read"`

	// --- 关联引用 {kind, id} ---
	RelatedKind string `gorm:"size:20" json:"related_kind,omitempty"`
	RelatedID   int64  `gorm:"index" json:"related_id,omitempty"`
}

func (Notification) TableName() string {
	return "notifications"
}
