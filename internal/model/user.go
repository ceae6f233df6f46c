package model

import (
	"time"

	"gorm.io/datatypes"
)

// ==================== 角色定义 ====================

const (
	RoleAdmin   = "admin"
	RoleManager = "manager"
	RoleEditor  = "editor"
	RoleViewer  = "viewer"
	RoleStaff   = "staff"
)

// ValidRoles 合法角色集合
var ValidRoles = []string{RoleAdmin, RoleManager, RoleEditor, RoleViewer, RoleStaff}

// IsValidRole 校验角色取值
func IsValidRole(role string) bool {
	for _, r := range ValidRoles {
		if r == role {
			return true
		}
	}
	return false
}

// ==================== 权限定义 ====================

// Permissions 后台各模块的访问/操作开关
type Permissions struct {
	Dashboard     bool `json:"dashboard"`
	Products      bool `json:"products"`
	Orders        bool `json:"orders"`
	Customers     bool `json:"customers"`
	Categories    bool `json:"categories"`
	Banners       bool `json:"banners"`
	Settings      bool `json:"settings"`
	Notifications bool `json:"notifications"`
	CanCreate     bool `json:"canCreate"`
	CanEdit       bool `json:"canEdit"`
	CanDelete     bool `json:"canDelete"`
	CanView       bool `json:"canView"`
}

// DefaultPermissions 按角色返回默认权限集
func DefaultPermissions(role string) Permissions {
	base := Permissions{
		Dashboard:     true,
		Products:      true,
		Orders:        true,
		Customers:     true,
		Categories:    true,
		Banners:       true,
		Settings:      false,
		Notifications: true,
		CanCreate:     true,
		CanEdit:       true,
		CanDelete:     false,
		CanView:       true,
	}

	switch role {
	case RoleAdmin:
		base.Settings = true
		base.CanDelete = true
	case RoleManager:
		base.CanDelete = true
	case RoleEditor:
		// 与 base 相同：不可删、不可改设置
	case RoleViewer:
		base.CanCreate = false
		base.CanEdit = false
	case RoleStaff:
		base.Customers = false
		base.Categories = false
		base.Banners = false
		base.CanCreate = false
	}

	return base
}

// ==================== 用户模型 ====================

type User struct {
	BaseModel
	Name     string `gorm:"size:100;not null" json:"name"`
	Email    string `gorm:"size:255;uniqueIndex;not null" json:"email"`
	Password string `gorm:"size:100;not null" json:"-"`
	Role     string `gorm:"size:20;default:admin;index" json:"role"`

	Permissions datatypes.JSONType[Permissions] `gorm:"type:jsonb" json:"permissions"`

	Phone     string     `gorm:"size:30" json:"phone"`
	Avatar    string     `gorm:"size:512" json:"avatar"`
	IsActive  bool       `gorm:"default:true;index" json:"is_active"`
	LastLogin *time.Time `json:"last_login"`
}

func (User) TableName() string {
	return "users"
}
