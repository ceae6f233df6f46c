package service

import (
	"context"
	"errors"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	"marketo_admin_v1/internal/model"
	"marketo_admin_v1/internal/repository"
)

// UserService 后台账号管理
type UserService struct {
	userRepo repository.UserRepository
}

func NewUserService(userRepo repository.UserRepository) *UserService {
	return &UserService{userRepo: userRepo}
}

// UserInput 创建/更新入参
type UserInput struct {
	Name        string
	Email       string
	Password    string
	Role        string
	Phone       *string
	Avatar      *string
	IsActive    *bool
	Permissions *model.Permissions
}

// ==================== 增删改 ====================

// Create 创建账号
// 未传权限集时按角色赋默认权限；密码入库前 bcrypt 加密
func (s *UserService) Create(ctx context.Context, input UserInput) (*model.User, error) {
	if input.Role != "" && !model.IsValidRole(input.Role) {
		return nil, ErrInvalidAction
	}

	if _, err := s.userRepo.GetByEmail(ctx, input.Email); err == nil {
		return nil, ErrDuplicateEmail
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	user := &model.User{
		Name:     input.Name,
		Email:    input.Email,
		Password: string(hashed),
		Role:     model.RoleAdmin,
		IsActive: true,
	}
	if input.Role != "" {
		user.Role = input.Role
	}
	if input.Phone != nil {
		user.Phone = *input.Phone
	}
	if input.Avatar != nil {
		user.Avatar = *input.Avatar
	}
	if input.IsActive != nil {
		user.IsActive = *input.IsActive
	}

	perms := model.DefaultPermissions(user.Role)
	if input.Permissions != nil {
		perms = *input.Permissions
	}
	user.Permissions = datatypes.NewJSONType(perms)

	if err := s.userRepo.Create(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

// Update 更新账号
// 改角色且未显式传权限集时，权限集重置为新角色的默认值
func (s *UserService) Update(ctx context.Context, id int64, input UserInput) (*model.User, error) {
	user, err := s.userRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	if input.Email != "" && input.Email != user.Email {
		if existing, err := s.userRepo.GetByEmail(ctx, input.Email); err == nil && existing.ID != id {
			return nil, ErrDuplicateEmail
		} else if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, err
		}
		user.Email = input.Email
	}

	if input.Name != "" {
		user.Name = input.Name
	}
	if input.Password != "" {
		hashed, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
		if err != nil {
			return nil, err
		}
		user.Password = string(hashed)
	}
	if input.Role != "" && input.Role != user.Role {
		if !model.IsValidRole(input.Role) {
			return nil, ErrInvalidAction
		}
		user.Role = input.Role
		if input.Permissions == nil {
			user.Permissions = datatypes.NewJSONType(model.DefaultPermissions(input.Role))
		}
	}
	if input.Permissions != nil {
		user.Permissions = datatypes.NewJSONType(*input.Permissions)
	}
	if input.Phone != nil {
		user.Phone = *input.Phone
	}
	if input.Avatar != nil {
		user.Avatar = *input.Avatar
	}
	if input.IsActive != nil {
		user.IsActive = *input.IsActive
	}

	if err := s.userRepo.Update(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

// Delete 删除账号，保底留一个管理员
func (s *UserService) Delete(ctx context.Context, id int64) error {
	err := s.userRepo.DeleteGuarded(ctx, id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrNotFound
	}
	if errors.Is(err, repository.ErrLastAdmin) {
		return ErrLastAdmin
	}
	return err
}

// ==================== 查询 ====================

func (s *UserService) Get(ctx context.Context, id int64) (*model.User, error) {
	user, err := s.userRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return user, nil
}

func (s *UserService) List(ctx context.Context) ([]model.User, error) {
	return s.userRepo.List(ctx)
}
