package service

import (
	"context"
	"errors"
	"time"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	"marketo_admin_v1/internal/middleware"
	"marketo_admin_v1/internal/model"
	"marketo_admin_v1/internal/repository"
)

// loginThrottle 同一邮箱两次登录尝试的最小间隔
const loginThrottle = 2 * time.Second

// AuthService 认证与个人资料
type AuthService struct {
	userRepo repository.UserRepository
	limiter  *middleware.LoginRateLimiter
}

func NewAuthService(userRepo repository.UserRepository) *AuthService {
	return &AuthService{
		userRepo: userRepo,
		limiter:  middleware.GetLoginLimiter(),
	}
}

// LoginResult 登录成功后返回的令牌与用户
type LoginResult struct {
	Token string      `json:"token"`
	User  *model.User `json:"user"`
}

// ==================== 登录注册 ====================

// Login 邮箱密码登录
// 同一邮箱限频，连续尝试过快返回 ErrTooManyAttempts；
// 为避免枚举账号，用户不存在和密码错误返回同一个 ErrInvalidCredentials
func (s *AuthService) Login(ctx context.Context, email, password string) (*LoginResult, error) {
	if result := s.limiter.Check(email, loginThrottle); !result.Allowed {
		return nil, ErrTooManyAttempts
	}

	user, err := s.userRepo.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}

	if !user.IsActive {
		return nil, ErrAccountDisabled
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		return nil, ErrInvalidCredentials
	}

	token, err := middleware.GenerateAccessToken(user.ID, user.Email, user.Role)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	user.LastLogin = &now
	if err := s.userRepo.UpdateFields(ctx, user.ID, map[string]interface{}{"last_login": now}); err != nil {
		return nil, err
	}

	// 登录成功后清除限频记录
	s.limiter.Reset(email)

	return &LoginResult{Token: token, User: user}, nil
}

// Register 开放注册，注册即登录
func (s *AuthService) Register(ctx context.Context, name, email, password string) (*LoginResult, error) {
	if _, err := s.userRepo.GetByEmail(ctx, email); err == nil {
		return nil, ErrDuplicateEmail
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	user := &model.User{
		Name:        name,
		Email:       email,
		Password:    string(hashed),
		Role:        model.RoleAdmin,
		IsActive:    true,
		Permissions: datatypes.NewJSONType(model.DefaultPermissions(model.RoleAdmin)),
	}

	if err := s.userRepo.Create(ctx, user); err != nil {
		return nil, err
	}

	token, err := middleware.GenerateAccessToken(user.ID, user.Email, user.Role)
	if err != nil {
		return nil, err
	}

	return &LoginResult{Token: token, User: user}, nil
}

// ==================== 个人资料 ====================

// Profile 当前登录用户资料
func (s *AuthService) Profile(ctx context.Context, userID int64) (*model.User, error) {
	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return user, nil
}

// ProfileInput 个人资料更新入参
type ProfileInput struct {
	Name   *string
	Phone  *string
	Avatar *string
}

// UpdateProfile 更新个人资料，不允许改角色和权限
func (s *AuthService) UpdateProfile(ctx context.Context, userID int64, input ProfileInput) (*model.User, error) {
	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	if input.Name != nil && *input.Name != "" {
		user.Name = *input.Name
	}
	if input.Phone != nil {
		user.Phone = *input.Phone
	}
	if input.Avatar != nil {
		user.Avatar = *input.Avatar
	}

	if err := s.userRepo.Update(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

// ChangePassword 修改密码，必须先验旧密码
func (s *AuthService) ChangePassword(ctx context.Context, userID int64, current, next string) error {
	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}
		return err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(current)); err != nil {
		return ErrWrongPassword
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(next), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	return s.userRepo.UpdateFields(ctx, userID, map[string]interface{}{"password": string(hashed)})
}

// ActiveUserCount 统计启用中的账号数
func (s *AuthService) ActiveUserCount(ctx context.Context) (int64, error) {
	return s.userRepo.CountActive(ctx)
}
