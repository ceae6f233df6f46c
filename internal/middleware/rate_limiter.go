package middleware

import (
	"sync"
	"time"
)

// ==================== LoginRateLimiter 登录限流器 ====================

// LoginRateLimiter 按邮箱限制登录尝试频率，减缓撞库
type LoginRateLimiter struct {
	locks sync.Map // key -> *lockEntry
}

// lockEntry 锁条目
type lockEntry struct {
	lastTime time.Time
	mu       sync.Mutex
}

// 全局限流器实例
var globalLimiter = &LoginRateLimiter{}

// GetLoginLimiter 获取全局限流器
func GetLoginLimiter() *LoginRateLimiter {
	return globalLimiter
}

// ==================== 限流检查 ====================

// CheckResult 检查结果
type CheckResult struct {
	Allowed    bool          // 是否允许
	RetryAfter time.Duration // 剩余冷却时间
}

// Check 检查是否允许执行
// key: 限流键，如 "login:admin@admin.com"
// interval: 冷却间隔
func (r *LoginRateLimiter) Check(key string, interval time.Duration) CheckResult {
	actual, _ := r.locks.LoadOrStore(key, &lockEntry{})
	entry := actual.(*lockEntry)

	entry.mu.Lock()
	defer entry.mu.Unlock()

	now := time.Now()
	elapsed := now.Sub(entry.lastTime)

	if elapsed < interval {
		return CheckResult{
			Allowed:    false,
			RetryAfter: interval - elapsed,
		}
	}

	entry.lastTime = now
	return CheckResult{Allowed: true}
}

// Reset 清除限流记录（登录成功后调用）
func (r *LoginRateLimiter) Reset(key string) {
	r.locks.Delete(key)
}
