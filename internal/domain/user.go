package domain

import (
	"time"
)

// User 表示系统的管理员账号，普通员工不登录本系统。
type User struct {
	ID           int64     `json:"id"`
	Username     string    `json:"username"`
	PasswordHash string    `json:"-"`
	FullName     string    `json:"fullName"`
	CreatedAt    time.Time `json:"createdAt"`
	Version      int32     `json:"-"`
}
