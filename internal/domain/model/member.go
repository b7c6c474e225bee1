package model

import "time"

type Role string

const (
	RoleUser  Role = "USER"
	RoleAdmin Role = "ADMIN"
)

// Emailは登録後に変更しない。Roleも作成時に決める。
type Member struct {
	ID           int64  `gorm:"primaryKey;autoIncrement" json:"id"`
	Email        string `gorm:"type:varchar(255);uniqueIndex;not null" json:"email"`
	PasswordHash string `gorm:"column:password_hash;not null" json:"-"`
	Name         string `gorm:"type:varchar(255);not null" json:"name"`
	Address      string `gorm:"type:varchar(255)" json:"address"`
	Role         Role   `gorm:"type:varchar(20);not null;default:'USER'" json:"role"`
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
