package models

import "time"

type User struct {
	ID            uint      `gorm:"primaryKey" json:"id"`
	Username      string    `gorm:"size:50;uniqueIndex;not null" json:"username"`
	Password      string    `gorm:"size:255;not null" json:"-"`
	Name          string    `gorm:"size:100;not null" json:"name"`
	Email         string    `gorm:"size:191;uniqueIndex;not null" json:"email"`
	Phone         *string   `gorm:"size:30" json:"phone,omitempty"`
	Avatar        *string   `gorm:"size:255" json:"avatar,omitempty"`
	Address       *string   `gorm:"size:255" json:"address,omitempty"`
	MemberSince   *string   `gorm:"size:20" json:"member_since,omitempty"`
	Newsletter    bool      `gorm:"default:false" json:"newsletter"`
	Notifications bool      `gorm:"default:true" json:"notifications"`
	Theme         string    `gorm:"size:20;default:'light'" json:"theme"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

func (User) TableName() string {
	return "users"
}
