package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// 全エンティティ共通の列
type Entity struct {
	ID        string    `gorm:"type:varchar(36);primaryKey" json:"id"`
	CreatedAt time.Time `gorm:"not null;autoCreateTime;index" json:"created_at"`
	UpdatedAt time.Time `gorm:"not null;autoUpdateTime" json:"updated_at"`
}

// IDは作成時に一度だけ採番する
func (e *Entity) BeforeCreate(tx *gorm.DB) error {
	if e.ID == "" {
		e.ID = uuid.NewString()
	}
	return nil
}

// 論理削除できるエンティティ。
// 通常の読み取りでは is_deleted = false の行だけが見える。
type SoftDeletableEntity struct {
	Entity
	IsDeleted bool       `gorm:"not null;default:false;index" json:"-"`
	DeletedAt *time.Time `json:"-"`
}
