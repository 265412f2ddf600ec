package model

import "gorm.io/datatypes"

// 管理者操作の種類
type AuditAction string

const (
	AuditActionSoftDelete AuditAction = "SOFT_DELETE"
	AuditActionHardDelete AuditAction = "HARD_DELETE"
	AuditActionCreate     AuditAction = "CREATE"
	AuditActionPurge      AuditAction = "PURGE"
)

// 何に対する操作か
type AuditResourceType string

const (
	AuditResourceCategory AuditResourceType = "category"
	AuditResourceProduct  AuditResourceType = "product"
	AuditResourceSeller   AuditResourceType = "seller"
	AuditResourceAddress  AuditResourceType = "shipping_address"
)

// 監査ログ（管理者操作ログ）。
// 「誰が」「何を」「どの対象に」「どう変えたか」を残す。
type AuditLog struct {
	Entity

	//操作したユーザー。定期ジョブの場合は "system"。
	ActorUserID string `gorm:"type:varchar(36);not null;index" json:"actor_user_id"`

	Action       AuditAction       `gorm:"type:varchar(50);not null;index" json:"action"`
	ResourceType AuditResourceType `gorm:"type:varchar(50);not null;index" json:"resource_type"`
	ResourceID   string            `gorm:"type:varchar(36);not null;index" json:"resource_id"`

	Before datatypes.JSON `json:"before,omitempty"`
	After  datatypes.JSON `json:"after,omitempty"`
}

// 定期ジョブが書く監査ログの実行者
const SystemActor = "system"
