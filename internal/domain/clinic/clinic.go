// Package clinic holds the value types shared across the scheduling domain.
package clinic

import "time"

// Person holds the attributes shared by human participants. It carries no
// identity of its own and is always embedded in a concrete resource.
type Person struct {
	FirstName string `gorm:"column:first_name;type:varchar(100)" json:"firstName"`
	LastName  string `gorm:"column:last_name;type:varchar(100)" json:"lastName"`
	Age       int    `gorm:"column:age;not null" json:"age"`
	Email     string `gorm:"column:email;type:varchar(255);not null" json:"email"`
}

// Equal reports structural equality over all Person fields.
func (p Person) Equal(other Person) bool {
	return p == other
}

type AuditAction string

const (
	ActionCreate    AuditAction = "create"
	ActionDelete    AuditAction = "delete"
	ActionDeleteAll AuditAction = "delete_all"
)

// AuditLog records a mutating operation against a scheduling resource.
type AuditLog struct {
	ID         int64     `gorm:"primaryKey;autoIncrement"`
	OccurredAt time.Time `gorm:"autoCreateTime;index"`

	Action       AuditAction `gorm:"column:action;type:varchar(20);not null;index"`
	ResourceType string      `gorm:"column:resource_type;type:varchar(50);not null;index"`
	ResourceKey  string      `gorm:"column:resource_key;type:varchar(100);index"`

	RequestID string `gorm:"column:request_id;type:varchar(50);index"`
	IPAddress string `gorm:"column:ip_address;type:varchar(45)"` // Supports IPv6
}

func (AuditLog) TableName() string {
	return "audit.logs"
}
