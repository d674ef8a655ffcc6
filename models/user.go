package models

import (
	"encoding/json"
	"time"
)

// Admin roles. Created out-of-band (cmd/init-db) and consumed by the auth
// gateway; there is no self-registration.
const (
	RoleAdmin      = "admin"
	RoleSuperAdmin = "super_admin"
)

type User struct {
	ID        int       `gorm:"primaryKey;column:id" json:"id"`
	Email     string    `gorm:"column:email;unique" json:"email"`
	Password  string    `gorm:"column:password" json:"-"`
	Name      string    `gorm:"column:name" json:"name"`
	Role      string    `gorm:"column:role;default:admin" json:"role"`
	IsActive  bool      `gorm:"column:is_active;default:true" json:"is_active"`
	CreatedAt time.Time `gorm:"column:created_at" json:"created_at"`
	UpdatedAt time.Time `gorm:"column:updated_at" json:"updated_at"`
}

// ActivityLog is the append-only audit trail of admin actions. Rows are only
// ever inserted.
type ActivityLog struct {
	ID         int       `gorm:"primaryKey;column:id" json:"id"`
	UserID     int       `gorm:"column:user_id" json:"user_id"`
	Action     string    `gorm:"column:action;size:100" json:"action"`
	EntityType *string   `gorm:"column:entity_type;size:50" json:"entity_type,omitempty"`
	EntityID   *int      `gorm:"column:entity_id" json:"entity_id,omitempty"`
	Details    *string   `gorm:"column:details;type:text" json:"details,omitempty"`
	IPAddress  *string   `gorm:"column:ip_address;size:45" json:"ip_address,omitempty"`
	CreatedAt  time.Time `gorm:"column:created_at" json:"created_at"`

	User User `gorm:"foreignKey:UserID" json:"user,omitempty"`
}

func (User) TableName() string {
	return "users"
}

func (ActivityLog) TableName() string {
	return "activity_logs"
}

// MarshalDetails encodes free-form detail values for an activity-log row.
func MarshalDetails(v any) *string {
	b, err := json.Marshal(v)
	if err != nil {
		return nil
	}
	s := string(b)
	return &s
}
