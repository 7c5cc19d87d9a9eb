package storage

import "time"

// SessionModel is the GORM model for sessions table
type SessionModel struct {
	Command            string `gorm:"not null;default:''"`
	CreatedAt          time.Time
	ID                 string  `gorm:"primaryKey"`
	IsActive           bool    `gorm:"not null;index:idx_active"`
	LocalOnly          bool    `gorm:"not null;default:false"`
	ParentID           *string `gorm:"index:idx_parent;default:null"`
	Position           int     `gorm:"not null;default:0;index:idx_position"`
	TemplateBadgeLabel string  `gorm:"not null;default:''"`
	TemplateName       string  `gorm:"not null;default:''"`
	Title              string  `gorm:"not null;default:''"`
	UpdatedAt          time.Time
	WorkingDirectory   string `gorm:"not null;default:''"`
	Workspace          string `gorm:"not null;default:'';index:idx_workspace"`
	WorkspaceOrder     *int   `gorm:"default:null"`
}

// TableName specifies the table name for GORM
func (SessionModel) TableName() string { return "sessions" }

// SessionPinModel marks a session as pinned
type SessionPinModel struct {
	CreatedAt time.Time
	SessionID string `gorm:"primaryKey"`
}

// TableName specifies the table name for GORM
func (SessionPinModel) TableName() string { return "session_pins" }

// SessionStickyModel marks a session as sticky
type SessionStickyModel struct {
	CreatedAt time.Time
	SessionID string `gorm:"primaryKey"`
}

// TableName specifies the table name for GORM
func (SessionStickyModel) TableName() string { return "session_sticky" }

// ManualOrderModel is one entry of a workspace manual order
type ManualOrderModel struct {
	Position     int    `gorm:"primaryKey;autoIncrement:false"`
	SessionID    string `gorm:"not null"`
	WorkspaceKey string `gorm:"primaryKey"`
}

// TableName specifies the table name for GORM
func (ManualOrderModel) TableName() string { return "manual_orders" }
