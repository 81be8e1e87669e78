package model

import (
	"fmt"
	"time"

	"gorm.io/gorm"
)

// App is an installable UI application entry. Access is granted per Member
// through MemberLink rows; navigation inside an App is a tree of MenuItems.
type App struct {
	ID          int64          `gorm:"primaryKey" json:"id"`
	Name        string         `gorm:"column:name;size:50;index" json:"name"`
	Action      *string        `gorm:"column:action;size:8000" json:"action"`
	Description *string        `gorm:"column:description;type:text" json:"description"`
	IconURL     string         `gorm:"column:icon_url;size:8000" json:"icon_url"`
	Online      bool           `gorm:"column:online;default:false" json:"online"`
	InAppStore  bool           `gorm:"column:in_app_store;default:false;index" json:"in_app_store"`
	Private     bool           `gorm:"column:private;default:false;index" json:"private"`
	Maintenance bool           `gorm:"column:maintenance;default:false;index" json:"maintenance"`
	Extra       map[string]any `gorm:"column:extra;serializer:json" json:"extra"`
	Created     time.Time      `gorm:"column:created;autoCreateTime;index" json:"created"`
	Updated     time.Time      `gorm:"column:updated;autoUpdateTime;index" json:"updated"`
	Deleted     gorm.DeletedAt `gorm:"column:deleted;index" json:"-"`
}

func (App) TableName() string { return "app" }

// URI is the canonical resource path for read/update operations.
func (a App) URI() string { return fmt.Sprintf("/app/%d/", a.ID) }
