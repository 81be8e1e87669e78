package model

import (
	"fmt"
	"time"

	"gorm.io/gorm"
)

// DefaultMenuItemHelp is stored when a create request carries no help text.
const DefaultMenuItemHelp = "No help for this menu item"

// MenuItem is a node in an App's navigation tree. Siblings share a
// predecessor (nil = top level) and must not repeat name or sequence.
// The unique indexes back the validation-time sibling checks; rows with a
// NULL predecessor still rely on the application-level check because
// Postgres treats NULLs as distinct in unique indexes.
type MenuItem struct {
	ID                int64          `gorm:"primaryKey" json:"id"`
	AppID             int64          `gorm:"column:app_id;not null;index;uniqueIndex:ux_menu_item_name,priority:1;uniqueIndex:ux_menu_item_seq,priority:1" json:"app_id"`
	App               *App           `gorm:"foreignKey:AppID" json:"app,omitempty"`
	Name              string         `gorm:"column:name;size:150;uniqueIndex:ux_menu_item_name,priority:3" json:"name"`
	Action            *string        `gorm:"column:action;size:150" json:"action"`
	Help              string         `gorm:"column:help;type:text" json:"help"`
	AdministratorOnly bool           `gorm:"column:administrator_only;default:false" json:"administrator_only"`
	Public            bool           `gorm:"column:public;default:false" json:"public"`
	SelfManaged       bool           `gorm:"column:self_managed;default:true" json:"self_managed"`
	Sequence          int            `gorm:"column:sequence;not null;uniqueIndex:ux_menu_item_seq,priority:3" json:"sequence"`
	PredecessorID     *int64         `gorm:"column:predecessor_id;uniqueIndex:ux_menu_item_name,priority:2;uniqueIndex:ux_menu_item_seq,priority:2" json:"predecessor_id"`
	Predecessor       *MenuItem      `gorm:"foreignKey:PredecessorID" json:"predecessor,omitempty"`
	Created           time.Time      `gorm:"column:created;autoCreateTime;index" json:"created"`
	Updated           time.Time      `gorm:"column:updated;autoUpdateTime;index" json:"updated"`
	Deleted           gorm.DeletedAt `gorm:"column:deleted;index" json:"-"`
}

func (MenuItem) TableName() string { return "menu_item" }

func (m MenuItem) URI() string { return fmt.Sprintf("/app/%d/menu_item/%d/", m.AppID, m.ID) }
