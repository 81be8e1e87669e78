package model

import (
	"time"
)

// MenuItemUserLink grants one User visibility of one MenuItem. The pair is
// hard-unique; reconciliation removes rows physically so a re-grant never
// collides with a leftover tombstone.
type MenuItemUserLink struct {
	ID         int64     `gorm:"primaryKey" json:"id"`
	UserID     int64     `gorm:"column:user_id;not null;uniqueIndex:ux_user_link_pair,priority:1" json:"user_id"`
	MenuItemID int64     `gorm:"column:menu_item_id;not null;uniqueIndex:ux_user_link_pair,priority:2;index" json:"menu_item_id"`
	MenuItem   *MenuItem `gorm:"foreignKey:MenuItemID" json:"menu_item,omitempty"`
	Created    time.Time `gorm:"column:created;autoCreateTime" json:"created"`
	Updated    time.Time `gorm:"column:updated;autoUpdateTime" json:"updated"`
}

func (MenuItemUserLink) TableName() string { return "menu_item_user_link" }
