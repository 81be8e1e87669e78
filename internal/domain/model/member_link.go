package model

import (
	"time"

	"gorm.io/gorm"
)

// DefaultMemberID marks a MemberLink that applies to every Member.
// App listing lazily copies these sentinel links to the calling Member.
const DefaultMemberID int64 = 0

// MemberLink entitles a Member to use an App. Uniqueness per
// (app, member_id) is an existence check on the live rows, not a database
// constraint: a soft-deleted link must not block re-linking.
type MemberLink struct {
	ID       int64          `gorm:"primaryKey" json:"id"`
	AppID    int64          `gorm:"column:app_id;not null;index:idx_member_link_app_member,priority:1" json:"app_id"`
	App      *App           `gorm:"foreignKey:AppID" json:"app,omitempty"`
	MemberID int64          `gorm:"column:member_id;not null;index:idx_member_link_app_member,priority:2" json:"member_id"`
	Created  time.Time      `gorm:"column:created;autoCreateTime" json:"created"`
	Updated  time.Time      `gorm:"column:updated;autoUpdateTime" json:"updated"`
	Deleted  gorm.DeletedAt `gorm:"column:deleted;index" json:"-"`
}

func (MemberLink) TableName() string { return "member_link" }
