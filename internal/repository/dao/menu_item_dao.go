package dao

import (
	"context"
	"errors"

	"go-appmanager/internal/domain/model"

	"gorm.io/gorm"
)

type MenuItemDAO struct{ DB *gorm.DB }

func NewMenuItemDAO(db *gorm.DB) *MenuItemDAO { return &MenuItemDAO{DB: db} }

// FindByIDInApp resolves the item only inside its path-scoped App,
// carrying the App and one level of predecessor.
func (d *MenuItemDAO) FindByIDInApp(ctx context.Context, appID, id int64) (*model.MenuItem, error) {
	var m model.MenuItem
	err := d.DB.WithContext(ctx).
		Preload("App").Preload("Predecessor").
		Where("app_id = ?", appID).
		First(&m, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &m, nil
}

func (d *MenuItemDAO) siblings(ctx context.Context, appID int64, predecessorID *int64, excludeID int64) *gorm.DB {
	q := d.DB.WithContext(ctx).Model(&model.MenuItem{}).Where("app_id = ?", appID)
	if predecessorID == nil {
		q = q.Where("predecessor_id IS NULL")
	} else {
		q = q.Where("predecessor_id = ?", *predecessorID)
	}
	if excludeID > 0 {
		q = q.Where("id <> ?", excludeID)
	}
	return q
}

// SiblingNameExists reports a live sibling under the same (app,
// predecessor) already holding the name. excludeID skips the record
// being updated.
func (d *MenuItemDAO) SiblingNameExists(ctx context.Context, appID int64, predecessorID *int64, name string, excludeID int64) (bool, error) {
	var count int64
	err := d.siblings(ctx, appID, predecessorID, excludeID).
		Where("name = ?", name).
		Count(&count).Error
	return count > 0, err
}

// SiblingSequenceExists is the sequence twin of SiblingNameExists.
func (d *MenuItemDAO) SiblingSequenceExists(ctx context.Context, appID int64, predecessorID *int64, sequence int, excludeID int64) (bool, error) {
	var count int64
	err := d.siblings(ctx, appID, predecessorID, excludeID).
		Where("sequence = ?", sequence).
		Count(&count).Error
	return count > 0, err
}

func (d *MenuItemDAO) Create(ctx context.Context, m *model.MenuItem) error {
	return d.DB.WithContext(ctx).Create(m).Error
}

func (d *MenuItemDAO) Update(ctx context.Context, id int64, fields map[string]any) error {
	return d.DB.WithContext(ctx).Model(&model.MenuItem{}).Where("id = ?", id).Updates(fields).Error
}

// SoftDelete stamps the item only; children keep their predecessor_id.
func (d *MenuItemDAO) SoftDelete(ctx context.Context, id int64) error {
	return d.DB.WithContext(ctx).Delete(&model.MenuItem{}, id).Error
}

// MenuItemVisibility scopes List inside one App. MemberActive turns the
// member clause on (owner member, or a live MemberLink on the App); the
// two Force flags narrow it for non-self-managed members and
// non-administrators, and IDs (when restricted) pins it to the actor's
// own user-linked items.
type MenuItemVisibility struct {
	AppID        int64
	MemberActive bool
	ForceNotSelfManaged bool
	ForceNotAdminOnly   bool
	IDRestricted        bool
	IDs                 []int64
}

func (d *MenuItemDAO) List(ctx context.Context, vis MenuItemVisibility, f ListFilter) ([]model.MenuItem, int64, error) {
	q := d.DB.WithContext(ctx).Model(&model.MenuItem{}).Where("app_id = ?", vis.AppID)
	if f.HasIDs {
		q = q.Where("id IN ?", idsOrImpossible(f.IDs))
	}
	public := d.DB.Where("public = TRUE")
	if vis.MemberActive {
		member := d.DB.Where("1 = 1")
		if vis.ForceNotSelfManaged {
			member = member.Where("self_managed = FALSE")
		}
		if vis.ForceNotAdminOnly {
			member = member.Where("administrator_only = FALSE")
		}
		if vis.IDRestricted {
			member = member.Where("id IN ?", idsOrImpossible(vis.IDs))
		}
		q = q.Where(public.Or(member))
	} else {
		q = q.Where(public)
	}
	var total int64
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}
	var list []model.MenuItem
	if err := q.Preload("App").Preload("Predecessor").
		Order(f.order()).Limit(f.limit()).Offset(f.offset()).Find(&list).Error; err != nil {
		return nil, 0, err
	}
	return list, total, nil
}

const itemAppLinkedToMember = `EXISTS (
	SELECT 1 FROM member_link ml
	WHERE ml.app_id = menu_item.app_id AND ml.member_id = ? AND ml.deleted IS NULL)`

// ListForUserLinks pages the items behind a user's links: ids come in
// pre-intersected with any caller filter, and the actor's member must
// hold a live link on each item's App.
func (d *MenuItemDAO) ListForUserLinks(ctx context.Context, itemIDs []int64, actorMemberID int64, f ListFilter) ([]model.MenuItem, int64, error) {
	q := d.DB.WithContext(ctx).Model(&model.MenuItem{}).
		Where("id IN ?", idsOrImpossible(itemIDs)).
		Where(itemAppLinkedToMember, actorMemberID)
	var total int64
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}
	var list []model.MenuItem
	if err := q.Preload("App").Preload("Predecessor").
		Order(f.order()).Limit(f.limit()).Offset(f.offset()).Find(&list).Error; err != nil {
		return nil, 0, err
	}
	return list, total, nil
}
