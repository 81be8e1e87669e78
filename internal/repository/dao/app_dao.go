package dao

import (
	"context"
	"errors"
	"time"

	"go-appmanager/internal/domain/model"

	"gorm.io/gorm"
)

type AppDAO struct{ DB *gorm.DB }

func NewAppDAO(db *gorm.DB) *AppDAO { return &AppDAO{DB: db} }

func (d *AppDAO) FindByID(ctx context.Context, id int64) (*model.App, error) {
	var m model.App
	if err := d.DB.WithContext(ctx).First(&m, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &m, nil
}

// NameExistsCI reports whether any App row, deleted or not, already holds
// the name (case-insensitive). Deleted rows still block reuse; excludeID
// skips the record being updated.
func (d *AppDAO) NameExistsCI(ctx context.Context, name string, excludeID int64) (bool, error) {
	q := d.DB.WithContext(ctx).Unscoped().Model(&model.App{}).
		Where("LOWER(name) = LOWER(?)", name)
	if excludeID > 0 {
		q = q.Where("id <> ?", excludeID)
	}
	var count int64
	if err := q.Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

func (d *AppDAO) Create(ctx context.Context, m *model.App) error {
	return d.DB.WithContext(ctx).Create(m).Error
}

// Update writes an explicit column map so false booleans and cleared
// optionals persist.
func (d *AppDAO) Update(ctx context.Context, id int64, fields map[string]any) error {
	return d.DB.WithContext(ctx).Model(&model.App{}).Where("id = ?", id).Updates(fields).Error
}

// SoftDeleteCascade stamps the App and every live MenuItem under it in
// one transaction. MemberLinks and MenuItemUserLinks are left untouched.
func (d *AppDAO) SoftDeleteCascade(ctx context.Context, id int64) error {
	now := time.Now()
	return d.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&model.MenuItem{}).
			Where("app_id = ?", id).
			Update("deleted", now).Error; err != nil {
			return err
		}
		return tx.Model(&model.App{}).Where("id = ?", id).Update("deleted", now).Error
	})
}

// AppVisibility is the actor-dependent scope for List. Unrestricted is
// the owner member's view. Otherwise the member clause requires a live
// MemberLink plus online, and MemberClauseIDs (when restricted) pins the
// clause to the ids reachable through the actor's own user links.
type AppVisibility struct {
	Unrestricted           bool
	MemberID               int64
	MemberClauseRestricted bool
	MemberClauseIDs        []int64
}

const appHasPublicMenuItem = `EXISTS (
	SELECT 1 FROM menu_item mi
	WHERE mi.app_id = app.id AND mi.public = TRUE AND mi.deleted IS NULL)`

const appHasMemberLink = `EXISTS (
	SELECT 1 FROM member_link ml
	WHERE ml.app_id = app.id AND ml.member_id = ? AND ml.deleted IS NULL)`

// List pages Apps visible under vis. The predicate is a single
// disjunction so one query returns the correct page without
// post-filtering.
func (d *AppDAO) List(ctx context.Context, vis AppVisibility, f ListFilter) ([]model.App, int64, error) {
	q := d.DB.WithContext(ctx).Model(&model.App{})
	if f.HasIDs {
		q = q.Where("app.id IN ?", idsOrImpossible(f.IDs))
	}
	if !vis.Unrestricted {
		member := d.DB.Where(appHasMemberLink, vis.MemberID).Where("app.online = TRUE")
		if vis.MemberClauseRestricted {
			member = member.Where("app.id IN ?", idsOrImpossible(vis.MemberClauseIDs))
		}
		q = q.Where(d.DB.Where(appHasPublicMenuItem).Or(member))
	}
	var total int64
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}
	var list []model.App
	if err := q.Order(f.order()).Limit(f.limit()).Offset(f.offset()).Find(&list).Error; err != nil {
		return nil, 0, err
	}
	return list, total, nil
}

// idsOrImpossible keeps "IN ()" valid: an empty restricted set must match
// nothing, not everything.
func idsOrImpossible(ids []int64) []int64 {
	if len(ids) == 0 {
		return []int64{-1}
	}
	return ids
}
