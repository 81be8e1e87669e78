package dao

import (
	"context"

	"go-appmanager/internal/domain/model"

	"gorm.io/gorm"
)

type MenuItemUserLinkDAO struct{ DB *gorm.DB }

func NewMenuItemUserLinkDAO(db *gorm.DB) *MenuItemUserLinkDAO {
	return &MenuItemUserLinkDAO{DB: db}
}

func (d *MenuItemUserLinkDAO) ActiveUserLinkExists(ctx context.Context, userID, menuItemID int64) (bool, error) {
	var count int64
	err := d.DB.WithContext(ctx).Model(&model.MenuItemUserLink{}).
		Where("user_id = ? AND menu_item_id = ?", userID, menuItemID).
		Count(&count).Error
	return count > 0, err
}

// ItemIDsForUser returns every menu item id linked to the user,
// including links pointing at soft-deleted items.
func (d *MenuItemUserLinkDAO) ItemIDsForUser(ctx context.Context, userID int64) ([]int64, error) {
	var ids []int64
	err := d.DB.WithContext(ctx).Model(&model.MenuItemUserLink{}).
		Where("user_id = ?", userID).
		Pluck("menu_item_id", &ids).Error
	return ids, err
}

// LinkedAppIDsForUser resolves the app ids reachable through the user's
// links to live menu items. Feeds the member clause of App listing for
// non-administrators.
func (d *MenuItemUserLinkDAO) LinkedAppIDsForUser(ctx context.Context, userID int64) ([]int64, error) {
	var ids []int64
	err := d.DB.WithContext(ctx).Model(&model.MenuItemUserLink{}).
		Joins("JOIN menu_item mi ON mi.id = menu_item_user_link.menu_item_id AND mi.deleted IS NULL").
		Where("menu_item_user_link.user_id = ?", userID).
		Distinct().Pluck("mi.app_id", &ids).Error
	return ids, err
}

// CountPermittedItems counts live menu items among ids whose App the
// member holds a live link for. Callers compare against len(ids) to
// reject a reconciliation request wholesale before mutating anything.
func (d *MenuItemUserLinkDAO) CountPermittedItems(ctx context.Context, ids []int64, memberID int64) (int64, error) {
	if len(ids) == 0 {
		return 0, nil
	}
	var count int64
	err := d.DB.WithContext(ctx).Model(&model.MenuItem{}).
		Where("id IN ?", ids).
		Where(itemAppLinkedToMember, memberID).
		Count(&count).Error
	return count, err
}

// Reconcile replaces the user's link set with exactly ids, in one
// transaction. Links outside the set are hard-deleted; links already
// present survive untouched, so re-running with the same ids is a no-op.
// The existing-set read joins live menu items only, matching the create
// side against what a reader can still see.
func (d *MenuItemUserLinkDAO) Reconcile(ctx context.Context, userID int64, ids []int64) (created, deleted int64, err error) {
	err = d.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		del := tx.Where("user_id = ?", userID)
		if len(ids) > 0 {
			del = del.Where("menu_item_id NOT IN ?", ids)
		}
		res := del.Delete(&model.MenuItemUserLink{})
		if res.Error != nil {
			return res.Error
		}
		deleted = res.RowsAffected

		if len(ids) == 0 {
			return nil
		}
		var existing []int64
		if err := tx.Model(&model.MenuItemUserLink{}).
			Joins("JOIN menu_item mi ON mi.id = menu_item_user_link.menu_item_id AND mi.deleted IS NULL").
			Where("menu_item_user_link.user_id = ?", userID).
			Pluck("menu_item_user_link.menu_item_id", &existing).Error; err != nil {
			return err
		}
		have := make(map[int64]struct{}, len(existing))
		for _, id := range existing {
			have[id] = struct{}{}
		}
		var missing []model.MenuItemUserLink
		for _, id := range ids {
			if _, ok := have[id]; !ok {
				missing = append(missing, model.MenuItemUserLink{UserID: userID, MenuItemID: id})
			}
		}
		if len(missing) == 0 {
			return nil
		}
		if err := tx.Create(&missing).Error; err != nil {
			return err
		}
		created = int64(len(missing))
		return nil
	})
	return created, deleted, err
}
