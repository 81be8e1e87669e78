package dao

import (
	"context"
	"errors"

	"go-appmanager/internal/domain/model"

	"gorm.io/gorm"
)

type MemberLinkDAO struct{ DB *gorm.DB }

func NewMemberLinkDAO(db *gorm.DB) *MemberLinkDAO { return &MemberLinkDAO{DB: db} }

func (d *MemberLinkDAO) ActiveMemberLinkExists(ctx context.Context, appID, memberID int64) (bool, error) {
	var count int64
	err := d.DB.WithContext(ctx).Model(&model.MemberLink{}).
		Where("app_id = ? AND member_id = ?", appID, memberID).
		Count(&count).Error
	return count > 0, err
}

func (d *MemberLinkDAO) FindActive(ctx context.Context, appID, memberID int64) (*model.MemberLink, error) {
	var m model.MemberLink
	err := d.DB.WithContext(ctx).
		Where("app_id = ? AND member_id = ?", appID, memberID).
		First(&m).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &m, nil
}

func (d *MemberLinkDAO) Create(ctx context.Context, m *model.MemberLink) error {
	return d.DB.WithContext(ctx).Create(m).Error
}

func (d *MemberLinkDAO) SoftDelete(ctx context.Context, id int64) error {
	return d.DB.WithContext(ctx).Delete(&model.MemberLink{}, id).Error
}

// AppIDsForMember returns the app ids the member holds live links for.
func (d *MemberLinkDAO) AppIDsForMember(ctx context.Context, memberID int64) ([]int64, error) {
	var ids []int64
	err := d.DB.WithContext(ctx).Model(&model.MemberLink{}).
		Where("member_id = ?", memberID).
		Distinct().Pluck("app_id", &ids).Error
	return ids, err
}

// ProvisionDefaults copies sentinel (member_id 0) links the member does
// not hold yet onto the member's own id. Idempotent; returns how many
// links were created. Runs in one transaction so a concurrent list call
// cannot observe a partial copy.
func (d *MemberLinkDAO) ProvisionDefaults(ctx context.Context, memberID int64) (int, error) {
	var created int
	err := d.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var defaults []int64
		if err := tx.Model(&model.MemberLink{}).
			Where("member_id = ?", model.DefaultMemberID).
			Distinct().Pluck("app_id", &defaults).Error; err != nil {
			return err
		}
		if len(defaults) == 0 {
			return nil
		}
		var own []int64
		if err := tx.Model(&model.MemberLink{}).
			Where("member_id = ?", memberID).
			Distinct().Pluck("app_id", &own).Error; err != nil {
			return err
		}
		have := make(map[int64]struct{}, len(own))
		for _, id := range own {
			have[id] = struct{}{}
		}
		var missing []model.MemberLink
		for _, appID := range defaults {
			if _, ok := have[appID]; !ok {
				missing = append(missing, model.MemberLink{AppID: appID, MemberID: memberID})
			}
		}
		if len(missing) == 0 {
			return nil
		}
		if err := tx.Create(&missing).Error; err != nil {
			return err
		}
		created = len(missing)
		return nil
	})
	return created, err
}
