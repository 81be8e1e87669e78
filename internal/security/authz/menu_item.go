package authz

import (
	"context"

	"go-appmanager/internal/domain/model"
	"go-appmanager/internal/util/errcode"
)

func (e *Engine) CanCreateMenuItem(p Principal) *errcode.Error {
	if e.rules.IsOwnerMember(p) {
		return nil
	}
	return deny(errcode.MenuItemCreate201)
}

// CanReadMenuItem allows public items and the owner member. Private items
// need a grant: a MemberLink on the item's App for administrators, a
// per-user MenuItemUserLink for everyone else.
func (e *Engine) CanReadMenuItem(ctx context.Context, p Principal, item *model.MenuItem) (*errcode.Error, error) {
	if item.Public || e.rules.IsOwnerMember(p) {
		return nil, nil
	}
	if p.Administrator {
		linked, err := e.memberLinks.ActiveMemberLinkExists(ctx, item.AppID, p.MemberID)
		if err != nil {
			return nil, err
		}
		if !linked {
			return deny(errcode.MenuItemRead201), nil
		}
		return nil, nil
	}
	linked, err := e.userLinks.ActiveUserLinkExists(ctx, p.UserID, item.ID)
	if err != nil {
		return nil, err
	}
	if !linked {
		return deny(errcode.MenuItemRead202), nil
	}
	return nil, nil
}

func (e *Engine) CanUpdateMenuItem(p Principal) *errcode.Error {
	if e.rules.IsOwnerMember(p) {
		return nil
	}
	return deny(errcode.MenuItemUpdate201)
}

func (e *Engine) CanDeleteMenuItem(p Principal) *errcode.Error {
	if e.rules.IsOwnerMember(p) {
		return nil
	}
	return deny(errcode.MenuItemDelete201)
}
