package authz

import (
	"context"

	"go-appmanager/internal/domain/model"
	"go-appmanager/internal/util/errcode"
)

// CanCreateApp allows only the platform owner member.
func (e *Engine) CanCreateApp(p Principal) *errcode.Error {
	if e.rules.IsOwnerMember(p) {
		return nil
	}
	return deny(errcode.AppCreate201)
}

// CanReadApp allows the owner member outright; anyone else needs a live
// MemberLink between the App and their own member.
func (e *Engine) CanReadApp(ctx context.Context, p Principal, app *model.App) (*errcode.Error, error) {
	if e.rules.IsOwnerMember(p) {
		return nil, nil
	}
	linked, err := e.memberLinks.ActiveMemberLinkExists(ctx, app.ID, p.MemberID)
	if err != nil {
		return nil, err
	}
	if !linked {
		return deny(errcode.AppRead201), nil
	}
	return nil, nil
}

func (e *Engine) CanUpdateApp(p Principal) *errcode.Error {
	if e.rules.IsOwnerMember(p) {
		return nil
	}
	return deny(errcode.AppUpdate201)
}

func (e *Engine) CanDeleteApp(p Principal) *errcode.Error {
	if e.rules.IsOwnerMember(p) {
		return nil
	}
	return deny(errcode.AppDelete201)
}
