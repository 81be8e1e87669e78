package authz

import (
	"context"

	"go-appmanager/internal/domain/model"
	"go-appmanager/internal/util/errcode"
)

// CanCreateMemberLink requires an administrator; private Apps are linked
// by the platform superuser only. A live link for the same pair blocks
// the request outright.
func (e *Engine) CanCreateMemberLink(ctx context.Context, p Principal, app *model.App, targetMemberID int64) (*errcode.Error, error) {
	if !p.Administrator {
		return deny(errcode.MemberLinkCreate201), nil
	}
	if app.Private && !e.rules.IsSuperuser(p) {
		return deny(errcode.MemberLinkCreate202), nil
	}
	exists, err := e.memberLinks.ActiveMemberLinkExists(ctx, app.ID, targetMemberID)
	if err != nil {
		return nil, err
	}
	if exists {
		return deny(errcode.MemberLinkCreate203), nil
	}
	return nil, nil
}

// CanDeleteMemberLink requires an administrator; private Apps again need
// the superuser.
func (e *Engine) CanDeleteMemberLink(p Principal, app *model.App) *errcode.Error {
	if !p.Administrator {
		return deny(errcode.MemberLinkDelete201)
	}
	if app.Private && !e.rules.IsSuperuser(p) {
		return deny(errcode.MemberLinkDelete202)
	}
	return nil
}
