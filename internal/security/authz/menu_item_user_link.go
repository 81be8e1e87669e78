package authz

import (
	"context"

	"go-appmanager/internal/util/errcode"
)

// CanListUserLinks lets a user read their own links. Reading another
// user's links requires the directory to resolve the target under the
// actor's credentials, and the target must sit in the actor's member.
func (e *Engine) CanListUserLinks(ctx context.Context, p Principal, targetUserID int64) (*errcode.Error, error) {
	if p.UserID == targetUserID {
		return nil, nil
	}
	memberID, found, err := e.directory.UserMemberID(ctx, p.Token, targetUserID)
	if err != nil {
		return nil, err
	}
	if !found {
		return deny(errcode.UserLinkList201), nil
	}
	if memberID != p.MemberID {
		return deny(errcode.UserLinkList202), nil
	}
	return nil, nil
}

// CanUpdateUserLinks requires an administrator of a self-managed member.
// When the target is somebody else, the directory must resolve them
// under the actor's credentials.
func (e *Engine) CanUpdateUserLinks(ctx context.Context, p Principal, targetUserID int64) (*errcode.Error, error) {
	if !p.Administrator {
		return deny(errcode.UserLinkUpdate201), nil
	}
	if !p.SelfManaged {
		return deny(errcode.UserLinkUpdate202), nil
	}
	if p.UserID == targetUserID {
		return nil, nil
	}
	found, err := e.directory.UserExists(ctx, p.Token, targetUserID)
	if err != nil {
		return nil, err
	}
	if !found {
		return deny(errcode.UserLinkUpdate203), nil
	}
	return nil, nil
}
