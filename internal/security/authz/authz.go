// Package authz holds the permission rules for every entity/operation
// pair. Decisions are pure given a principal, the target record and the
// small lookups the rules need; store access and directory calls go
// through narrow injected interfaces so the rules test without a live
// database or network.
package authz

import (
	"context"

	"go-appmanager/internal/directory/membership"
	"go-appmanager/internal/metrics"
	"go-appmanager/internal/util/errcode"
)

// Principal is the acting identity extracted from the request token.
type Principal struct {
	UserID        int64
	MemberID      int64
	Administrator bool
	SelfManaged   bool
	// Token is the raw bearer token, forwarded on directory lookups so
	// the membership platform applies the caller's own access rights.
	Token string
}

// Rules carries the platform identities injected from configuration.
// OwnerMemberID gates App and MenuItem mutation; SuperuserID gates
// member-linking of private Apps.
type Rules struct {
	OwnerMemberID int64
	SuperuserID   int64
}

func (r Rules) IsOwnerMember(p Principal) bool { return p.MemberID == r.OwnerMemberID }
func (r Rules) IsSuperuser(p Principal) bool   { return p.UserID == r.SuperuserID }

// MemberLinkChecker answers whether a live MemberLink exists for an
// (app, member) pair.
type MemberLinkChecker interface {
	ActiveMemberLinkExists(ctx context.Context, appID, memberID int64) (bool, error)
}

// UserLinkChecker answers whether a live MenuItemUserLink exists for a
// (user, menu item) pair.
type UserLinkChecker interface {
	ActiveUserLinkExists(ctx context.Context, userID, menuItemID int64) (bool, error)
}

// Engine evaluates every rule. A nil denial means allow; a non-nil error
// means the lookup itself failed and no decision was reached.
type Engine struct {
	rules       Rules
	memberLinks MemberLinkChecker
	userLinks   UserLinkChecker
	directory   membership.Directory
}

func NewEngine(rules Rules, ml MemberLinkChecker, ul UserLinkChecker, dir membership.Directory) *Engine {
	return &Engine{rules: rules, memberLinks: ml, userLinks: ul, directory: dir}
}

func (e *Engine) Rules() Rules { return e.rules }

func deny(code string) *errcode.Error {
	metrics.AuthzDenied.WithLabelValues(code).Inc()
	return errcode.Forbidden(code)
}
