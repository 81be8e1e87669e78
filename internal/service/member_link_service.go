package service

import (
	"context"

	"go.uber.org/zap"

	"go-appmanager/internal/directory/membership"
	"go-appmanager/internal/domain/model"
	"go-appmanager/internal/logging"
	"go-appmanager/internal/security/authz"
	"go-appmanager/internal/util/errcode"
)

type MemberLinkService struct {
	Apps      AppStore
	Links     MemberLinkStore
	Directory membership.Directory
	Authz     *authz.Engine
	Log       *logging.Logger
}

func NewMemberLinkService(apps AppStore, links MemberLinkStore, dir membership.Directory, az *authz.Engine, log *logging.Logger) *MemberLinkService {
	return &MemberLinkService{Apps: apps, Links: links, Directory: dir, Authz: az, Log: log}
}

// Create links a member to the path-scoped App. Only the platform
// superuser may link a member other than their own, and then only
// members they can read in the directory.
func (s *MemberLinkService) Create(ctx context.Context, p authz.Principal, appID int64, body input) (*model.MemberLink, error) {
	app, err := s.Apps.FindByID(ctx, appID)
	if err != nil {
		return nil, err
	}
	if app == nil {
		return nil, errcode.NotFound(errcode.MemberLinkCreate001)
	}

	errs := errcode.FieldErrors{}
	target, ok := asInt(body["member_id"])
	if !body.has("member_id") || body["member_id"] == nil || !ok {
		errs.Add("member_id", errcode.MemberLinkCreate101)
		return nil, errs
	}
	if target != p.MemberID {
		if !s.Authz.Rules().IsSuperuser(p) {
			errs.Add("member_id", errcode.MemberLinkCreate102)
			return nil, errs
		}
		found, err := s.Directory.MemberExists(ctx, p.Token, target)
		if err != nil {
			return nil, err
		}
		if !found {
			errs.Add("member_id", errcode.MemberLinkCreate103)
			return nil, errs
		}
	}

	denial, err := s.Authz.CanCreateMemberLink(ctx, p, app, target)
	if err != nil {
		return nil, err
	}
	if denial != nil {
		return nil, denial
	}

	link := &model.MemberLink{AppID: appID, MemberID: target}
	if err := s.Links.Create(ctx, link); err != nil {
		return nil, err
	}
	logging.FromContext(ctx).Info("member link created",
		zap.Int64("app_id", appID), zap.Int64("member_id", target))
	return link, nil
}

// Delete removes the link between the actor's own member and the App.
// A missing App and a missing link report the same way: there is no
// link to delete under that path.
func (s *MemberLinkService) Delete(ctx context.Context, p authz.Principal, appID int64) error {
	app, err := s.Apps.FindByID(ctx, appID)
	if err != nil {
		return err
	}
	if app == nil {
		return errcode.NotFound(errcode.MemberLinkDelete001)
	}
	link, err := s.Links.FindActive(ctx, appID, p.MemberID)
	if err != nil {
		return err
	}
	if link == nil {
		return errcode.NotFound(errcode.MemberLinkDelete001)
	}
	if denial := s.Authz.CanDeleteMemberLink(p, app); denial != nil {
		return denial
	}
	if err := s.Links.SoftDelete(ctx, link.ID); err != nil {
		return err
	}
	logging.FromContext(ctx).Info("member link deleted",
		zap.Int64("app_id", appID), zap.Int64("member_id", p.MemberID))
	return nil
}
