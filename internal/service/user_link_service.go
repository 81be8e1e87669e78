package service

import (
	"context"

	"go.uber.org/zap"

	"go-appmanager/internal/domain/model"
	"go-appmanager/internal/logging"
	"go-appmanager/internal/metrics"
	"go-appmanager/internal/security/authz"
	"go-appmanager/internal/util/errcode"
)

type UserLinkService struct {
	Items MenuItemStore
	Links UserLinkStore
	Authz *authz.Engine
	Log   *logging.Logger
}

func NewUserLinkService(items MenuItemStore, links UserLinkStore, az *authz.Engine, log *logging.Logger) *UserLinkService {
	return &UserLinkService{Items: items, Links: links, Authz: az, Log: log}
}

// List pages the menu items the target user holds links for, restricted
// to Apps the actor's own member is linked to.
func (s *UserLinkService) List(ctx context.Context, p authz.Principal, targetUserID int64, params ListParams) ([]model.MenuItem, PageMeta, error) {
	filter, verr := buildFilter(params, errcode.UserLinkList001, menuItemOrderColumns)
	if verr != nil {
		return nil, PageMeta{}, verr
	}
	denial, err := s.Authz.CanListUserLinks(ctx, p, targetUserID)
	if err != nil {
		return nil, PageMeta{}, err
	}
	if denial != nil {
		return nil, PageMeta{}, denial
	}
	ids, err := s.Links.ItemIDsForUser(ctx, targetUserID)
	if err != nil {
		return nil, PageMeta{}, err
	}
	if params.HasIDs {
		ids = intersect(ids, params.IDs)
	}
	list, total, err := s.Items.ListForUserLinks(ctx, ids, p.MemberID, filter)
	if err != nil {
		return nil, PageMeta{}, err
	}
	return list, pageMeta(params, total), nil
}

// Update replaces the target user's link set with exactly the requested
// menu item ids. Every id must resolve to a live menu item inside an App
// the actor's member is linked to; otherwise nothing is applied. The
// delete-then-create delta runs in one transaction, so the result set
// equals the request and a repeat call changes nothing.
func (s *UserLinkService) Update(ctx context.Context, p authz.Principal, targetUserID int64, body input) ([]int64, error) {
	denial, err := s.Authz.CanUpdateUserLinks(ctx, p, targetUserID)
	if err != nil {
		return nil, err
	}
	if denial != nil {
		return nil, denial
	}

	errs := errcode.FieldErrors{}
	if !body.has("menu_item_ids") || body["menu_item_ids"] == nil {
		errs.Add("menu_item_ids", errcode.UserLinkUpdate101)
		return nil, errs
	}
	ids, listOK, elemsOK := asIntList(body["menu_item_ids"])
	if !listOK {
		errs.Add("menu_item_ids", errcode.UserLinkUpdate101)
		return nil, errs
	}
	if !elemsOK {
		errs.Add("menu_item_ids", errcode.UserLinkUpdate102)
		return nil, errs
	}
	ids = dedupe(ids)

	permitted, err := s.Links.CountPermittedItems(ctx, ids, p.MemberID)
	if err != nil {
		return nil, err
	}
	if permitted != int64(len(ids)) {
		errs.Add("menu_item_ids", errcode.UserLinkUpdate103)
		return nil, errs
	}

	created, deleted, err := s.Links.Reconcile(ctx, targetUserID, ids)
	if err != nil {
		return nil, err
	}
	metrics.UserLinksReconciled.WithLabelValues("created").Add(float64(created))
	metrics.UserLinksReconciled.WithLabelValues("deleted").Add(float64(deleted))
	logging.FromContext(ctx).Info("user links reconciled",
		zap.Int64("user_id", targetUserID), zap.Int64("created", created), zap.Int64("deleted", deleted))
	return ids, nil
}
