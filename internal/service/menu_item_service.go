package service

import (
	"context"

	"go.uber.org/zap"

	"go-appmanager/internal/domain/model"
	"go-appmanager/internal/logging"
	"go-appmanager/internal/repository/dao"
	"go-appmanager/internal/security/authz"
	"go-appmanager/internal/util/errcode"
)

type MenuItemService struct {
	Apps        AppStore
	Items       MenuItemStore
	MemberLinks MemberLinkStore
	UserLinks   UserLinkStore
	Authz       *authz.Engine
	Log         *logging.Logger
}

func NewMenuItemService(apps AppStore, items MenuItemStore, ml MemberLinkStore, ul UserLinkStore, az *authz.Engine, log *logging.Logger) *MenuItemService {
	return &MenuItemService{Apps: apps, Items: items, MemberLinks: ml, UserLinks: ul, Authz: az, Log: log}
}

// List pages the App's menu items visible to the actor. An unknown
// app_id is not an error here: without a live MemberLink the member
// clause stays off and the public clause matches nothing.
func (s *MenuItemService) List(ctx context.Context, p authz.Principal, appID int64, params ListParams) ([]model.MenuItem, PageMeta, error) {
	filter, verr := buildFilter(params, errcode.MenuItemList001, menuItemOrderColumns)
	if verr != nil {
		return nil, PageMeta{}, verr
	}

	vis := dao.MenuItemVisibility{AppID: appID}
	if s.Authz.Rules().IsOwnerMember(p) {
		vis.MemberActive = true
	} else {
		linked, err := s.MemberLinks.ActiveMemberLinkExists(ctx, appID, p.MemberID)
		if err != nil {
			return nil, PageMeta{}, err
		}
		vis.MemberActive = linked
	}
	if vis.MemberActive {
		if !p.SelfManaged {
			vis.ForceNotSelfManaged = true
		}
		if !p.Administrator {
			vis.ForceNotAdminOnly = true
			ids, err := s.UserLinks.ItemIDsForUser(ctx, p.UserID)
			if err != nil {
				return nil, PageMeta{}, err
			}
			if params.HasIDs {
				ids = intersect(ids, params.IDs)
			}
			vis.IDRestricted = true
			vis.IDs = ids
		}
	}

	list, total, err := s.Items.List(ctx, vis, filter)
	if err != nil {
		return nil, PageMeta{}, err
	}
	return list, pageMeta(params, total), nil
}

func (s *MenuItemService) Create(ctx context.Context, p authz.Principal, appID int64, body input) (*model.MenuItem, error) {
	if app, err := s.Apps.FindByID(ctx, appID); err != nil {
		return nil, err
	} else if app == nil {
		return nil, errcode.NotFound(errcode.MenuItemCreate001)
	}
	if denial := s.Authz.CanCreateMenuItem(p); denial != nil {
		return nil, denial
	}
	fields, errs, err := s.validateMenuItem(ctx, body, menuItemCreateCodes, appID, nil, false)
	if err != nil {
		return nil, err
	}
	if len(errs) > 0 {
		return nil, errs
	}
	item := &model.MenuItem{
		AppID:             appID,
		Name:              fields.name,
		Action:            fields.action,
		Help:              fields.help,
		AdministratorOnly: fields.adminOnly,
		Public:            fields.public,
		SelfManaged:       fields.selfManaged,
		Sequence:          fields.sequence,
		PredecessorID:     fields.predecessorID,
	}
	if err := s.Items.Create(ctx, item); err != nil {
		return nil, err
	}
	logging.FromContext(ctx).Info("menu item created",
		zap.Int64("app_id", appID), zap.Int64("menu_item_id", item.ID), zap.String("name", item.Name))
	return item, nil
}

func (s *MenuItemService) Read(ctx context.Context, p authz.Principal, appID, id int64) (*model.MenuItem, error) {
	item, err := s.Items.FindByIDInApp(ctx, appID, id)
	if err != nil {
		return nil, err
	}
	if item == nil {
		return nil, errcode.NotFound(errcode.MenuItemRead001)
	}
	denial, err := s.Authz.CanReadMenuItem(ctx, p, item)
	if err != nil {
		return nil, err
	}
	if denial != nil {
		return nil, denial
	}
	return item, nil
}

func (s *MenuItemService) Update(ctx context.Context, p authz.Principal, appID, id int64, body input, partial bool) (*model.MenuItem, error) {
	item, err := s.Items.FindByIDInApp(ctx, appID, id)
	if err != nil {
		return nil, err
	}
	if item == nil {
		return nil, errcode.NotFound(errcode.MenuItemUpdate001)
	}
	if denial := s.Authz.CanUpdateMenuItem(p); denial != nil {
		return nil, denial
	}
	fields, errs, err := s.validateMenuItem(ctx, body, menuItemUpdateCodes, appID, item, partial)
	if err != nil {
		return nil, err
	}
	if len(errs) > 0 {
		return nil, errs
	}
	if err := s.Items.Update(ctx, id, fields.columns(body, partial)); err != nil {
		return nil, err
	}
	return s.Items.FindByIDInApp(ctx, appID, id)
}

// Delete soft-deletes the item only; children keep pointing at their
// deleted predecessor.
func (s *MenuItemService) Delete(ctx context.Context, p authz.Principal, appID, id int64) error {
	item, err := s.Items.FindByIDInApp(ctx, appID, id)
	if err != nil {
		return err
	}
	if item == nil {
		return errcode.NotFound(errcode.MenuItemDelete001)
	}
	if denial := s.Authz.CanDeleteMenuItem(p); denial != nil {
		return denial
	}
	if err := s.Items.SoftDelete(ctx, id); err != nil {
		return err
	}
	logging.FromContext(ctx).Info("menu item deleted",
		zap.Int64("app_id", appID), zap.Int64("menu_item_id", id))
	return nil
}

type menuItemCodes struct {
	adminOnly   string
	predInt     string
	predResolve string
	seqReq      string
	seqDup      string
	public      string
	actionLen   string
	nameReq     string
	nameLen     string
	nameDup     string
	selfManaged string
}

var menuItemCreateCodes = menuItemCodes{
	adminOnly: errcode.MenuItemCreate101, predInt: errcode.MenuItemCreate102, predResolve: errcode.MenuItemCreate103,
	seqReq: errcode.MenuItemCreate104, seqDup: errcode.MenuItemCreate105, public: errcode.MenuItemCreate106,
	actionLen: errcode.MenuItemCreate107, nameReq: errcode.MenuItemCreate108, nameLen: errcode.MenuItemCreate109,
	nameDup: errcode.MenuItemCreate110, selfManaged: errcode.MenuItemCreate111,
}

var menuItemUpdateCodes = menuItemCodes{
	adminOnly: errcode.MenuItemUpdate101, predInt: errcode.MenuItemUpdate102, predResolve: errcode.MenuItemUpdate103,
	seqReq: errcode.MenuItemUpdate104, seqDup: errcode.MenuItemUpdate105, public: errcode.MenuItemUpdate106,
	actionLen: errcode.MenuItemUpdate107, nameReq: errcode.MenuItemUpdate108, nameLen: errcode.MenuItemUpdate109,
	nameDup: errcode.MenuItemUpdate110, selfManaged: errcode.MenuItemUpdate111,
}

type menuItemFields struct {
	name          string
	action        *string
	help          string
	adminOnly     bool
	public        bool
	selfManaged   bool
	sequence      int
	predecessorID *int64
}

func (f menuItemFields) columns(body input, partial bool) map[string]any {
	cols := map[string]any{
		"name": f.name, "action": f.action, "help": f.help,
		"administrator_only": f.adminOnly, "public": f.public, "self_managed": f.selfManaged,
		"sequence": f.sequence, "predecessor_id": f.predecessorID,
	}
	if !partial {
		return cols
	}
	keys := map[string]string{
		"name": "name", "action": "action", "help": "help",
		"administrator_only": "administrator_only", "public": "public",
		"self_managed": "self_managed", "sequence": "sequence",
		"predecessor_id": "predecessor_id",
	}
	out := make(map[string]any, len(body))
	for key, col := range keys {
		if body.has(key) {
			out[col] = cols[col]
		}
	}
	return out
}

// validateMenuItem runs the menu item steps in declared order. current
// is nil on create; on update it supplies the record under change, both
// to exclude it from sibling probes and to fill values a partial update
// left out. Sibling collision probes are skipped once the predecessor
// step has failed, so one bad predecessor does not cascade into
// misleading collision errors.
func (s *MenuItemService) validateMenuItem(ctx context.Context, body input, codes menuItemCodes, appID int64, current *model.MenuItem, partial bool) (menuItemFields, errcode.FieldErrors, error) {
	errs := errcode.FieldErrors{}
	f := menuItemFields{public: true, selfManaged: true, help: model.DefaultMenuItemHelp}
	var excludeID int64
	if current != nil {
		excludeID = current.ID
		// A full PUT replaces the record, so absent optional fields
		// fall back to their declared defaults; only a partial update
		// keeps the stored values.
		if partial {
			f.name = current.Name
			f.action = current.Action
			f.help = current.Help
			f.adminOnly = current.AdministratorOnly
			f.public = current.Public
			f.selfManaged = current.SelfManaged
			f.sequence = current.Sequence
			f.predecessorID = current.PredecessorID
		}
	}

	boolStep := func(key, code string, dst *bool) {
		if !body.has(key) || body[key] == nil {
			return
		}
		v, ok := asBool(body[key])
		if !ok {
			errs.Add(key, code)
			return
		}
		*dst = v
	}
	boolStep("administrator_only", codes.adminOnly, &f.adminOnly)

	if body.has("predecessor_id") {
		if body["predecessor_id"] == nil {
			f.predecessorID = nil
		} else if pid, ok := asInt(body["predecessor_id"]); !ok {
			errs.Add("predecessor_id", codes.predInt)
		} else if current != nil && pid == current.ID {
			errs.Add("predecessor_id", codes.predResolve)
		} else {
			pred, err := s.Items.FindByIDInApp(ctx, appID, pid)
			if err != nil {
				return f, nil, err
			}
			if pred == nil {
				errs.Add("predecessor_id", codes.predResolve)
			} else if current != nil {
				cyclic, err := s.predecessorChainHits(ctx, appID, pid, current.ID)
				if err != nil {
					return f, nil, err
				}
				if cyclic {
					errs.Add("predecessor_id", codes.predResolve)
				} else {
					f.predecessorID = &pid
				}
			} else {
				f.predecessorID = &pid
			}
		}
	}

	if !partial || body.has("sequence") {
		if seq, ok := asInt(body["sequence"]); !body.has("sequence") || body["sequence"] == nil || !ok {
			errs.Add("sequence", codes.seqReq)
		} else {
			f.sequence = int(seq)
			if !errs.Has("predecessor_id") {
				taken, err := s.Items.SiblingSequenceExists(ctx, appID, f.predecessorID, f.sequence, excludeID)
				if err != nil {
					return f, nil, err
				}
				if taken {
					errs.Add("sequence", codes.seqDup)
				}
			}
		}
	}

	boolStep("public", codes.public, &f.public)

	if body.has("action") && body["action"] != nil {
		v, ok := asString(body["action"])
		if !ok || len(v) > 150 {
			errs.Add("action", codes.actionLen)
		} else {
			f.action = &v
		}
	}

	if !partial || body.has("name") {
		v, ok := asString(body["name"])
		switch {
		case !body.has("name") || body["name"] == nil || !ok || v == "":
			errs.Add("name", codes.nameReq)
		case len(v) > 150:
			errs.Add("name", codes.nameLen)
		default:
			f.name = v
			if !errs.Has("predecessor_id") {
				taken, err := s.Items.SiblingNameExists(ctx, appID, f.predecessorID, f.name, excludeID)
				if err != nil {
					return f, nil, err
				}
				if taken {
					errs.Add("name", codes.nameDup)
				}
			}
		}
	}

	boolStep("self_managed", codes.selfManaged, &f.selfManaged)

	if body.has("help") && body["help"] != nil {
		if v, ok := asString(body["help"]); ok {
			f.help = v
		}
	}

	return f, errs, nil
}

// predecessorChainHits walks up from startID and reports whether the
// chain reaches targetID, which would close a cycle. The walk is capped;
// a chain deeper than the cap is treated as cyclic rather than followed
// forever.
func (s *MenuItemService) predecessorChainHits(ctx context.Context, appID, startID, targetID int64) (bool, error) {
	const maxDepth = 1000
	cursor := startID
	for i := 0; i < maxDepth; i++ {
		if cursor == targetID {
			return true, nil
		}
		item, err := s.Items.FindByIDInApp(ctx, appID, cursor)
		if err != nil {
			return false, err
		}
		if item == nil || item.PredecessorID == nil {
			return false, nil
		}
		cursor = *item.PredecessorID
	}
	return true, nil
}
