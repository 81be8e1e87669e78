package service

import (
	"context"

	"go.uber.org/zap"

	"go-appmanager/internal/domain/model"
	"go-appmanager/internal/logging"
	"go-appmanager/internal/metrics"
	"go-appmanager/internal/repository/dao"
	"go-appmanager/internal/security/authz"
	"go-appmanager/internal/util/errcode"
)

type AppService struct {
	Apps        AppStore
	MemberLinks MemberLinkStore
	UserLinks   UserLinkStore
	Authz       *authz.Engine
	Log         *logging.Logger
}

func NewAppService(apps AppStore, ml MemberLinkStore, ul UserLinkStore, az *authz.Engine, log *logging.Logger) *AppService {
	return &AppService{Apps: apps, MemberLinks: ml, UserLinks: ul, Authz: az, Log: log}
}

// List pages the Apps visible to the actor. Non-owner actors first get
// their default links provisioned: every App linked to the sentinel
// member that the actor's member does not hold yet is copied over.
// Provisioning only creates missing rows, so repeated calls settle.
func (s *AppService) List(ctx context.Context, p authz.Principal, params ListParams) ([]model.App, PageMeta, error) {
	filter, verr := buildFilter(params, errcode.AppList001, appOrderColumns)
	if verr != nil {
		return nil, PageMeta{}, verr
	}

	vis := dao.AppVisibility{Unrestricted: s.Authz.Rules().IsOwnerMember(p)}
	if !vis.Unrestricted {
		created, err := s.MemberLinks.ProvisionDefaults(ctx, p.MemberID)
		if err != nil {
			return nil, PageMeta{}, err
		}
		if created > 0 {
			metrics.MemberLinksProvisioned.Add(float64(created))
			logging.FromContext(ctx).Info("provisioned default member links",
				zap.Int64("member_id", p.MemberID), zap.Int("created", created))
		}
		vis.MemberID = p.MemberID
		if !p.Administrator {
			linkedApps, err := s.UserLinks.LinkedAppIDsForUser(ctx, p.UserID)
			if err != nil {
				return nil, PageMeta{}, err
			}
			if params.HasIDs {
				linkedApps = intersect(linkedApps, params.IDs)
			}
			vis.MemberClauseRestricted = true
			vis.MemberClauseIDs = linkedApps
		}
	}

	list, total, err := s.Apps.List(ctx, vis, filter)
	if err != nil {
		return nil, PageMeta{}, err
	}
	return list, pageMeta(params, total), nil
}

func (s *AppService) Create(ctx context.Context, p authz.Principal, body input) (*model.App, error) {
	if denial := s.Authz.CanCreateApp(p); denial != nil {
		return nil, denial
	}
	fields, errs, err := s.validateApp(ctx, body, appCreateCodes, 0, false)
	if err != nil {
		return nil, err
	}
	if len(errs) > 0 {
		return nil, errs
	}
	app := &model.App{
		Name:        fields.name,
		Action:      fields.action,
		Description: fields.description,
		IconURL:     fields.iconURL,
		Online:      fields.online,
		InAppStore:  fields.inAppStore,
		Private:     fields.private,
		Maintenance: fields.maintenance,
		Extra:       fields.extra,
	}
	if err := s.Apps.Create(ctx, app); err != nil {
		return nil, err
	}
	logging.FromContext(ctx).Info("app created", zap.Int64("app_id", app.ID), zap.String("name", app.Name))
	return app, nil
}

func (s *AppService) Read(ctx context.Context, p authz.Principal, id int64) (*model.App, error) {
	app, err := s.Apps.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if app == nil {
		return nil, errcode.NotFound(errcode.AppRead001)
	}
	denial, err := s.Authz.CanReadApp(ctx, p, app)
	if err != nil {
		return nil, err
	}
	if denial != nil {
		return nil, denial
	}
	return app, nil
}

// Update handles both full and partial updates; partial leaves absent
// keys untouched.
func (s *AppService) Update(ctx context.Context, p authz.Principal, id int64, body input, partial bool) (*model.App, error) {
	app, err := s.Apps.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if app == nil {
		return nil, errcode.NotFound(errcode.AppUpdate001)
	}
	if denial := s.Authz.CanUpdateApp(p); denial != nil {
		return nil, denial
	}
	fields, errs, err := s.validateApp(ctx, body, appUpdateCodes, id, partial)
	if err != nil {
		return nil, err
	}
	if len(errs) > 0 {
		return nil, errs
	}
	if err := s.Apps.Update(ctx, id, fields.columns(body, partial)); err != nil {
		return nil, err
	}
	return s.Apps.FindByID(ctx, id)
}

func (s *AppService) Delete(ctx context.Context, p authz.Principal, id int64) error {
	app, err := s.Apps.FindByID(ctx, id)
	if err != nil {
		return err
	}
	if app == nil {
		return errcode.NotFound(errcode.AppDelete001)
	}
	if denial := s.Authz.CanDeleteApp(p); denial != nil {
		return denial
	}
	if err := s.Apps.SoftDeleteCascade(ctx, id); err != nil {
		return err
	}
	logging.FromContext(ctx).Info("app deleted", zap.Int64("app_id", id))
	return nil
}

// appCodes parameterizes the shared validation steps with the
// per-operation catalogue codes.
type appCodes struct {
	actionLen   string
	iconReq     string
	iconLen     string
	nameReq     string
	nameLen     string
	nameDup     string
	online      string
	inAppStore  string
	private     string
	maintenance string
	extra       string
}

var appCreateCodes = appCodes{
	actionLen: errcode.AppCreate101, iconReq: errcode.AppCreate102, iconLen: errcode.AppCreate103,
	nameReq: errcode.AppCreate104, nameLen: errcode.AppCreate105, nameDup: errcode.AppCreate106,
	online: errcode.AppCreate107, inAppStore: errcode.AppCreate108, private: errcode.AppCreate109,
	maintenance: errcode.AppCreate110, extra: errcode.AppCreate111,
}

var appUpdateCodes = appCodes{
	actionLen: errcode.AppUpdate101, iconReq: errcode.AppUpdate102, iconLen: errcode.AppUpdate103,
	nameReq: errcode.AppUpdate104, nameLen: errcode.AppUpdate105, nameDup: errcode.AppUpdate106,
	online: errcode.AppUpdate107, inAppStore: errcode.AppUpdate108, private: errcode.AppUpdate109,
	maintenance: errcode.AppUpdate110, extra: errcode.AppUpdate111,
}

type appFields struct {
	name        string
	action      *string
	description *string
	iconURL     string
	online      bool
	inAppStore  bool
	private     bool
	maintenance bool
	extra       map[string]any
}

// columns builds the update map; on partial updates only sent keys are
// written, so false booleans and cleared optionals still persist when
// they were sent explicitly.
func (f appFields) columns(body input, partial bool) map[string]any {
	cols := map[string]any{
		"name": f.name, "action": f.action, "description": f.description,
		"icon_url": f.iconURL, "online": f.online, "in_app_store": f.inAppStore,
		"private": f.private, "maintenance": f.maintenance, "extra": f.extra,
	}
	if !partial {
		return cols
	}
	keys := map[string]string{
		"name": "name", "action": "action", "description": "description",
		"icon_url": "icon_url", "online": "online", "in_app_store": "in_app_store",
		"private": "private", "maintenance": "maintenance", "extra": "extra",
	}
	out := make(map[string]any, len(body))
	for key, col := range keys {
		if body.has(key) {
			out[col] = cols[col]
		}
	}
	return out
}

// validateApp runs the App field steps in declared order. excludeID
// skips the record under update in the name-uniqueness probe, which
// deliberately scans soft-deleted rows too. partial skips steps whose
// key was not sent.
func (s *AppService) validateApp(ctx context.Context, body input, codes appCodes, excludeID int64, partial bool) (appFields, errcode.FieldErrors, error) {
	errs := errcode.FieldErrors{}
	var f appFields

	if body.has("action") && body["action"] != nil {
		v, ok := asString(body["action"])
		if !ok || len(v) > 8000 {
			errs.Add("action", codes.actionLen)
		} else {
			f.action = &v
		}
	}
	if body.has("description") && body["description"] != nil {
		if v, ok := asString(body["description"]); ok {
			f.description = &v
		}
	}

	if !partial || body.has("icon_url") {
		v, ok := asString(body["icon_url"])
		switch {
		case !body.has("icon_url") || body["icon_url"] == nil || !ok:
			errs.Add("icon_url", codes.iconReq)
		case len(v) > 8000:
			errs.Add("icon_url", codes.iconLen)
		default:
			f.iconURL = v
		}
	}

	if !partial || body.has("name") {
		v, ok := asString(body["name"])
		switch {
		case !body.has("name") || body["name"] == nil || !ok || v == "":
			errs.Add("name", codes.nameReq)
		case len(v) > 50:
			errs.Add("name", codes.nameLen)
		default:
			taken, err := s.Apps.NameExistsCI(ctx, v, excludeID)
			if err != nil {
				return f, nil, err
			}
			if taken {
				errs.Add("name", codes.nameDup)
			} else {
				f.name = v
			}
		}
	}

	boolStep := func(key, code string, dst *bool) {
		if partial && !body.has(key) {
			return
		}
		if !body.has(key) || body[key] == nil {
			return // declared default stands
		}
		v, ok := asBool(body[key])
		if !ok {
			errs.Add(key, code)
			return
		}
		*dst = v
	}
	boolStep("online", codes.online, &f.online)
	boolStep("in_app_store", codes.inAppStore, &f.inAppStore)
	boolStep("private", codes.private, &f.private)
	boolStep("maintenance", codes.maintenance, &f.maintenance)

	if body.has("extra") && body["extra"] != nil {
		v, ok := asObject(body["extra"])
		if !ok {
			errs.Add("extra", codes.extra)
		} else {
			f.extra = v
		}
	}

	return f, errs, nil
}
