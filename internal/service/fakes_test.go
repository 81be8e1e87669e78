package service

import (
	"context"
	"sort"
	"strings"
	"time"

	"gorm.io/gorm"

	"go-appmanager/internal/domain/model"
	"go-appmanager/internal/repository/dao"
)

// memStore is an in-memory stand-in for the postgres DAOs. It implements
// all four store interfaces over shared maps so cross-entity queries
// (visibility clauses, permitted-item counts) behave like the real
// joins, soft deletes included.
type memStore struct {
	apps        map[int64]*model.App
	items       map[int64]*model.MenuItem
	memberLinks map[int64]*model.MemberLink
	userLinks   map[int64]*model.MenuItemUserLink
	nextID      int64
}

func newMemStore() *memStore {
	return &memStore{
		apps:        map[int64]*model.App{},
		items:       map[int64]*model.MenuItem{},
		memberLinks: map[int64]*model.MemberLink{},
		userLinks:   map[int64]*model.MenuItemUserLink{},
	}
}

func (m *memStore) id() int64 { m.nextID++; return m.nextID }

func deletedAt() gorm.DeletedAt { return gorm.DeletedAt{Time: time.Now(), Valid: true} }

func (m *memStore) addApp(a model.App) *model.App {
	a.ID = m.id()
	m.apps[a.ID] = &a
	return &a
}

func (m *memStore) addItem(i model.MenuItem) *model.MenuItem {
	i.ID = m.id()
	m.items[i.ID] = &i
	return &i
}

func (m *memStore) addMemberLink(appID, memberID int64) *model.MemberLink {
	l := &model.MemberLink{ID: m.id(), AppID: appID, MemberID: memberID}
	m.memberLinks[l.ID] = l
	return l
}

func (m *memStore) addUserLink(userID, itemID int64) *model.MenuItemUserLink {
	l := &model.MenuItemUserLink{ID: m.id(), UserID: userID, MenuItemID: itemID}
	m.userLinks[l.ID] = l
	return l
}

// --- AppStore ---

func (m *memStore) FindByID(_ context.Context, id int64) (*model.App, error) {
	a, ok := m.apps[id]
	if !ok || a.Deleted.Valid {
		return nil, nil
	}
	return a, nil
}

func (m *memStore) NameExistsCI(_ context.Context, name string, excludeID int64) (bool, error) {
	for _, a := range m.apps { // deleted rows included on purpose
		if a.ID != excludeID && strings.EqualFold(a.Name, name) {
			return true, nil
		}
	}
	return false, nil
}

func (m *memStore) Create(_ context.Context, a *model.App) error {
	a.ID = m.id()
	cp := *a
	m.apps[a.ID] = &cp
	return nil
}

func (m *memStore) Update(_ context.Context, id int64, fields map[string]any) error {
	a := m.apps[id]
	for col, v := range fields {
		switch col {
		case "name":
			a.Name = v.(string)
		case "action":
			a.Action, _ = v.(*string)
		case "description":
			a.Description, _ = v.(*string)
		case "icon_url":
			a.IconURL = v.(string)
		case "online":
			a.Online = v.(bool)
		case "in_app_store":
			a.InAppStore = v.(bool)
		case "private":
			a.Private = v.(bool)
		case "maintenance":
			a.Maintenance = v.(bool)
		case "extra":
			a.Extra, _ = v.(map[string]any)
		}
	}
	return nil
}

func (m *memStore) SoftDeleteCascade(_ context.Context, id int64) error {
	if a, ok := m.apps[id]; ok {
		a.Deleted = deletedAt()
	}
	for _, i := range m.items {
		if i.AppID == id && !i.Deleted.Valid {
			i.Deleted = deletedAt()
		}
	}
	return nil
}

func (m *memStore) appHasPublicItem(appID int64) bool {
	for _, i := range m.items {
		if i.AppID == appID && i.Public && !i.Deleted.Valid {
			return true
		}
	}
	return false
}

func (m *memStore) List(_ context.Context, vis dao.AppVisibility, f dao.ListFilter) ([]model.App, int64, error) {
	var out []model.App
	for _, a := range m.apps {
		if a.Deleted.Valid {
			continue
		}
		if f.HasIDs && !contains(f.IDs, a.ID) {
			continue
		}
		if !vis.Unrestricted {
			linked, _ := m.ActiveMemberLinkExists(nil, a.ID, vis.MemberID)
			member := linked && a.Online
			if member && vis.MemberClauseRestricted {
				member = contains(vis.MemberClauseIDs, a.ID)
			}
			if !member && !m.appHasPublicItem(a.ID) {
				continue
			}
		}
		out = append(out, *a)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, int64(len(out)), nil
}

// --- MemberLinkStore ---

func (m *memStore) ActiveMemberLinkExists(_ context.Context, appID, memberID int64) (bool, error) {
	for _, l := range m.memberLinks {
		if l.AppID == appID && l.MemberID == memberID && !l.Deleted.Valid {
			return true, nil
		}
	}
	return false, nil
}

func (m *memStore) FindActive(_ context.Context, appID, memberID int64) (*model.MemberLink, error) {
	for _, l := range m.memberLinks {
		if l.AppID == appID && l.MemberID == memberID && !l.Deleted.Valid {
			return l, nil
		}
	}
	return nil, nil
}

func (m *memStore) CreateMemberLink(_ context.Context, l *model.MemberLink) error {
	l.ID = m.id()
	cp := *l
	m.memberLinks[l.ID] = &cp
	return nil
}

func (m *memStore) SoftDelete(_ context.Context, id int64) error {
	if l, ok := m.memberLinks[id]; ok {
		l.Deleted = deletedAt()
	}
	return nil
}

func (m *memStore) AppIDsForMember(_ context.Context, memberID int64) ([]int64, error) {
	var ids []int64
	for _, l := range m.memberLinks {
		if l.MemberID == memberID && !l.Deleted.Valid {
			ids = append(ids, l.AppID)
		}
	}
	return ids, nil
}

func (m *memStore) ProvisionDefaults(ctx context.Context, memberID int64) (int, error) {
	defaults, _ := m.AppIDsForMember(ctx, model.DefaultMemberID)
	own, _ := m.AppIDsForMember(ctx, memberID)
	created := 0
	for _, appID := range defaults {
		if !contains(own, appID) {
			m.addMemberLink(appID, memberID)
			created++
		}
	}
	return created, nil
}

// --- MenuItemStore ---

func (m *memStore) FindByIDInApp(_ context.Context, appID, id int64) (*model.MenuItem, error) {
	i, ok := m.items[id]
	if !ok || i.AppID != appID || i.Deleted.Valid {
		return nil, nil
	}
	out := *i
	m.embed(&out)
	return &out, nil
}

// embed mirrors the store's one-level App/Predecessor loading.
func (m *memStore) embed(i *model.MenuItem) {
	if a, ok := m.apps[i.AppID]; ok && !a.Deleted.Valid {
		cp := *a
		i.App = &cp
	}
	if i.PredecessorID != nil {
		if p, ok := m.items[*i.PredecessorID]; ok && !p.Deleted.Valid {
			cp := *p
			i.Predecessor = &cp
		}
	}
}

func samePred(a, b *int64) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	return *a == *b
}

func (m *memStore) SiblingNameExists(_ context.Context, appID int64, pred *int64, name string, excludeID int64) (bool, error) {
	for _, i := range m.items {
		if i.AppID == appID && i.ID != excludeID && !i.Deleted.Valid && samePred(i.PredecessorID, pred) && i.Name == name {
			return true, nil
		}
	}
	return false, nil
}

func (m *memStore) SiblingSequenceExists(_ context.Context, appID int64, pred *int64, seq int, excludeID int64) (bool, error) {
	for _, i := range m.items {
		if i.AppID == appID && i.ID != excludeID && !i.Deleted.Valid && samePred(i.PredecessorID, pred) && i.Sequence == seq {
			return true, nil
		}
	}
	return false, nil
}

func (m *memStore) CreateMenuItem(_ context.Context, i *model.MenuItem) error {
	i.ID = m.id()
	cp := *i
	m.items[i.ID] = &cp
	return nil
}

func (m *memStore) UpdateMenuItem(_ context.Context, id int64, fields map[string]any) error {
	i := m.items[id]
	for col, v := range fields {
		switch col {
		case "name":
			i.Name = v.(string)
		case "action":
			i.Action, _ = v.(*string)
		case "help":
			i.Help = v.(string)
		case "administrator_only":
			i.AdministratorOnly = v.(bool)
		case "public":
			i.Public = v.(bool)
		case "self_managed":
			i.SelfManaged = v.(bool)
		case "sequence":
			i.Sequence = v.(int)
		case "predecessor_id":
			i.PredecessorID, _ = v.(*int64)
		}
	}
	return nil
}

func (m *memStore) SoftDeleteMenuItem(_ context.Context, id int64) error {
	if i, ok := m.items[id]; ok {
		i.Deleted = deletedAt()
	}
	return nil
}

func (m *memStore) ListMenuItems(_ context.Context, vis dao.MenuItemVisibility, f dao.ListFilter) ([]model.MenuItem, int64, error) {
	var out []model.MenuItem
	for _, i := range m.items {
		if i.AppID != vis.AppID || i.Deleted.Valid {
			continue
		}
		if f.HasIDs && !contains(f.IDs, i.ID) {
			continue
		}
		keep := i.Public
		if !keep && vis.MemberActive {
			member := true
			if vis.ForceNotSelfManaged && i.SelfManaged {
				member = false
			}
			if vis.ForceNotAdminOnly && i.AdministratorOnly {
				member = false
			}
			if vis.IDRestricted && !contains(vis.IDs, i.ID) {
				member = false
			}
			keep = member
		}
		if keep {
			cp := *i
			m.embed(&cp)
			out = append(out, cp)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, int64(len(out)), nil
}

func (m *memStore) ListForUserLinks(_ context.Context, itemIDs []int64, actorMemberID int64, _ dao.ListFilter) ([]model.MenuItem, int64, error) {
	var out []model.MenuItem
	for _, id := range itemIDs {
		i, ok := m.items[id]
		if !ok || i.Deleted.Valid {
			continue
		}
		if linked, _ := m.ActiveMemberLinkExists(nil, i.AppID, actorMemberID); linked {
			cp := *i
			m.embed(&cp)
			out = append(out, cp)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, int64(len(out)), nil
}

// --- UserLinkStore ---

func (m *memStore) ActiveUserLinkExists(_ context.Context, userID, itemID int64) (bool, error) {
	for _, l := range m.userLinks {
		if l.UserID == userID && l.MenuItemID == itemID {
			return true, nil
		}
	}
	return false, nil
}

func (m *memStore) ItemIDsForUser(_ context.Context, userID int64) ([]int64, error) {
	var ids []int64
	for _, l := range m.userLinks {
		if l.UserID == userID {
			ids = append(ids, l.MenuItemID)
		}
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	return ids, nil
}

func (m *memStore) LinkedAppIDsForUser(_ context.Context, userID int64) ([]int64, error) {
	var ids []int64
	for _, l := range m.userLinks {
		if l.UserID != userID {
			continue
		}
		i, ok := m.items[l.MenuItemID]
		if !ok || i.Deleted.Valid {
			continue
		}
		if !contains(ids, i.AppID) {
			ids = append(ids, i.AppID)
		}
	}
	return ids, nil
}

func (m *memStore) CountPermittedItems(_ context.Context, ids []int64, memberID int64) (int64, error) {
	var count int64
	for _, id := range ids {
		i, ok := m.items[id]
		if !ok || i.Deleted.Valid {
			continue
		}
		if linked, _ := m.ActiveMemberLinkExists(nil, i.AppID, memberID); linked {
			count++
		}
	}
	return count, nil
}

func (m *memStore) Reconcile(ctx context.Context, userID int64, ids []int64) (created, deleted int64, err error) {
	for lid, l := range m.userLinks {
		if l.UserID == userID && !contains(ids, l.MenuItemID) {
			delete(m.userLinks, lid)
			deleted++
		}
	}
	existing, _ := m.ItemIDsForUser(ctx, userID)
	live := make([]int64, 0, len(existing))
	for _, id := range existing {
		if i, ok := m.items[id]; ok && !i.Deleted.Valid {
			live = append(live, id)
		}
	}
	for _, id := range ids {
		if !contains(live, id) {
			m.addUserLink(userID, id)
			created++
		}
	}
	return created, deleted, nil
}

func contains(ids []int64, id int64) bool {
	for _, v := range ids {
		if v == id {
			return true
		}
	}
	return false
}
