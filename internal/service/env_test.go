package service

import (
	"context"

	"go-appmanager/internal/domain/model"
	"go-appmanager/internal/repository/dao"
	"go-appmanager/internal/security/authz"
)

// Method-name overlap between the store interfaces (Create, Update,
// List, SoftDelete) is resolved with thin views over the shared store.

type memMemberLinks struct{ *memStore }

func (m memMemberLinks) Create(ctx context.Context, l *model.MemberLink) error {
	return m.CreateMemberLink(ctx, l)
}

type memMenuItems struct{ *memStore }

func (m memMenuItems) Create(ctx context.Context, i *model.MenuItem) error {
	return m.CreateMenuItem(ctx, i)
}

func (m memMenuItems) Update(ctx context.Context, id int64, fields map[string]any) error {
	return m.UpdateMenuItem(ctx, id, fields)
}

func (m memMenuItems) SoftDelete(ctx context.Context, id int64) error {
	return m.SoftDeleteMenuItem(ctx, id)
}

func (m memMenuItems) List(ctx context.Context, vis dao.MenuItemVisibility, f dao.ListFilter) ([]model.MenuItem, int64, error) {
	return m.ListMenuItems(ctx, vis, f)
}

type fakeDirectory struct {
	users   map[int64]int64 // user id -> member id
	members map[int64]bool
}

func (f *fakeDirectory) UserExists(ctx context.Context, token string, userID int64) (bool, error) {
	_, found, err := f.UserMemberID(ctx, token, userID)
	return found, err
}

func (f *fakeDirectory) UserMemberID(_ context.Context, _ string, userID int64) (int64, bool, error) {
	memberID, ok := f.users[userID]
	return memberID, ok, nil
}

func (f *fakeDirectory) MemberExists(_ context.Context, _ string, memberID int64) (bool, error) {
	return f.members[memberID], nil
}

type testEnv struct {
	store      *memStore
	dir        *fakeDirectory
	apps       *AppService
	menuItems  *MenuItemService
	memberLink *MemberLinkService
	userLinks  *UserLinkService
}

// Platform identities match the conventional deployment: owner member 1,
// superuser 1.
func newTestEnv() *testEnv {
	store := newMemStore()
	dir := &fakeDirectory{users: map[int64]int64{}, members: map[int64]bool{}}
	rules := authz.Rules{OwnerMemberID: 1, SuperuserID: 1}
	engine := authz.NewEngine(rules, store, store, dir)

	links := memMemberLinks{store}
	items := memMenuItems{store}
	return &testEnv{
		store:      store,
		dir:        dir,
		apps:       NewAppService(store, links, store, engine, nil),
		menuItems:  NewMenuItemService(store, items, links, store, engine, nil),
		memberLink: NewMemberLinkService(store, links, dir, engine, nil),
		userLinks:  NewUserLinkService(items, store, engine, nil),
	}
}

var (
	ownerAdmin  = authz.Principal{UserID: 1, MemberID: 1, Administrator: true, SelfManaged: true}
	member7User = authz.Principal{UserID: 42, MemberID: 7, SelfManaged: true}
	member7Adm  = authz.Principal{UserID: 9, MemberID: 7, Administrator: true, SelfManaged: true}
)
