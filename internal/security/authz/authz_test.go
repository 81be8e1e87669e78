package authz

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"go-appmanager/internal/domain/model"
	"go-appmanager/internal/util/errcode"
)

type pair struct{ a, b int64 }

type fakeMemberLinks struct{ links map[pair]bool }

func (f *fakeMemberLinks) ActiveMemberLinkExists(_ context.Context, appID, memberID int64) (bool, error) {
	return f.links[pair{appID, memberID}], nil
}

type fakeUserLinks struct{ links map[pair]bool }

func (f *fakeUserLinks) ActiveUserLinkExists(_ context.Context, userID, itemID int64) (bool, error) {
	return f.links[pair{userID, itemID}], nil
}

type fakeDirectory struct {
	users map[int64]int64 // user id -> member id
	err   error
}

func (f *fakeDirectory) UserExists(ctx context.Context, token string, userID int64) (bool, error) {
	_, found, err := f.UserMemberID(ctx, token, userID)
	return found, err
}

func (f *fakeDirectory) UserMemberID(_ context.Context, _ string, userID int64) (int64, bool, error) {
	if f.err != nil {
		return 0, false, f.err
	}
	memberID, ok := f.users[userID]
	return memberID, ok, nil
}

func (f *fakeDirectory) MemberExists(_ context.Context, _ string, memberID int64) (bool, error) {
	if f.err != nil {
		return false, f.err
	}
	for _, m := range f.users {
		if m == memberID {
			return true, nil
		}
	}
	return false, nil
}

var testRules = Rules{OwnerMemberID: 1, SuperuserID: 1}

func newTestEngine(ml *fakeMemberLinks, ul *fakeUserLinks, dir *fakeDirectory) *Engine {
	if ml == nil {
		ml = &fakeMemberLinks{links: map[pair]bool{}}
	}
	if ul == nil {
		ul = &fakeUserLinks{links: map[pair]bool{}}
	}
	if dir == nil {
		dir = &fakeDirectory{users: map[int64]int64{}}
	}
	return NewEngine(testRules, ml, ul, dir)
}

func TestCanCreateApp(t *testing.T) {
	e := newTestEngine(nil, nil, nil)

	assert.Nil(t, e.CanCreateApp(Principal{UserID: 5, MemberID: 1}))

	denial := e.CanCreateApp(Principal{UserID: 5, MemberID: 7})
	require.NotNil(t, denial)
	assert.Equal(t, errcode.AppCreate201, denial.Code)
	assert.Equal(t, 403, denial.Status)
}

func TestCanReadApp(t *testing.T) {
	app := &model.App{ID: 10}
	ml := &fakeMemberLinks{links: map[pair]bool{{10, 7}: true}}
	e := newTestEngine(ml, nil, nil)

	tests := []struct {
		name     string
		p        Principal
		wantCode string
	}{
		{"owner member without link", Principal{MemberID: 1}, ""},
		{"linked member", Principal{MemberID: 7}, ""},
		{"unlinked member", Principal{MemberID: 8}, errcode.AppRead201},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			denial, err := e.CanReadApp(context.Background(), tt.p, app)
			require.NoError(t, err)
			if tt.wantCode == "" {
				assert.Nil(t, denial)
			} else {
				require.NotNil(t, denial)
				assert.Equal(t, tt.wantCode, denial.Code)
			}
		})
	}
}

func TestCanMutateApp(t *testing.T) {
	e := newTestEngine(nil, nil, nil)
	outsider := Principal{UserID: 5, MemberID: 9}

	denial := e.CanUpdateApp(outsider)
	require.NotNil(t, denial)
	assert.Equal(t, errcode.AppUpdate201, denial.Code)

	denial = e.CanDeleteApp(outsider)
	require.NotNil(t, denial)
	assert.Equal(t, errcode.AppDelete201, denial.Code)

	owner := Principal{UserID: 5, MemberID: 1}
	assert.Nil(t, e.CanUpdateApp(owner))
	assert.Nil(t, e.CanDeleteApp(owner))
}

func TestCanCreateMemberLink(t *testing.T) {
	publicApp := &model.App{ID: 20}
	privateApp := &model.App{ID: 21, Private: true}
	ml := &fakeMemberLinks{links: map[pair]bool{{20, 5}: true}}
	e := newTestEngine(ml, nil, nil)
	ctx := context.Background()

	denial, err := e.CanCreateMemberLink(ctx, Principal{UserID: 9, MemberID: 3}, publicApp, 3)
	require.NoError(t, err)
	require.NotNil(t, denial)
	assert.Equal(t, errcode.MemberLinkCreate201, denial.Code)

	admin := Principal{UserID: 9, MemberID: 3, Administrator: true}

	denial, err = e.CanCreateMemberLink(ctx, admin, privateApp, 3)
	require.NoError(t, err)
	require.NotNil(t, denial)
	assert.Equal(t, errcode.MemberLinkCreate202, denial.Code)

	superuser := Principal{UserID: 1, MemberID: 1, Administrator: true}
	denial, err = e.CanCreateMemberLink(ctx, superuser, privateApp, 3)
	require.NoError(t, err)
	assert.Nil(t, denial)

	denial, err = e.CanCreateMemberLink(ctx, admin, publicApp, 5)
	require.NoError(t, err)
	require.NotNil(t, denial)
	assert.Equal(t, errcode.MemberLinkCreate203, denial.Code)

	denial, err = e.CanCreateMemberLink(ctx, admin, publicApp, 3)
	require.NoError(t, err)
	assert.Nil(t, denial)
}

func TestCanDeleteMemberLink(t *testing.T) {
	privateApp := &model.App{ID: 21, Private: true}
	e := newTestEngine(nil, nil, nil)

	denial := e.CanDeleteMemberLink(Principal{UserID: 9, MemberID: 3}, privateApp)
	require.NotNil(t, denial)
	assert.Equal(t, errcode.MemberLinkDelete201, denial.Code)

	denial = e.CanDeleteMemberLink(Principal{UserID: 9, MemberID: 3, Administrator: true}, privateApp)
	require.NotNil(t, denial)
	assert.Equal(t, errcode.MemberLinkDelete202, denial.Code)

	assert.Nil(t, e.CanDeleteMemberLink(Principal{UserID: 1, MemberID: 1, Administrator: true}, privateApp))
	assert.Nil(t, e.CanDeleteMemberLink(Principal{UserID: 9, MemberID: 3, Administrator: true}, &model.App{ID: 22}))
}

func TestCanReadMenuItem(t *testing.T) {
	publicItem := &model.MenuItem{ID: 100, AppID: 10, Public: true}
	privateItem := &model.MenuItem{ID: 101, AppID: 10}
	ml := &fakeMemberLinks{links: map[pair]bool{{10, 7}: true}}
	ul := &fakeUserLinks{links: map[pair]bool{{42, 101}: true}}
	e := newTestEngine(ml, ul, nil)
	ctx := context.Background()

	tests := []struct {
		name     string
		p        Principal
		item     *model.MenuItem
		wantCode string
	}{
		{"public item, any actor", Principal{UserID: 99, MemberID: 99}, publicItem, ""},
		{"owner member, private item", Principal{UserID: 5, MemberID: 1}, privateItem, ""},
		{"admin with member link", Principal{UserID: 8, MemberID: 7, Administrator: true}, privateItem, ""},
		{"admin without member link", Principal{UserID: 8, MemberID: 9, Administrator: true}, privateItem, errcode.MenuItemRead201},
		{"user with user link", Principal{UserID: 42, MemberID: 7}, privateItem, ""},
		{"user without user link", Principal{UserID: 43, MemberID: 7}, privateItem, errcode.MenuItemRead202},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			denial, err := e.CanReadMenuItem(ctx, tt.p, tt.item)
			require.NoError(t, err)
			if tt.wantCode == "" {
				assert.Nil(t, denial)
			} else {
				require.NotNil(t, denial)
				assert.Equal(t, tt.wantCode, denial.Code)
			}
		})
	}
}

func TestCanMutateMenuItem(t *testing.T) {
	e := newTestEngine(nil, nil, nil)
	outsider := Principal{UserID: 5, MemberID: 9, Administrator: true}

	for _, tc := range []struct {
		denial *errcode.Error
		want   string
	}{
		{e.CanCreateMenuItem(outsider), errcode.MenuItemCreate201},
		{e.CanUpdateMenuItem(outsider), errcode.MenuItemUpdate201},
		{e.CanDeleteMenuItem(outsider), errcode.MenuItemDelete201},
	} {
		require.NotNil(t, tc.denial)
		assert.Equal(t, tc.want, tc.denial.Code)
	}

	owner := Principal{UserID: 5, MemberID: 1}
	assert.Nil(t, e.CanCreateMenuItem(owner))
	assert.Nil(t, e.CanUpdateMenuItem(owner))
	assert.Nil(t, e.CanDeleteMenuItem(owner))
}

func TestCanListUserLinks(t *testing.T) {
	dir := &fakeDirectory{users: map[int64]int64{42: 7, 50: 8}}
	e := newTestEngine(nil, nil, dir)
	ctx := context.Background()

	denial, err := e.CanListUserLinks(ctx, Principal{UserID: 42, MemberID: 7}, 42)
	require.NoError(t, err)
	assert.Nil(t, denial, "own links need no directory lookup")

	denial, err = e.CanListUserLinks(ctx, Principal{UserID: 43, MemberID: 7}, 42)
	require.NoError(t, err)
	assert.Nil(t, denial, "same-member target resolves")

	denial, err = e.CanListUserLinks(ctx, Principal{UserID: 43, MemberID: 7}, 99)
	require.NoError(t, err)
	require.NotNil(t, denial)
	assert.Equal(t, errcode.UserLinkList201, denial.Code)

	denial, err = e.CanListUserLinks(ctx, Principal{UserID: 43, MemberID: 7}, 50)
	require.NoError(t, err)
	require.NotNil(t, denial)
	assert.Equal(t, errcode.UserLinkList202, denial.Code)
}

func TestCanUpdateUserLinks(t *testing.T) {
	dir := &fakeDirectory{users: map[int64]int64{42: 7}}
	e := newTestEngine(nil, nil, dir)
	ctx := context.Background()

	denial, err := e.CanUpdateUserLinks(ctx, Principal{UserID: 9, MemberID: 7, SelfManaged: true}, 42)
	require.NoError(t, err)
	require.NotNil(t, denial)
	assert.Equal(t, errcode.UserLinkUpdate201, denial.Code)

	denial, err = e.CanUpdateUserLinks(ctx, Principal{UserID: 9, MemberID: 7, Administrator: true}, 42)
	require.NoError(t, err)
	require.NotNil(t, denial)
	assert.Equal(t, errcode.UserLinkUpdate202, denial.Code)

	admin := Principal{UserID: 9, MemberID: 7, Administrator: true, SelfManaged: true}

	denial, err = e.CanUpdateUserLinks(ctx, admin, 42)
	require.NoError(t, err)
	assert.Nil(t, denial)

	denial, err = e.CanUpdateUserLinks(ctx, admin, 9)
	require.NoError(t, err)
	assert.Nil(t, denial, "self target skips the directory")

	denial, err = e.CanUpdateUserLinks(ctx, admin, 99)
	require.NoError(t, err)
	require.NotNil(t, denial)
	assert.Equal(t, errcode.UserLinkUpdate203, denial.Code)
}

func TestDirectoryFailureSurfacesError(t *testing.T) {
	dir := &fakeDirectory{err: fmt.Errorf("membership unreachable")}
	e := newTestEngine(nil, nil, dir)

	denial, err := e.CanListUserLinks(context.Background(), Principal{UserID: 43, MemberID: 7}, 42)
	require.Error(t, err)
	assert.Nil(t, denial)
}
