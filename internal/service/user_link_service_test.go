package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"go-appmanager/internal/domain/model"
	"go-appmanager/internal/util/errcode"
)

// linkedItems seeds an app linked to member 7 with n menu items and
// returns their ids.
func linkedItems(env *testEnv, n int) []int64 {
	app := env.store.addApp(model.App{Name: "Billing", Online: true})
	env.store.addMemberLink(app.ID, 7)
	ids := make([]int64, 0, n)
	for i := 0; i < n; i++ {
		item := env.store.addItem(model.MenuItem{AppID: app.ID, Name: string(rune('A' + i)), Sequence: i + 1})
		ids = append(ids, item.ID)
	}
	return ids
}

func TestUserLinkReconciliation(t *testing.T) {
	env := newTestEnv()
	ctx := context.Background()
	ids := linkedItems(env, 3)
	env.dir.users[42] = 7

	got, err := env.userLinks.Update(ctx, member7Adm, 42, input{
		"menu_item_ids": []any{float64(ids[0]), float64(ids[1])},
	})
	require.NoError(t, err)
	assert.Equal(t, []int64{ids[0], ids[1]}, got)
	active, err := env.store.ItemIDsForUser(ctx, 42)
	require.NoError(t, err)
	assert.Equal(t, []int64{ids[0], ids[1]}, active, "active set equals the request")

	// same request again: no churn
	before := len(env.store.userLinks)
	_, err = env.userLinks.Update(ctx, member7Adm, 42, input{
		"menu_item_ids": []any{float64(ids[0]), float64(ids[1])},
	})
	require.NoError(t, err)
	assert.Len(t, env.store.userLinks, before, "repeat call is a no-op")

	// shrink to one: the other link goes away
	_, err = env.userLinks.Update(ctx, member7Adm, 42, input{
		"menu_item_ids": []any{float64(ids[1])},
	})
	require.NoError(t, err)
	active, err = env.store.ItemIDsForUser(ctx, 42)
	require.NoError(t, err)
	assert.Equal(t, []int64{ids[1]}, active)
}

func TestUserLinkUpdateEmptySetClearsLinks(t *testing.T) {
	env := newTestEnv()
	ctx := context.Background()
	ids := linkedItems(env, 1)
	env.store.addUserLink(42, ids[0])

	env.dir.users[42] = 7
	_, err := env.userLinks.Update(ctx, member7Adm, 42, input{"menu_item_ids": []any{}})
	require.NoError(t, err)
	active, err := env.store.ItemIDsForUser(ctx, 42)
	require.NoError(t, err)
	assert.Empty(t, active)
}

func TestUserLinkUpdateRejectsForeignItems(t *testing.T) {
	env := newTestEnv()
	ctx := context.Background()
	ids := linkedItems(env, 1)

	other := env.store.addApp(model.App{Name: "Other", Online: true})
	foreign := env.store.addItem(model.MenuItem{AppID: other.ID, Name: "X", Sequence: 1})

	_, err := env.userLinks.Update(ctx, member7Adm, 9, input{
		"menu_item_ids": []any{float64(ids[0]), float64(foreign.ID)},
	})
	var errs errcode.FieldErrors
	require.ErrorAs(t, err, &errs)
	assert.Equal(t, errcode.UserLinkUpdate103, errs["menu_item_ids"].Code)

	active, err := env.store.ItemIDsForUser(ctx, 9)
	require.NoError(t, err)
	assert.Empty(t, active, "nothing applied on a rejected request")
}

func TestUserLinkUpdateValidation(t *testing.T) {
	env := newTestEnv()
	ctx := context.Background()

	_, err := env.userLinks.Update(ctx, member7Adm, 9, input{})
	var errs errcode.FieldErrors
	require.ErrorAs(t, err, &errs)
	assert.Equal(t, errcode.UserLinkUpdate101, errs["menu_item_ids"].Code)

	_, err = env.userLinks.Update(ctx, member7Adm, 9, input{"menu_item_ids": "nope"})
	require.ErrorAs(t, err, &errs)
	assert.Equal(t, errcode.UserLinkUpdate101, errs["menu_item_ids"].Code)

	_, err = env.userLinks.Update(ctx, member7Adm, 9, input{"menu_item_ids": []any{float64(1), "two"}})
	require.ErrorAs(t, err, &errs)
	assert.Equal(t, errcode.UserLinkUpdate102, errs["menu_item_ids"].Code)
}

func TestUserLinkUpdatePermissions(t *testing.T) {
	env := newTestEnv()
	ctx := context.Background()

	_, err := env.userLinks.Update(ctx, member7User, member7User.UserID, input{"menu_item_ids": []any{}})
	var denial *errcode.Error
	require.ErrorAs(t, err, &denial)
	assert.Equal(t, errcode.UserLinkUpdate201, denial.Code)

	notSelfManaged := member7Adm
	notSelfManaged.SelfManaged = false
	_, err = env.userLinks.Update(ctx, notSelfManaged, notSelfManaged.UserID, input{"menu_item_ids": []any{}})
	require.ErrorAs(t, err, &denial)
	assert.Equal(t, errcode.UserLinkUpdate202, denial.Code)

	_, err = env.userLinks.Update(ctx, member7Adm, 555, input{"menu_item_ids": []any{}})
	require.ErrorAs(t, err, &denial)
	assert.Equal(t, errcode.UserLinkUpdate203, denial.Code, "unknown target user")
}

func TestUserLinkListScopes(t *testing.T) {
	env := newTestEnv()
	ctx := context.Background()
	ids := linkedItems(env, 2)
	env.store.addUserLink(42, ids[0])
	env.store.addUserLink(42, ids[1])
	env.dir.users[42] = 7

	list, meta, err := env.userLinks.List(ctx, member7Adm, 42, ListParams{})
	require.NoError(t, err)
	assert.Len(t, list, 2)
	assert.Equal(t, int64(2), meta.TotalRecords)

	// id filter intersects with the link set
	list, _, err = env.userLinks.List(ctx, member7Adm, 42, ListParams{IDs: []int64{ids[1], 999}, HasIDs: true})
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, ids[1], list[0].ID)

	// target outside the actor's member
	env.dir.users[50] = 8
	_, _, err = env.userLinks.List(ctx, member7Adm, 50, ListParams{})
	var denial *errcode.Error
	require.ErrorAs(t, err, &denial)
	assert.Equal(t, errcode.UserLinkList202, denial.Code)

	// unknown target
	_, _, err = env.userLinks.List(ctx, member7Adm, 999, ListParams{})
	require.ErrorAs(t, err, &denial)
	assert.Equal(t, errcode.UserLinkList201, denial.Code)
}
