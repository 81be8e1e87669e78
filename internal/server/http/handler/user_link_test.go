package handler

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"go-appmanager/internal/domain/model"
	"go-appmanager/internal/repository/dao"
	"go-appmanager/internal/security/authz"
	"go-appmanager/internal/service"
)

type stubItems struct{}

func (stubItems) FindByIDInApp(context.Context, int64, int64) (*model.MenuItem, error) {
	return nil, nil
}
func (stubItems) SiblingNameExists(context.Context, int64, *int64, string, int64) (bool, error) {
	return false, nil
}
func (stubItems) SiblingSequenceExists(context.Context, int64, *int64, int, int64) (bool, error) {
	return false, nil
}
func (stubItems) Create(context.Context, *model.MenuItem) error          { return nil }
func (stubItems) Update(context.Context, int64, map[string]any) error    { return nil }
func (stubItems) SoftDelete(context.Context, int64) error                { return nil }
func (stubItems) List(context.Context, dao.MenuItemVisibility, dao.ListFilter) ([]model.MenuItem, int64, error) {
	return nil, 0, nil
}
func (stubItems) ListForUserLinks(context.Context, []int64, int64, dao.ListFilter) ([]model.MenuItem, int64, error) {
	return nil, 0, nil
}

type stubUserLinks struct{ reconciled []int64 }

func (s *stubUserLinks) ActiveUserLinkExists(context.Context, int64, int64) (bool, error) {
	return false, nil
}
func (s *stubUserLinks) ItemIDsForUser(context.Context, int64) ([]int64, error) { return nil, nil }
func (s *stubUserLinks) LinkedAppIDsForUser(context.Context, int64) ([]int64, error) {
	return nil, nil
}
func (s *stubUserLinks) CountPermittedItems(_ context.Context, ids []int64, _ int64) (int64, error) {
	return int64(len(ids)), nil
}
func (s *stubUserLinks) Reconcile(_ context.Context, _ int64, ids []int64) (int64, int64, error) {
	s.reconciled = ids
	return int64(len(ids)), 0, nil
}

type stubDirectory struct{}

func (stubDirectory) UserExists(context.Context, string, int64) (bool, error)   { return true, nil }
func (stubDirectory) MemberExists(context.Context, string, int64) (bool, error) { return true, nil }
func (stubDirectory) UserMemberID(context.Context, string, int64) (int64, bool, error) {
	return 0, true, nil
}

func TestUserLinkUpdateRespondsNoContent(t *testing.T) {
	gin.SetMode(gin.TestMode)
	links := &stubUserLinks{}
	engine := authz.NewEngine(authz.Rules{OwnerMemberID: 1, SuperuserID: 1}, nil, links, stubDirectory{})
	svc := service.NewUserLinkService(stubItems{}, links, engine, nil)
	h := &UserLinkHandler{Svc: svc}

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodPut, "/menu_item/user/42", strings.NewReader(`{"menu_item_ids":[3,5]}`))
	c.Request.Header.Set("Content-Type", "application/json")
	c.Params = gin.Params{{Key: "user_id", Value: "42"}}
	c.Set("principal", authz.Principal{UserID: 42, MemberID: 7, Administrator: true, SelfManaged: true})

	h.Update(c)
	c.Writer.WriteHeaderNow()

	assert.Equal(t, http.StatusNoContent, w.Code)
	assert.Empty(t, w.Body.String())
	require.Equal(t, []int64{3, 5}, links.reconciled)
}
