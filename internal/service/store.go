package service

import (
	"context"

	"go-appmanager/internal/domain/model"
	"go-appmanager/internal/repository/dao"
)

// Store interfaces mirror the DAO surface each service consumes, so the
// permission and reconciliation logic tests against in-memory fakes.
// The postgres DAOs in repository/dao satisfy them verbatim.

type AppStore interface {
	FindByID(ctx context.Context, id int64) (*model.App, error)
	NameExistsCI(ctx context.Context, name string, excludeID int64) (bool, error)
	Create(ctx context.Context, m *model.App) error
	Update(ctx context.Context, id int64, fields map[string]any) error
	SoftDeleteCascade(ctx context.Context, id int64) error
	List(ctx context.Context, vis dao.AppVisibility, f dao.ListFilter) ([]model.App, int64, error)
}

type MemberLinkStore interface {
	ActiveMemberLinkExists(ctx context.Context, appID, memberID int64) (bool, error)
	FindActive(ctx context.Context, appID, memberID int64) (*model.MemberLink, error)
	Create(ctx context.Context, m *model.MemberLink) error
	SoftDelete(ctx context.Context, id int64) error
	AppIDsForMember(ctx context.Context, memberID int64) ([]int64, error)
	ProvisionDefaults(ctx context.Context, memberID int64) (int, error)
}

type MenuItemStore interface {
	FindByIDInApp(ctx context.Context, appID, id int64) (*model.MenuItem, error)
	SiblingNameExists(ctx context.Context, appID int64, predecessorID *int64, name string, excludeID int64) (bool, error)
	SiblingSequenceExists(ctx context.Context, appID int64, predecessorID *int64, sequence int, excludeID int64) (bool, error)
	Create(ctx context.Context, m *model.MenuItem) error
	Update(ctx context.Context, id int64, fields map[string]any) error
	SoftDelete(ctx context.Context, id int64) error
	List(ctx context.Context, vis dao.MenuItemVisibility, f dao.ListFilter) ([]model.MenuItem, int64, error)
	ListForUserLinks(ctx context.Context, itemIDs []int64, actorMemberID int64, f dao.ListFilter) ([]model.MenuItem, int64, error)
}

type UserLinkStore interface {
	ActiveUserLinkExists(ctx context.Context, userID, menuItemID int64) (bool, error)
	ItemIDsForUser(ctx context.Context, userID int64) ([]int64, error)
	LinkedAppIDsForUser(ctx context.Context, userID int64) ([]int64, error)
	CountPermittedItems(ctx context.Context, ids []int64, memberID int64) (int64, error)
	Reconcile(ctx context.Context, userID int64, ids []int64) (created, deleted int64, err error)
}
