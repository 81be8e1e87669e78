// Package handler holds the HTTP surface: path/query/body decoding and
// response shaping. All rules live in the service layer; nothing here
// decides permissions.
package handler

import (
	"encoding/json"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"go-appmanager/internal/config"
	"go-appmanager/internal/logging"
	"go-appmanager/internal/service"
)

type Dependencies struct {
	Apps        *service.AppService
	MemberLinks *service.MemberLinkService
	MenuItems   *service.MenuItemService
	UserLinks   *service.UserLinkService
	Logger      *logging.Logger
	Config      *config.Config
}

type HandlerSet struct {
	App        *AppHandler
	MemberLink *MemberLinkHandler
	MenuItem   *MenuItemHandler
	UserLink   *UserLinkHandler
}

func NewHandlerSet(d Dependencies) *HandlerSet {
	return &HandlerSet{
		App:        &AppHandler{Svc: d.Apps},
		MemberLink: &MemberLinkHandler{Svc: d.MemberLinks},
		MenuItem:   &MenuItemHandler{Svc: d.MenuItems},
		UserLink:   &UserLinkHandler{Svc: d.UserLinks},
	}
}

// pathID parses an int64 path parameter; ok is false for anything that
// is not a positive integer.
func pathID(c *gin.Context, name string) (int64, bool) {
	id, err := strconv.ParseInt(c.Param(name), 10, 64)
	if err != nil || id <= 0 {
		return 0, false
	}
	return id, true
}

// decodeBody reads the JSON object body. An empty body is a valid empty
// object so PATCH with no fields is a no-op rather than an error.
func decodeBody(c *gin.Context) (map[string]any, bool) {
	body := map[string]any{}
	if c.Request.Body == nil || c.Request.ContentLength == 0 {
		return body, true
	}
	if err := json.NewDecoder(c.Request.Body).Decode(&body); err != nil {
		return nil, false
	}
	return body, true
}

// listParams decodes page / limit / order / id__in query controls.
// Value validation happens in the service; only shape is checked here.
func listParams(c *gin.Context) (service.ListParams, bool) {
	var p service.ListParams
	if v := c.Query("page"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return p, false
		}
		p.Page = n
	}
	if v := c.Query("limit"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return p, false
		}
		p.Limit = n
	}
	p.Order = c.Query("order")
	if v := c.Query("id__in"); v != "" {
		p.HasIDs = true
		for _, part := range strings.Split(v, ",") {
			part = strings.TrimSpace(part)
			if part == "" {
				continue
			}
			id, err := strconv.ParseInt(part, 10, 64)
			if err != nil {
				return p, false
			}
			p.IDs = append(p.IDs, id)
		}
	}
	return p, true
}
