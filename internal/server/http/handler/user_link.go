package handler

import (
	"github.com/gin-gonic/gin"

	"go-appmanager/internal/server/http/middleware/security"
	"go-appmanager/internal/service"
	"go-appmanager/internal/util/errcode"
	"go-appmanager/pkg/response"
)

type UserLinkHandler struct {
	Svc *service.UserLinkService
}

// List returns the menu items visible to the target user.
func (h *UserLinkHandler) List(c *gin.Context) {
	userID, ok := pathID(c, "user_id")
	if !ok {
		response.Err(c, errcode.BadRequest(errcode.UserLinkList001))
		return
	}
	params, ok := listParams(c)
	if !ok {
		response.Err(c, errcode.BadRequest(errcode.UserLinkList001))
		return
	}
	p := security.PrincipalFrom(c)
	items, meta, err := h.Svc.List(c.Request.Context(), p, userID, params)
	if err != nil {
		response.Err(c, err)
		return
	}
	response.List(c, menuItemViews(items), meta)
}

// Update bulk-replaces the target user's links with the requested set.
func (h *UserLinkHandler) Update(c *gin.Context) {
	userID, ok := pathID(c, "user_id")
	if !ok {
		response.Err(c, errcode.BadRequest(errcode.UserLinkUpdate101))
		return
	}
	body, ok := decodeBody(c)
	if !ok {
		response.Err(c, errcode.BadRequest(errcode.UserLinkUpdate101))
		return
	}
	p := security.PrincipalFrom(c)
	if _, err := h.Svc.Update(c.Request.Context(), p, userID, body); err != nil {
		response.Err(c, err)
		return
	}
	response.NoContent(c)
}
