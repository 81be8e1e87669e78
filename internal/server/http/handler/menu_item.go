package handler

import (
	"github.com/gin-gonic/gin"

	"go-appmanager/internal/server/http/middleware/security"
	"go-appmanager/internal/service"
	"go-appmanager/internal/util/errcode"
	"go-appmanager/pkg/response"
)

type MenuItemHandler struct {
	Svc *service.MenuItemService
}

func (h *MenuItemHandler) List(c *gin.Context) {
	appID, ok := pathID(c, "app_id")
	if !ok {
		response.Err(c, errcode.BadRequest(errcode.MenuItemList001))
		return
	}
	params, ok := listParams(c)
	if !ok {
		response.Err(c, errcode.BadRequest(errcode.MenuItemList001))
		return
	}
	p := security.PrincipalFrom(c)
	items, meta, err := h.Svc.List(c.Request.Context(), p, appID, params)
	if err != nil {
		response.Err(c, err)
		return
	}
	response.List(c, menuItemViews(items), meta)
}

func (h *MenuItemHandler) Create(c *gin.Context) {
	appID, ok := pathID(c, "app_id")
	if !ok {
		response.Err(c, errcode.NotFound(errcode.MenuItemCreate001))
		return
	}
	body, ok := decodeBody(c)
	if !ok {
		response.Err(c, errcode.BadRequest(errcode.MenuItemList001))
		return
	}
	p := security.PrincipalFrom(c)
	item, err := h.Svc.Create(c.Request.Context(), p, appID, body)
	if err != nil {
		response.Err(c, err)
		return
	}
	response.Created(c, newMenuItemView(*item))
}

func (h *MenuItemHandler) Read(c *gin.Context) {
	appID, okApp := pathID(c, "app_id")
	id, okItem := pathID(c, "item_id")
	if !okApp || !okItem {
		response.Err(c, errcode.NotFound(errcode.MenuItemRead001))
		return
	}
	p := security.PrincipalFrom(c)
	item, err := h.Svc.Read(c.Request.Context(), p, appID, id)
	if err != nil {
		response.Err(c, err)
		return
	}
	response.OK(c, newMenuItemView(*item))
}

func (h *MenuItemHandler) Update(c *gin.Context) { h.update(c, false) }
func (h *MenuItemHandler) Patch(c *gin.Context)  { h.update(c, true) }

func (h *MenuItemHandler) update(c *gin.Context, partial bool) {
	appID, okApp := pathID(c, "app_id")
	id, okItem := pathID(c, "item_id")
	if !okApp || !okItem {
		response.Err(c, errcode.NotFound(errcode.MenuItemUpdate001))
		return
	}
	body, ok := decodeBody(c)
	if !ok {
		response.Err(c, errcode.BadRequest(errcode.MenuItemList001))
		return
	}
	p := security.PrincipalFrom(c)
	item, err := h.Svc.Update(c.Request.Context(), p, appID, id, body, partial)
	if err != nil {
		response.Err(c, err)
		return
	}
	response.OK(c, newMenuItemView(*item))
}

func (h *MenuItemHandler) Delete(c *gin.Context) {
	appID, okApp := pathID(c, "app_id")
	id, okItem := pathID(c, "item_id")
	if !okApp || !okItem {
		response.Err(c, errcode.NotFound(errcode.MenuItemDelete001))
		return
	}
	p := security.PrincipalFrom(c)
	if err := h.Svc.Delete(c.Request.Context(), p, appID, id); err != nil {
		response.Err(c, err)
		return
	}
	response.NoContent(c)
}
