package handler

import (
	"github.com/gin-gonic/gin"

	"go-appmanager/internal/server/http/middleware/security"
	"go-appmanager/internal/service"
	"go-appmanager/internal/util/errcode"
	"go-appmanager/pkg/response"
)

type AppHandler struct {
	Svc *service.AppService
}

func (h *AppHandler) List(c *gin.Context) {
	params, ok := listParams(c)
	if !ok {
		response.Err(c, errcode.BadRequest(errcode.AppList001))
		return
	}
	p := security.PrincipalFrom(c)
	apps, meta, err := h.Svc.List(c.Request.Context(), p, params)
	if err != nil {
		response.Err(c, err)
		return
	}
	response.List(c, appViews(apps), meta)
}

func (h *AppHandler) Create(c *gin.Context) {
	body, ok := decodeBody(c)
	if !ok {
		response.Err(c, errcode.BadRequest(errcode.AppList001))
		return
	}
	p := security.PrincipalFrom(c)
	app, err := h.Svc.Create(c.Request.Context(), p, body)
	if err != nil {
		response.Err(c, err)
		return
	}
	response.Created(c, newAppView(*app))
}

func (h *AppHandler) Read(c *gin.Context) {
	id, ok := pathID(c, "app_id")
	if !ok {
		response.Err(c, errcode.NotFound(errcode.AppRead001))
		return
	}
	p := security.PrincipalFrom(c)
	app, err := h.Svc.Read(c.Request.Context(), p, id)
	if err != nil {
		response.Err(c, err)
		return
	}
	response.OK(c, newAppView(*app))
}

func (h *AppHandler) Update(c *gin.Context) { h.update(c, false) }
func (h *AppHandler) Patch(c *gin.Context)  { h.update(c, true) }

func (h *AppHandler) update(c *gin.Context, partial bool) {
	id, ok := pathID(c, "app_id")
	if !ok {
		response.Err(c, errcode.NotFound(errcode.AppUpdate001))
		return
	}
	body, ok := decodeBody(c)
	if !ok {
		response.Err(c, errcode.BadRequest(errcode.AppList001))
		return
	}
	p := security.PrincipalFrom(c)
	app, err := h.Svc.Update(c.Request.Context(), p, id, body, partial)
	if err != nil {
		response.Err(c, err)
		return
	}
	response.OK(c, newAppView(*app))
}

func (h *AppHandler) Delete(c *gin.Context) {
	id, ok := pathID(c, "app_id")
	if !ok {
		response.Err(c, errcode.NotFound(errcode.AppDelete001))
		return
	}
	p := security.PrincipalFrom(c)
	if err := h.Svc.Delete(c.Request.Context(), p, id); err != nil {
		response.Err(c, err)
		return
	}
	response.NoContent(c)
}
