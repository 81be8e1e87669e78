package handler

import (
	"github.com/gin-gonic/gin"

	"go-appmanager/internal/server/http/middleware/security"
	"go-appmanager/internal/service"
	"go-appmanager/internal/util/errcode"
	"go-appmanager/pkg/response"
)

type MemberLinkHandler struct {
	Svc *service.MemberLinkService
}

func (h *MemberLinkHandler) Create(c *gin.Context) {
	appID, ok := pathID(c, "app_id")
	if !ok {
		response.Err(c, errcode.NotFound(errcode.MemberLinkCreate001))
		return
	}
	body, ok := decodeBody(c)
	if !ok {
		response.Err(c, errcode.BadRequest(errcode.MemberLinkCreate101))
		return
	}
	p := security.PrincipalFrom(c)
	link, err := h.Svc.Create(c.Request.Context(), p, appID, body)
	if err != nil {
		response.Err(c, err)
		return
	}
	response.Created(c, gin.H{
		"id":        link.ID,
		"app_id":    link.AppID,
		"member_id": link.MemberID,
	})
}

func (h *MemberLinkHandler) Delete(c *gin.Context) {
	appID, ok := pathID(c, "app_id")
	if !ok {
		response.Err(c, errcode.NotFound(errcode.MemberLinkDelete001))
		return
	}
	p := security.PrincipalFrom(c)
	if err := h.Svc.Delete(c.Request.Context(), p, appID); err != nil {
		response.Err(c, err)
		return
	}
	response.NoContent(c)
}
