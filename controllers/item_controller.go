package controllers

import (
	"storefront/pkg/resp"
	"storefront/services"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type ItemController struct {
	Svc *services.ItemService
	Log *zap.Logger
}

func NewItemController(s *services.ItemService, log *zap.Logger) *ItemController {
	return &ItemController{Svc: s, Log: log}
}

// GET /api/item
func (h *ItemController) List(c *gin.Context) {
	items, err := h.Svc.GetAll(c.Request.Context())
	if err != nil {
		respondError(c, h.Log, err)
		return
	}
	resp.OK(c, items)
}

// GET /api/item/:id
func (h *ItemController) Detail(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	item, err := h.Svc.GetByID(c.Request.Context(), id)
	if err != nil {
		respondError(c, h.Log, err)
		return
	}
	resp.OK(c, item)
}

// GET /api/item/name/:name
func (h *ItemController) ByName(c *gin.Context) {
	items, err := h.Svc.GetByName(c.Request.Context(), c.Param("name"))
	if err != nil {
		respondError(c, h.Log, err)
		return
	}
	resp.OK(c, items)
}
