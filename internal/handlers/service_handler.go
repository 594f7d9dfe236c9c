package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/carepetz/petshop-scheduler/internal/httperr"
	"github.com/carepetz/petshop-scheduler/internal/httpresp"
	ucService "github.com/carepetz/petshop-scheduler/internal/usecase/service"
)

type ServiceHandler struct {
	uc *ucService.UseCase
}

func NewServiceHandler(uc *ucService.UseCase) *ServiceHandler {
	return &ServiceHandler{uc: uc}
}

// --------- Requests ---------

type ServiceRequest struct {
	Description string  `json:"description"`
	Price       float64 `json:"price"`
}

// --------- Handlers ---------

func (h *ServiceHandler) Create(c *gin.Context) {
	var req ServiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Dados inválidos.")
		return
	}

	created, err := h.uc.Create(c.Request.Context(), ucService.Input{
		Description: req.Description,
		Price:       req.Price,
	})
	if err != nil {
		httperr.WriteBusiness(c, err)
		return
	}

	httpresp.Created(c, created)
}

func (h *ServiceHandler) GetByID(c *gin.Context) {
	svc, err := h.uc.GetByID(c.Request.Context(), idParam(c, "id"))
	if err != nil {
		httperr.WriteBusiness(c, err)
		return
	}
	if svc == nil {
		httperr.NotFoundStatus(c, "service_not_found", "Serviço não encontrado.")
		return
	}

	httpresp.OK(c, svc)
}

func (h *ServiceHandler) GetByCode(c *gin.Context) {
	svc, err := h.uc.GetByCode(c.Request.Context(), c.Param("code"))
	if err != nil {
		httperr.WriteBusiness(c, err)
		return
	}
	if svc == nil {
		httperr.NotFoundStatus(c, "service_not_found", "Serviço não encontrado.")
		return
	}

	httpresp.OK(c, svc)
}

func (h *ServiceHandler) List(c *gin.Context) {
	services, err := h.uc.List(c.Request.Context())
	if err != nil {
		httperr.Internal(c, "failed_to_list_services", "Erro ao listar serviços.")
		return
	}

	httpresp.List(c, services)
}

func (h *ServiceHandler) Update(c *gin.Context) {
	var req ServiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Dados inválidos.")
		return
	}

	updated, err := h.uc.Update(c.Request.Context(), idParam(c, "id"), ucService.Input{
		Description: req.Description,
		Price:       req.Price,
	})
	if err != nil {
		httperr.WriteBusiness(c, err)
		return
	}

	httpresp.OK(c, updated)
}

func (h *ServiceHandler) Delete(c *gin.Context) {
	if err := h.uc.Delete(c.Request.Context(), idParam(c, "id")); err != nil {
		httperr.WriteBusiness(c, err)
		return
	}

	httpresp.NoContent(c)
}

func (h *ServiceHandler) ExistsByID(c *gin.Context) {
	exists, err := h.uc.ExistsByID(c.Request.Context(), idParam(c, "id"))
	if err != nil {
		httperr.WriteBusiness(c, err)
		return
	}

	httpresp.OK(c, gin.H{"exists": exists})
}

func (h *ServiceHandler) ExistsByCode(c *gin.Context) {
	exists, err := h.uc.ExistsByCode(c.Request.Context(), c.Param("code"))
	if err != nil {
		httperr.WriteBusiness(c, err)
		return
	}

	httpresp.OK(c, gin.H{"exists": exists})
}
