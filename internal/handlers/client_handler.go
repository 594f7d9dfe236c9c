package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/carepetz/petshop-scheduler/internal/httperr"
	"github.com/carepetz/petshop-scheduler/internal/httpresp"
	ucClient "github.com/carepetz/petshop-scheduler/internal/usecase/client"
)

type ClientHandler struct {
	uc *ucClient.UseCase
}

func NewClientHandler(uc *ucClient.UseCase) *ClientHandler {
	return &ClientHandler{uc: uc}
}

// --------- Requests ---------

// Os campos chegam sem binding obrigatório de propósito: quem decide o
// que é inválido é o caso de uso, com códigos de erro próprios.
type ClientRequest struct {
	Name  string `json:"name"`
	Phone string `json:"phone"`
	Email string `json:"email"`
}

// --------- Handlers ---------

func (h *ClientHandler) Create(c *gin.Context) {
	var req ClientRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Dados inválidos.")
		return
	}

	created, err := h.uc.Create(c.Request.Context(), ucClient.Input{
		Name:  req.Name,
		Phone: req.Phone,
		Email: req.Email,
	})
	if err != nil {
		httperr.WriteBusiness(c, err)
		return
	}

	httpresp.Created(c, created)
}

func (h *ClientHandler) GetByID(c *gin.Context) {
	cl, err := h.uc.GetByID(c.Request.Context(), idParam(c, "id"))
	if err != nil {
		httperr.WriteBusiness(c, err)
		return
	}
	if cl == nil {
		httperr.NotFoundStatus(c, "client_not_found", "Cliente não encontrado.")
		return
	}

	httpresp.OK(c, cl)
}

func (h *ClientHandler) GetByCode(c *gin.Context) {
	cl, err := h.uc.GetByCode(c.Request.Context(), c.Param("code"))
	if err != nil {
		httperr.WriteBusiness(c, err)
		return
	}
	if cl == nil {
		httperr.NotFoundStatus(c, "client_not_found", "Cliente não encontrado.")
		return
	}

	httpresp.OK(c, cl)
}

func (h *ClientHandler) List(c *gin.Context) {
	clients, err := h.uc.List(c.Request.Context())
	if err != nil {
		httperr.Internal(c, "failed_to_list_clients", "Erro ao listar clientes.")
		return
	}

	httpresp.List(c, clients)
}

func (h *ClientHandler) Update(c *gin.Context) {
	var req ClientRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Dados inválidos.")
		return
	}

	updated, err := h.uc.Update(c.Request.Context(), idParam(c, "id"), ucClient.Input{
		Name:  req.Name,
		Phone: req.Phone,
		Email: req.Email,
	})
	if err != nil {
		httperr.WriteBusiness(c, err)
		return
	}

	httpresp.OK(c, updated)
}

func (h *ClientHandler) Delete(c *gin.Context) {
	if err := h.uc.Delete(c.Request.Context(), idParam(c, "id")); err != nil {
		httperr.WriteBusiness(c, err)
		return
	}

	httpresp.NoContent(c)
}

func (h *ClientHandler) ExistsByID(c *gin.Context) {
	exists, err := h.uc.ExistsByID(c.Request.Context(), idParam(c, "id"))
	if err != nil {
		httperr.WriteBusiness(c, err)
		return
	}

	httpresp.OK(c, gin.H{"exists": exists})
}

func (h *ClientHandler) ExistsByCode(c *gin.Context) {
	exists, err := h.uc.ExistsByCode(c.Request.Context(), c.Param("code"))
	if err != nil {
		httperr.WriteBusiness(c, err)
		return
	}

	httpresp.OK(c, gin.H{"exists": exists})
}
