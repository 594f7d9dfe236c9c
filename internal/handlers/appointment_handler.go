package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/carepetz/petshop-scheduler/internal/dto"
	"github.com/carepetz/petshop-scheduler/internal/httperr"
	"github.com/carepetz/petshop-scheduler/internal/httpresp"
	ucAppointment "github.com/carepetz/petshop-scheduler/internal/usecase/appointment"
)

// ======================================================
// HANDLER
// ======================================================

type AppointmentHandler struct {
	create  *ucAppointment.Create
	update  *ucAppointment.Update
	remove  *ucAppointment.Delete
	queries *ucAppointment.Queries
}

func NewAppointmentHandler(
	create *ucAppointment.Create,
	update *ucAppointment.Update,
	remove *ucAppointment.Delete,
	queries *ucAppointment.Queries,
) *AppointmentHandler {
	return &AppointmentHandler{
		create:  create,
		update:  update,
		remove:  remove,
		queries: queries,
	}
}

// ======================================================
// REQUESTS
// ======================================================

type AppointmentRequest struct {
	ClientID  uint     `json:"client_id"`
	ServiceID uint     `json:"service_id"`
	Date      string   `json:"date"`
	Time      string   `json:"time"`
	Price     *float64 `json:"price,omitempty"`
}

func (r AppointmentRequest) toInput() ucAppointment.Input {
	return ucAppointment.Input{
		ClientID:      r.ClientID,
		ServiceID:     r.ServiceID,
		Date:          r.Date,
		Time:          r.Time,
		PriceOverride: r.Price,
	}
}

// ======================================================
// CREATE / UPDATE / DELETE
// ======================================================

func (h *AppointmentHandler) Create(c *gin.Context) {
	var req AppointmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Dados inválidos.")
		return
	}

	created, err := h.create.Execute(c.Request.Context(), req.toInput())
	if err != nil {
		httperr.WriteBusiness(c, err)
		return
	}

	httpresp.Created(c, created)
}

func (h *AppointmentHandler) Update(c *gin.Context) {
	var req AppointmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Dados inválidos.")
		return
	}

	updated, err := h.update.Execute(c.Request.Context(), idParam(c, "id"), req.toInput())
	if err != nil {
		httperr.WriteBusiness(c, err)
		return
	}

	httpresp.OK(c, updated)
}

func (h *AppointmentHandler) Delete(c *gin.Context) {
	if err := h.remove.Execute(c.Request.Context(), idParam(c, "id")); err != nil {
		httperr.WriteBusiness(c, err)
		return
	}

	httpresp.NoContent(c)
}

// ======================================================
// READ
// ======================================================

func (h *AppointmentHandler) GetByID(c *gin.Context) {
	ap, err := h.queries.GetByID(c.Request.Context(), idParam(c, "id"))
	if err != nil {
		httperr.WriteBusiness(c, err)
		return
	}
	if ap == nil {
		httperr.NotFoundStatus(c, "appointment_not_found", "Agenda não encontrada.")
		return
	}

	httpresp.OK(c, ap)
}

func (h *AppointmentHandler) GetByCode(c *gin.Context) {
	ap, err := h.queries.GetByCode(c.Request.Context(), c.Param("code"))
	if err != nil {
		httperr.WriteBusiness(c, err)
		return
	}
	if ap == nil {
		httperr.NotFoundStatus(c, "appointment_not_found", "Agenda não encontrada.")
		return
	}

	httpresp.OK(c, ap)
}

func (h *AppointmentHandler) List(c *gin.Context) {
	aps, err := h.queries.List(c.Request.Context())
	if err != nil {
		httperr.Internal(c, "failed_to_list_appointments", "Erro ao listar agendamentos.")
		return
	}

	httpresp.List(c, dto.FromAppointments(aps))
}

func (h *AppointmentHandler) ListByClient(c *gin.Context) {
	aps, err := h.queries.ListByClient(c.Request.Context(), idParam(c, "clientId"))
	if err != nil {
		httperr.WriteBusiness(c, err)
		return
	}

	httpresp.List(c, dto.FromAppointments(aps))
}

func (h *AppointmentHandler) ListByDate(c *gin.Context) {
	dateStr := c.Query("date")
	if dateStr == "" {
		httperr.BadRequest(c, "missing_date", "Data obrigatória.")
		return
	}

	aps, err := h.queries.ListByDate(c.Request.Context(), dateStr)
	if err != nil {
		httperr.WriteBusiness(c, err)
		return
	}

	httpresp.List(c, dto.FromAppointments(aps))
}

func (h *AppointmentHandler) ListByDateRange(c *gin.Context) {
	startStr := c.Query("start")
	endStr := c.Query("end")
	if startStr == "" || endStr == "" {
		httperr.BadRequest(c, "missing_range", "Datas de início e fim são obrigatórias.")
		return
	}

	aps, err := h.queries.ListByDateRange(c.Request.Context(), startStr, endStr)
	if err != nil {
		httperr.WriteBusiness(c, err)
		return
	}

	httpresp.List(c, dto.FromAppointments(aps))
}

// ======================================================
// EXISTS / CONFLICT
// ======================================================

func (h *AppointmentHandler) ExistsByID(c *gin.Context) {
	exists, err := h.queries.ExistsByID(c.Request.Context(), idParam(c, "id"))
	if err != nil {
		httperr.WriteBusiness(c, err)
		return
	}

	httpresp.OK(c, gin.H{"exists": exists})
}

func (h *AppointmentHandler) ExistsByCode(c *gin.Context) {
	exists, err := h.queries.ExistsByCode(c.Request.Context(), c.Param("code"))
	if err != nil {
		httperr.WriteBusiness(c, err)
		return
	}

	httpresp.OK(c, gin.H{"exists": exists})
}

func (h *AppointmentHandler) HasConflict(c *gin.Context) {
	conflict, err := h.queries.HasConflict(
		c.Request.Context(),
		c.Query("date"),
		c.Query("time"),
		idQuery(c, "exclude_id"),
	)
	if err != nil {
		httperr.WriteBusiness(c, err)
		return
	}

	httpresp.OK(c, gin.H{"conflict": conflict})
}
