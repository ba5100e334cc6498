package handler

import (
	"database/sql"
	"errors"
	"log/slog"
	"net/http"

	"github.com/jackc/pgx/v5/pgconn"

	"github.com/facilitta/workforce-manager/backend/internal/domain"
	"github.com/facilitta/workforce-manager/backend/internal/roster"
)

// warnOnUnknownSchedule logs when a posto is saved with a schedule label no
// family matches. Saving still succeeds: unrecognized labels classify every
// day as work by policy, and the log line is how mistyped labels get noticed.
func warnOnUnknownSchedule(posto *domain.Posto) {
	if roster.ParseLabel(posto.ScheduleLabel) == roster.FamilyUnknown {
		slog.Warn("posto saved with unrecognized schedule label",
			"postoID", posto.ID, "label", posto.ScheduleLabel)
	}
}

func (h *Handler) GetAllPostos(w http.ResponseWriter, r *http.Request) {
	postos, err := h.repository.GetAllPostos()
	if err != nil {
		h.internalServerError(w, r, err)
		return
	}

	h.successResponse(w, r, "postos listados com sucesso", postos)
}

func (h *Handler) GetPosto(w http.ResponseWriter, r *http.Request) {
	posto := r.Context().Value(PostoCtx).(*domain.Posto)
	h.successResponse(w, r, "posto obtido com sucesso", posto)
}

func (h *Handler) CreatePosto(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Name            string `json:"name" validate:"required"`
		ClientName      string `json:"clientName" validate:"required"`
		Address         string `json:"address"`
		ScheduleLabel   string `json:"scheduleLabel" validate:"required"`
		SupervisorEmail string `json:"supervisorEmail" validate:"omitempty,email"`
	}

	if err := h.readJSON(r, &req); err != nil {
		h.badRequest(w, r, err)
		return
	}
	if err := h.validate.Struct(req); err != nil {
		h.badRequest(w, r, err)
		return
	}

	posto := &domain.Posto{
		Name:            req.Name,
		ClientName:      req.ClientName,
		Address:         req.Address,
		ScheduleLabel:   req.ScheduleLabel,
		SupervisorEmail: req.SupervisorEmail,
	}

	if err := h.repository.CreatePosto(posto); err != nil {
		var pgErr *pgconn.PgError
		switch {
		case errors.As(err, &pgErr):
			switch pgErr.ConstraintName {
			case "postos_client_name_name_key":
				h.errorResponse(w, r, "já existe um posto com esse nome para esse cliente")
			default:
				h.internalServerError(w, r, err)
			}
		default:
			h.internalServerError(w, r, err)
		}
		return
	}

	warnOnUnknownSchedule(posto)

	h.successResponse(w, r, "posto criado com sucesso", posto)
}

func (h *Handler) UpdatePosto(w http.ResponseWriter, r *http.Request) {
	posto := r.Context().Value(PostoCtx).(*domain.Posto)

	var req struct {
		Name            *string `json:"name"`
		ClientName      *string `json:"clientName"`
		Address         *string `json:"address"`
		ScheduleLabel   *string `json:"scheduleLabel"`
		SupervisorEmail *string `json:"supervisorEmail" validate:"omitempty,email"`
	}

	if err := h.readJSON(r, &req); err != nil {
		h.badRequest(w, r, err)
		return
	}
	if err := h.validate.Struct(req); err != nil {
		h.badRequest(w, r, err)
		return
	}

	if req.Name != nil {
		posto.Name = *req.Name
	}
	if req.ClientName != nil {
		posto.ClientName = *req.ClientName
	}
	if req.Address != nil {
		posto.Address = *req.Address
	}
	if req.ScheduleLabel != nil {
		posto.ScheduleLabel = *req.ScheduleLabel
	}
	if req.SupervisorEmail != nil {
		posto.SupervisorEmail = *req.SupervisorEmail
	}

	if err := h.repository.UpdatePosto(posto); err != nil {
		switch {
		case errors.Is(err, sql.ErrNoRows):
			h.errorResponse(w, r, "falha ao atualizar o posto, tente novamente")
		default:
			h.internalServerError(w, r, err)
		}
		return
	}

	warnOnUnknownSchedule(posto)

	h.successResponse(w, r, "posto atualizado com sucesso", posto)
}

func (h *Handler) DeletePosto(w http.ResponseWriter, r *http.Request) {
	posto := r.Context().Value(PostoCtx).(*domain.Posto)

	if err := h.repository.DeletePosto(posto.ID); err != nil {
		h.internalServerError(w, r, err)
		return
	}

	h.successResponse(w, r, "posto removido com sucesso", nil)
}
