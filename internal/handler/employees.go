package handler

import (
	"database/sql"
	"errors"
	"net/http"
	"time"

	"github.com/jackc/pgx/v5/pgconn"

	"github.com/facilitta/workforce-manager/backend/internal/domain"
)

func (h *Handler) GetAllEmployees(w http.ResponseWriter, r *http.Request) {
	employees, err := h.repository.GetAllEmployees()
	if err != nil {
		h.internalServerError(w, r, err)
		return
	}

	h.successResponse(w, r, "funcionários listados com sucesso", employees)
}

func (h *Handler) GetEmployee(w http.ResponseWriter, r *http.Request) {
	employee := r.Context().Value(EmployeeCtx).(*domain.Employee)
	h.successResponse(w, r, "funcionário obtido com sucesso", employee)
}

func (h *Handler) CreateEmployee(w http.ResponseWriter, r *http.Request) {
	var req struct {
		FullName  string     `json:"fullName" validate:"required"`
		Matricula string     `json:"matricula" validate:"required"`
		PostoID   *int64     `json:"postoID"`
		StartDate *time.Time `json:"startDate"`
	}

	if err := h.readJSON(r, &req); err != nil {
		h.badRequest(w, r, err)
		return
	}
	if err := h.validate.Struct(req); err != nil {
		h.badRequest(w, r, err)
		return
	}

	// An assignment needs its start date: it is the pivot every
	// offset-anchored rotation is measured from.
	if req.PostoID != nil && req.StartDate == nil {
		h.badRequest(w, r, errors.New("data de início é obrigatória ao alocar um posto"))
		return
	}

	employee := &domain.Employee{
		FullName:  req.FullName,
		Matricula: req.Matricula,
		PostoID:   req.PostoID,
		StartDate: req.StartDate,
	}

	if err := h.repository.CreateEmployee(employee); err != nil {
		var pgErr *pgconn.PgError
		switch {
		case errors.As(err, &pgErr):
			switch pgErr.ConstraintName {
			case "employees_matricula_key":
				h.badRequest(w, r, errors.New("matrícula já cadastrada"))
			case "employees_posto_id_fkey":
				h.badRequest(w, r, errors.New("posto não encontrado"))
			default:
				h.internalServerError(w, r, err)
			}
		default:
			h.internalServerError(w, r, err)
		}
		return
	}

	h.successResponse(w, r, "funcionário criado com sucesso", employee)
}

func (h *Handler) UpdateEmployee(w http.ResponseWriter, r *http.Request) {
	employee := r.Context().Value(EmployeeCtx).(*domain.Employee)

	var req struct {
		FullName  *string    `json:"fullName"`
		Matricula *string    `json:"matricula"`
		PostoID   *int64     `json:"postoID"`
		StartDate *time.Time `json:"startDate"`
		IsActive  *bool      `json:"isActive"`
	}

	if err := h.readJSON(r, &req); err != nil {
		h.badRequest(w, r, err)
		return
	}
	if err := h.validate.Struct(req); err != nil {
		h.badRequest(w, r, err)
		return
	}

	if req.FullName != nil {
		employee.FullName = *req.FullName
	}
	if req.Matricula != nil {
		employee.Matricula = *req.Matricula
	}
	if req.PostoID != nil {
		employee.PostoID = req.PostoID
	}
	if req.StartDate != nil {
		employee.StartDate = req.StartDate
	}
	if req.IsActive != nil {
		employee.IsActive = *req.IsActive
	}

	if employee.PostoID != nil && employee.StartDate == nil {
		h.badRequest(w, r, errors.New("data de início é obrigatória ao alocar um posto"))
		return
	}

	if err := h.repository.UpdateEmployee(employee); err != nil {
		var pgErr *pgconn.PgError
		switch {
		case errors.As(err, &pgErr):
			switch pgErr.ConstraintName {
			case "employees_matricula_key":
				h.badRequest(w, r, errors.New("matrícula já cadastrada"))
			case "employees_posto_id_fkey":
				h.badRequest(w, r, errors.New("posto não encontrado"))
			default:
				h.internalServerError(w, r, err)
			}
		case errors.Is(err, sql.ErrNoRows):
			h.errorResponse(w, r, "falha ao atualizar o funcionário, tente novamente")
		default:
			h.internalServerError(w, r, err)
		}
		return
	}

	h.successResponse(w, r, "funcionário atualizado com sucesso", employee)
}

func (h *Handler) DeleteEmployee(w http.ResponseWriter, r *http.Request) {
	employee := r.Context().Value(EmployeeCtx).(*domain.Employee)

	if err := h.repository.DeleteEmployee(employee.ID); err != nil {
		h.internalServerError(w, r, err)
		return
	}

	h.successResponse(w, r, "funcionário removido com sucesso", nil)
}
