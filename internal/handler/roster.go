package handler

import (
	"context"
	"encoding/csv"
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"
	"time"

	amqp "github.com/rabbitmq/amqp091-go"

	"github.com/facilitta/workforce-manager/backend/internal/domain"
	"github.com/facilitta/workforce-manager/backend/internal/roster"
	"github.com/facilitta/workforce-manager/backend/internal/utils"
)

type rosterRow struct {
	Employee *domain.Employee   `json:"employee"`
	Days     []roster.DayStatus `json:"days"`
}

// resolveMonth reads the optional ?month=YYYY-MM query parameter, defaulting
// to the current month in the configured roster timezone.
func (h *Handler) resolveMonth(r *http.Request) (int, time.Month, *time.Location, error) {
	loc, err := time.LoadLocation(h.config.Roster.Timezone)
	if err != nil {
		return 0, 0, nil, err
	}

	monthParam := r.URL.Query().Get("month")
	if monthParam == "" {
		now := time.Now().In(loc)
		return now.Year(), now.Month(), loc, nil
	}

	year, month, err := utils.ParseMonth(monthParam)
	if err != nil {
		return 0, 0, nil, err
	}
	return year, month, loc, nil
}

// pivotFor picks the date the employee's rotation is anchored on. The
// assignment start date is the pivot; rows created before start dates were
// enforced fall back to the employee's creation date.
func pivotFor(employee *domain.Employee) time.Time {
	if employee.StartDate != nil {
		return *employee.StartDate
	}
	return employee.CreatedAt
}

func (h *Handler) projectPostoMonth(ctx context.Context, posto *domain.Posto, year int, month time.Month, loc *time.Location) ([]rosterRow, []time.Time, error) {
	days := roster.MonthDays(year, month, loc)

	employees, err := h.repository.GetEmployeesByPostoID(posto.ID)
	if err != nil {
		return nil, nil, err
	}

	rows := make([]rosterRow, 0, len(employees))
	for _, employee := range employees {
		grid, err := h.projector.Project(ctx, roster.ProjectionInput{
			ScheduleLabel: posto.ScheduleLabel,
			PivotDate:     pivotFor(employee),
			Days:          days,
			PostoID:       posto.ID,
		})
		if err != nil {
			return nil, nil, err
		}
		rows = append(rows, rosterRow{Employee: employee, Days: grid})
	}

	return rows, days, nil
}

func (h *Handler) GetPostoRoster(w http.ResponseWriter, r *http.Request) {
	posto := r.Context().Value(PostoCtx).(*domain.Posto)

	year, month, loc, err := h.resolveMonth(r)
	if err != nil {
		h.badRequest(w, r, err)
		return
	}

	rows, _, err := h.projectPostoMonth(r.Context(), posto, year, month, loc)
	if err != nil {
		h.internalServerError(w, r, err)
		return
	}

	h.successResponse(w, r, "escala obtida com sucesso", map[string]any{
		"posto":           posto,
		"month":           fmt.Sprintf("%04d-%02d", year, month),
		"nightShiftHours": roster.EstimateNightShiftHours(posto.ScheduleLabel),
		"rows":            rows,
	})
}

func (h *Handler) ExportPostoRoster(w http.ResponseWriter, r *http.Request) {
	posto := r.Context().Value(PostoCtx).(*domain.Posto)

	year, month, loc, err := h.resolveMonth(r)
	if err != nil {
		h.badRequest(w, r, err)
		return
	}

	rows, days, err := h.projectPostoMonth(r.Context(), posto, year, month, loc)
	if err != nil {
		h.internalServerError(w, r, err)
		return
	}

	w.Header().Set("Content-Type", "text/csv; charset=utf-8")
	w.Header().Set("Content-Disposition",
		fmt.Sprintf(`attachment; filename="escala_%d_%04d-%02d.csv"`, posto.ID, year, month))

	writer := csv.NewWriter(w)

	header := []string{"Funcionário", "Matrícula"}
	for _, day := range days {
		header = append(header, strconv.Itoa(day.Day()))
	}
	if err := writer.Write(header); err != nil {
		h.logInternalServerError(r, err)
		return
	}

	for _, row := range rows {
		record := append([]string{row.Employee.FullName, row.Employee.Matricula}, roster.ExportCells(row.Days)...)
		if err := writer.Write(record); err != nil {
			h.logInternalServerError(r, err)
			return
		}
	}

	writer.Flush()
	if err := writer.Error(); err != nil {
		h.logInternalServerError(r, err)
	}
}

func (h *Handler) ToggleRosterDay(w http.ResponseWriter, r *http.Request) {
	posto := r.Context().Value(PostoCtx).(*domain.Posto)

	var req struct {
		Date            string `json:"date" validate:"required"`
		DisplayedStatus string `json:"displayedStatus" validate:"required,oneof=work off"`
	}

	if err := h.readJSON(r, &req); err != nil {
		h.badRequest(w, r, err)
		return
	}
	if err := h.validate.Struct(req); err != nil {
		h.badRequest(w, r, err)
		return
	}

	day, err := time.Parse("2006-01-02", req.Date)
	if err != nil {
		h.badRequest(w, r, fmt.Errorf("data inválida: %s", req.Date))
		return
	}

	displayed := roster.Status(req.DisplayedStatus)

	// The write must land before the UI may flip the cell; a failed toggle is
	// reported as a failure so the client does not update its own state.
	if err := h.projector.Toggle(r.Context(), posto.ID, day, displayed); err != nil {
		h.internalServerError(w, r, err)
		return
	}

	newStatus := roster.StatusWork
	if displayed == roster.StatusWork {
		newStatus = roster.StatusOff
	}

	h.notifySupervisor(posto, day, newStatus, r)

	h.successResponse(w, r, "escala do dia alterada com sucesso", map[string]any{
		"postoID": posto.ID,
		"date":    req.Date,
		"status":  newStatus,
	})
}

// ClearRosterOverride removes the manual override for one day, restoring the
// computed schedule for that cell.
func (h *Handler) ClearRosterOverride(w http.ResponseWriter, r *http.Request) {
	posto := r.Context().Value(PostoCtx).(*domain.Posto)

	var req struct {
		Date string `json:"date" validate:"required"`
	}

	if err := h.readJSON(r, &req); err != nil {
		h.badRequest(w, r, err)
		return
	}
	if err := h.validate.Struct(req); err != nil {
		h.badRequest(w, r, err)
		return
	}

	day, err := time.Parse("2006-01-02", req.Date)
	if err != nil {
		h.badRequest(w, r, fmt.Errorf("data inválida: %s", req.Date))
		return
	}

	if err := h.repository.DeleteOverride(r.Context(), posto.ID, roster.NormalizeDate(day)); err != nil {
		h.internalServerError(w, r, err)
		return
	}

	h.successResponse(w, r, "exceção removida com sucesso", map[string]any{
		"postoID": posto.ID,
		"date":    req.Date,
	})
}

// notifySupervisor queues an override notice for the posto's supervisor.
// Failures only log: the override itself has already been persisted.
func (h *Handler) notifySupervisor(posto *domain.Posto, day time.Time, newStatus roster.Status, r *http.Request) {
	if posto.SupervisorEmail == "" {
		return
	}

	changedBy := ""
	if sub, ok := r.Context().Value(SubCtxKey).(string); ok {
		changedBy = sub
	}

	mailMessage := domain.MailMessage{
		Type: "override_notice",
		To:   posto.SupervisorEmail,
		Data: domain.OverrideNoticeMailData{
			PostoName:  posto.Name,
			ClientName: posto.ClientName,
			Date:       day.Format("02/01/2006"),
			NewStatus:  string(newStatus),
			ChangedBy:  changedBy,
		},
	}

	mailData, err := json.Marshal(mailMessage)
	if err != nil {
		h.logInternalServerError(r, err)
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(h.config.RabbitMQ.PublishTimeout)*time.Second)
	defer cancel()

	if err := h.mailChannel.PublishWithContext(
		ctx,
		"",
		"email_queue",
		true,
		false,
		amqp.Publishing{
			ContentType: "application/json",
			Body:        mailData,
		},
	); err != nil {
		h.logInternalServerError(r, err)
	}
}
