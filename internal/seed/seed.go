package seed

import (
	"encoding/csv"
	"errors"
	"io"
	"log/slog"
	"os"
	"strconv"
	"time"

	"github.com/facilitta/workforce-manager/backend/internal/domain"
	"github.com/facilitta/workforce-manager/backend/internal/repository"
	"github.com/facilitta/workforce-manager/backend/internal/utils"
)

func SeedUsers(r *repository.Repository, n int, password string, emailDomain string) {
	for i := 0; i < n; i++ {
		user, err := utils.GenerateRandomUser(password, emailDomain)
		if err != nil {
			slog.Error("falha ao gerar usuário aleatório", "error", err)
			return
		}
		if err := r.CreateUser(user); err != nil {
			slog.Error("falha ao inserir usuário", "username", user.Username, "error", err)
			continue
		}
		slog.Info("usuário inserido", "username", user.Username, "role", user.Role)
	}
}

func SeedPostos(r *repository.Repository, n int) []int64 {
	ids := make([]int64, 0, n)
	for i := 0; i < n; i++ {
		posto := utils.GenerateRandomPosto()
		if err := r.CreatePosto(posto); err != nil {
			slog.Error("falha ao inserir posto", "name", posto.Name, "error", err)
			continue
		}
		slog.Info("posto inserido", "name", posto.Name, "schedule", posto.ScheduleLabel)
		ids = append(ids, posto.ID)
	}
	return ids
}

func SeedEmployees(r *repository.Repository, postoIDs []int64, perPosto int) {
	for _, postoID := range postoIDs {
		for i := 0; i < perPosto; i++ {
			employee := utils.GenerateRandomEmployee(postoID)
			if err := r.CreateEmployee(employee); err != nil {
				slog.Error("falha ao inserir funcionário", "name", employee.FullName, "error", err)
				continue
			}
			slog.Info("funcionário inserido", "name", employee.FullName, "postoID", postoID)
		}
	}
}

// SeedEmployeesFromCSV imports real employees from the spreadsheet the
// operations team exports: full_name, matricula, posto_id, start_date
// (DD/MM/YYYY), one employee per line, header included.
func SeedEmployeesFromCSV(r *repository.Repository, path string) {
	file, err := os.Open(path)
	if err != nil {
		slog.Error("falha ao abrir o arquivo", "path", path, "error", err)
		return
	}
	defer file.Close()

	reader := csv.NewReader(file)

	// skip the header line
	if _, err := reader.Read(); err != nil {
		slog.Error("falha ao ler o cabeçalho", "error", err)
		return
	}

	line := 1
	for {
		record, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		line++
		if err != nil {
			slog.Error("falha ao ler a linha", "line", line, "error", err)
			continue
		}
		if len(record) < 4 {
			slog.Error("linha com colunas faltando", "line", line)
			continue
		}

		startDate, err := time.Parse("02/01/2006", record[3])
		if err != nil {
			slog.Error("data de início inválida", "line", line, "value", record[3])
			continue
		}

		postoID, err := strconv.ParseInt(record[2], 10, 64)
		if err != nil {
			slog.Error("posto_id inválido", "line", line, "value", record[2])
			continue
		}

		employee := &domain.Employee{
			FullName:  record[0],
			Matricula: record[1],
			PostoID:   &postoID,
			StartDate: &startDate,
		}

		if err := r.CreateEmployee(employee); err != nil {
			slog.Error("falha ao inserir funcionário", "line", line, "error", err)
			continue
		}
	}

	slog.Info("importação concluída", "lines", line-1)
}
