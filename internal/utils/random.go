package utils

import (
	"fmt"
	"math/rand"
	"strings"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/facilitta/workforce-manager/backend/internal/domain"
)

var commonFirstNames = []string{
	"Ana", "Bruno", "Carla", "Daniel", "Eduarda", "Felipe", "Gabriela",
	"Henrique", "Isabela", "João", "Karina", "Lucas", "Mariana", "Nicolas",
	"Otávio", "Patrícia", "Rafael", "Sofia", "Thiago", "Vitória",
}

var commonSurnames = []string{
	"Silva", "Santos", "Oliveira", "Souza", "Rodrigues", "Ferreira",
	"Almeida", "Pereira", "Lima", "Gomes", "Costa", "Ribeiro", "Martins",
	"Carvalho", "Barbosa", "Rocha", "Dias", "Nascimento", "Andrade", "Moreira",
}

func GenerateRandomFullName() string {
	first := commonFirstNames[rand.Intn(len(commonFirstNames))]
	surname := commonSurnames[rand.Intn(len(commonSurnames))]
	if rand.Intn(2) == 0 {
		return first + " " + surname
	}
	second := commonSurnames[rand.Intn(len(commonSurnames))]
	return first + " " + surname + " " + second
}

var roles = []domain.Role{
	domain.RoleAdmin,
	domain.RoleRH,
	domain.RoleSupervisor,
}

func GenerateRandomRole() domain.Role {
	return roles[rand.Intn(len(roles))]
}

var digits = "0123456789"

// accented characters in names are dropped rather than folded; usernames stay
// plain ASCII either way
func GenerateUsernameFromFullName(fullName string) string {
	username := ""
	for _, part := range strings.Fields(fullName) {
		for _, r := range strings.ToLower(part) {
			if r >= 'a' && r <= 'z' {
				username += string(r)
			}
		}
		if rand.Intn(2) == 0 {
			break
		}
	}

	digitsLength := rand.Intn(3) + 1
	for i := 0; i < digitsLength; i++ {
		username += string(digits[rand.Intn(len(digits))])
	}

	return username
}

func GenerateRandomUser(password string, emailDomainName string) (*domain.User, error) {
	fullName := GenerateRandomFullName()
	username := GenerateUsernameFromFullName(fullName)
	passwordHash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	user := &domain.User{
		Username:     username,
		PasswordHash: string(passwordHash),
		FullName:     fullName,
		Email:        username + "@" + emailDomainName,
		Role:         GenerateRandomRole(),
	}

	return user, nil
}

func GenerateRandomOTP() string {
	return fmt.Sprintf("%06d", rand.Intn(1000000))
}

var letters = []rune("abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789!@#$%^&*")

func GenerateRandomPassword(length int) string {
	random_password := make([]rune, length)
	for i := range random_password {
		random_password[i] = letters[rand.Intn(len(letters))]
	}
	return string(random_password)
}

func GenerateRandomID(letterLength int, digitLength int) string {
	random_id := make([]rune, letterLength+digitLength)
	for i := range random_id {
		if i < letterLength {
			random_id[i] = letters[rand.Intn(len(letters))]
		} else {
			random_id[i] = rune(digits[rand.Intn(len(digits))])
		}
	}
	return string(random_id)
}

var scheduleLabels = []string{
	"12x36", "12x36 Par", "12x36 Ímpar", "12x36 Noturno",
	"5x1", "6x1", "5x2", "4x2", "Seg a Sex", "Seg a Sab",
}

func GenerateRandomScheduleLabel() string {
	return scheduleLabels[rand.Intn(len(scheduleLabels))]
}

var clientNames = []string{
	"Condomínio Jardim das Flores", "Shopping Via Norte", "Hospital Santa Clara",
	"Centro Empresarial Paulista", "Colégio Monte Azul", "Indústria Metalfer",
}

func GenerateRandomPosto() *domain.Posto {
	client := clientNames[rand.Intn(len(clientNames))]
	return &domain.Posto{
		Name:          fmt.Sprintf("Posto %s", GenerateRandomID(2, 3)),
		ClientName:    client,
		Address:       fmt.Sprintf("Rua %s, %d", commonSurnames[rand.Intn(len(commonSurnames))], rand.Intn(2000)+1),
		ScheduleLabel: GenerateRandomScheduleLabel(),
	}
}

func GenerateRandomEmployee(postoID int64) *domain.Employee {
	// assignment started somewhere in the past year
	startDate := time.Now().AddDate(0, 0, -rand.Intn(365))
	startDate = time.Date(startDate.Year(), startDate.Month(), startDate.Day(), 0, 0, 0, 0, time.UTC)

	return &domain.Employee{
		FullName:  GenerateRandomFullName(),
		Matricula: GenerateRandomID(0, 6),
		PostoID:   &postoID,
		StartDate: &startDate,
	}
}
