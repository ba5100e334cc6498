package domain

import "time"

// Posto is a staffed post at a client site. The schedule label is attached to
// the posto; each employee assigned to it carries their own start date, which
// anchors offset-based rotations.
type Posto struct {
	ID              int64     `json:"id"`
	Name            string    `json:"name"`
	ClientName      string    `json:"clientName"`
	Address         string    `json:"address"`
	ScheduleLabel   string    `json:"scheduleLabel"`
	SupervisorEmail string    `json:"supervisorEmail"`
	CreatedAt       time.Time `json:"createdAt"`
	Version         int32     `json:"-"`
}

type Employee struct {
	ID        int64      `json:"id"`
	FullName  string     `json:"fullName"`
	Matricula string     `json:"matricula"`
	PostoID   *int64     `json:"postoID"` // nil while the employee is unassigned
	StartDate *time.Time `json:"startDate"`
	IsActive  bool       `json:"isActive"`
	CreatedAt time.Time  `json:"createdAt"`
	Version   int32      `json:"-"`
}
