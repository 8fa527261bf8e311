package employee

import "time"

type Employee struct {
	EmpID     string
	Name      string
	ManagerID *string
	Email     *string
	HiredDate time.Time
	CreatedAt time.Time
}
