package employee

type CreateEmployeeRequest struct {
	EmpID     string  `json:"emp_id"` // assigned by the directory when empty
	Name      string  `json:"name" validate:"required"`
	ManagerID *string `json:"manager_id"`
	Email     *string `json:"email" validate:"omitempty,email"`
}

type EmployeeResponse struct {
	EmpID     string  `json:"emp_id"`
	Name      string  `json:"name"`
	ManagerID *string `json:"manager_id,omitempty"`
	Email     *string `json:"email,omitempty"`
	HiredDate string  `json:"hired_date"`
}

type ManagerResponse struct {
	EmpID       string `json:"emp_id"`
	Assigned    bool   `json:"assigned"`
	ManagerID   string `json:"manager_id,omitempty"`
	ManagerName string `json:"manager_name,omitempty"`
	Message     string `json:"message"`
}
