package hr

type Company struct {
	ID   int64  `json:"id,omitempty"`
	Name string `json:"name"`

	// Derived counts computed by the backend; read-only.
	NumberOfDepartments int `json:"number_of_departments,omitempty"`
	NumberOfEmployees   int `json:"number_of_employees,omitempty"`
}

type Department struct {
	ID        int64    `json:"id,omitempty"`
	Name      string   `json:"name"`
	CompanyID int64    `json:"company_id,omitempty"`
	Company   *Company `json:"company,omitempty"`

	NumberOfEmployees int `json:"number_of_employees,omitempty"`
}
