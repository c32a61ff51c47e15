package models

// LoginPayload is the body of POST /v1/auth/login.
type LoginPayload struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// LoginResponse is what the backend returns for a successful login.
type LoginResponse struct {
	Token    string    `json:"token"`
	Username string    `json:"username"`
	Employee *Employee `json:"employee"`
}

// User is the authenticated account as the session keeps it.
type User struct {
	Username string `json:"username"`
}

type EmployeeType struct {
	ID   string `json:"id,omitempty"`
	Name string `json:"name"`
}

// Employee is the staff record attached to a login. Its employee type name
// is the role used for route access.
type Employee struct {
	Entity
	FirstName       string        `json:"firstName,omitempty"`
	LastName        string        `json:"lastName,omitempty"`
	Email           string        `json:"email,omitempty"`
	EstablishmentID string        `json:"establishmentId,omitempty"`
	EmployeeType    *EmployeeType `json:"employeeType,omitempty"`
}
