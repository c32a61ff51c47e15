package models

import "time"

// Session is the persisted sign-in record, keyed by backend token.
type Session struct {
	Token     string    `json:"token"`
	Username  string    `json:"username"`
	Employee  *Employee `json:"employee,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

// EmployeeTypeName returns the role string carried by the employee record,
// or "" when the login came without one.
func (s *Session) EmployeeTypeName() string {
	if s == nil || s.Employee == nil || s.Employee.EmployeeType == nil {
		return ""
	}
	return s.Employee.EmployeeType.Name
}

// FullName joins the employee names, falling back to the username.
func (s *Session) FullName() string {
	if s == nil {
		return ""
	}
	if s.Employee != nil {
		name := s.Employee.FirstName
		if s.Employee.LastName != "" {
			if name != "" {
				name += " "
			}
			name += s.Employee.LastName
		}
		if name != "" {
			return name
		}
	}
	return s.Username
}
