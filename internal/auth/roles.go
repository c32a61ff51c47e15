// Package auth holds the role model used for route access and the session
// state with its transitions.
package auth

import "backoffice/internal/models"

// Role is an employee type name as the backend reports it.
type Role string

const (
	RoleNone            Role = ""
	RoleAdmin           Role = "ADMIN"
	RoleStaffHotel      Role = "Staff Hotel"
	RoleStaffRestaurant Role = "Staff Restaurante"
	RoleAccountant      Role = "Contador"

	// Application roles of the wider platform. They are recognised but open
	// no back-office area.
	RoleCinemaAdmin Role = "CINEMA_ADMIN"
	RoleSponsor     Role = "SPONSOR"
	RoleClient      Role = "CLIENT"
)

var knownRoles = map[Role]struct{}{
	RoleAdmin:           {},
	RoleStaffHotel:      {},
	RoleStaffRestaurant: {},
	RoleAccountant:      {},
	RoleCinemaAdmin:     {},
	RoleSponsor:         {},
	RoleClient:          {},
}

// ParseRole maps unknown strings to RoleNone.
func ParseRole(s string) Role {
	r := Role(s)
	if _, ok := knownRoles[r]; ok {
		return r
	}
	return RoleNone
}

// RoleFromEmployee reads employeeType.name. A missing employee or type
// yields RoleNone.
func RoleFromEmployee(e *models.Employee) Role {
	if e == nil || e.EmployeeType == nil {
		return RoleNone
	}
	return ParseRole(e.EmployeeType.Name)
}

// RouteGroup is a protected area of the back office.
type RouteGroup string

const (
	GroupAdmin        RouteGroup = "admin"
	GroupReservations RouteGroup = "reservations"
	GroupOrders       RouteGroup = "orders"
	GroupReports      RouteGroup = "reports"
)

// Title is the area name shown in permission notices.
func (g RouteGroup) Title() string {
	switch g {
	case GroupAdmin:
		return "Administración"
	case GroupReservations:
		return "Reservaciones"
	case GroupOrders:
		return "Ordenes"
	case GroupReports:
		return "Reportes"
	}
	return string(g)
}

var groupRoles = map[RouteGroup][]Role{
	GroupAdmin:        {RoleAdmin},
	GroupReservations: {RoleAdmin, RoleStaffHotel},
	GroupOrders:       {RoleAdmin, RoleStaffRestaurant},
	GroupReports:      {RoleAdmin, RoleAccountant},
}

// IsAllowed reports whether role may enter group.
func IsAllowed(role Role, group RouteGroup) bool {
	return HasAnyRole(role, groupRoles[group]...)
}

// HasAnyRole reports whether role is in allowed. RoleNone never matches.
func HasAnyRole(role Role, allowed ...Role) bool {
	if role == RoleNone {
		return false
	}
	for _, r := range allowed {
		if r == role {
			return true
		}
	}
	return false
}

func IsAdmin(role Role) bool {
	return role == RoleAdmin
}

func CanAccessAdmin(role Role) bool {
	return IsAllowed(role, GroupAdmin)
}

func CanAccessReservations(role Role) bool {
	return IsAllowed(role, GroupReservations)
}

func CanAccessOrders(role Role) bool {
	return IsAllowed(role, GroupOrders)
}

func CanAccessReports(role Role) bool {
	return IsAllowed(role, GroupReports)
}
