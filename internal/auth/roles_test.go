package auth

import (
	"testing"

	"backoffice/internal/models"

	"github.com/stretchr/testify/assert"
)

func TestParseRole(t *testing.T) {
	assert.Equal(t, RoleAdmin, ParseRole("ADMIN"))
	assert.Equal(t, RoleStaffHotel, ParseRole("Staff Hotel"))
	assert.Equal(t, RoleSponsor, ParseRole("SPONSOR"))
	assert.Equal(t, RoleNone, ParseRole("admin"))
	assert.Equal(t, RoleNone, ParseRole(""))
	assert.Equal(t, RoleNone, ParseRole("Gerente"))
}

func TestRoleFromEmployee(t *testing.T) {
	assert.Equal(t, RoleNone, RoleFromEmployee(nil))
	assert.Equal(t, RoleNone, RoleFromEmployee(&models.Employee{}))
	assert.Equal(t, RoleAccountant, RoleFromEmployee(&models.Employee{
		EmployeeType: &models.EmployeeType{Name: "Contador"},
	}))
}

func TestAccessMatrix(t *testing.T) {
	tests := []struct {
		role         Role
		admin        bool
		reservations bool
		orders       bool
		reports      bool
	}{
		{role: RoleAdmin, admin: true, reservations: true, orders: true, reports: true},
		{role: RoleStaffHotel, reservations: true},
		{role: RoleStaffRestaurant, orders: true},
		{role: RoleAccountant, reports: true},
		{role: RoleCinemaAdmin},
		{role: RoleSponsor},
		{role: RoleClient},
		{role: RoleNone},
	}

	for _, tt := range tests {
		t.Run(string(tt.role), func(t *testing.T) {
			assert.Equal(t, tt.admin, CanAccessAdmin(tt.role), "admin")
			assert.Equal(t, tt.admin, IsAdmin(tt.role), "is admin")
			assert.Equal(t, tt.reservations, CanAccessReservations(tt.role), "reservations")
			assert.Equal(t, tt.orders, CanAccessOrders(tt.role), "orders")
			assert.Equal(t, tt.reports, CanAccessReports(tt.role), "reports")
		})
	}
}

func TestHasAnyRole(t *testing.T) {
	assert.True(t, HasAnyRole(RoleAdmin, RoleStaffHotel, RoleAdmin))
	assert.False(t, HasAnyRole(RoleAccountant, RoleStaffHotel, RoleAdmin))
	assert.False(t, HasAnyRole(RoleAdmin))
	assert.False(t, HasAnyRole(RoleNone, RoleNone))
}

func TestGroupTitle(t *testing.T) {
	assert.Equal(t, "Administración", GroupAdmin.Title())
	assert.Equal(t, "Reservaciones", GroupReservations.Title())
	assert.Equal(t, "Ordenes", GroupOrders.Title())
	assert.Equal(t, "Reportes", GroupReports.Title())
}
