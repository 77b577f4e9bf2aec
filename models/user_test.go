package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCapabilitiesFor(t *testing.T) {
	tests := []struct {
		role string
		want Capabilities
	}{
		{RoleAdmin, Capabilities{CanCreate: true, CanEdit: true, CanDelete: true}},
		{RoleBroker, Capabilities{CanCreate: true, CanEdit: true, CanDelete: false}},
		{RoleClient, Capabilities{}},
		{"", Capabilities{}},
		{"outro", Capabilities{}},
	}
	for _, tt := range tests {
		t.Run(tt.role, func(t *testing.T) {
			assert.Equal(t, tt.want, CapabilitiesFor(tt.role))
		})
	}
}

func TestRoleLabel(t *testing.T) {
	assert.Equal(t, "Administrador", RoleLabel(RoleAdmin))
	assert.Equal(t, "Corretor", RoleLabel(RoleBroker))
	assert.Equal(t, "Cliente", RoleLabel(RoleClient))
	assert.Equal(t, "visitante", RoleLabel("visitante"))
}
