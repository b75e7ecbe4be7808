package model

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestPermissionList(t *testing.T) {
	admin := Admin{Permissions: "view_cases,edit_cases,forward_cases"}
	assert.Equal(t, []string{"view_cases", "edit_cases", "forward_cases"}, admin.PermissionList())

	empty := Admin{}
	assert.Nil(t, empty.PermissionList())
}

func TestHasPermission(t *testing.T) {
	admin := Admin{Permissions: "view_cases,access_evidence"}
	assert.True(t, admin.HasPermission("view_cases"))
	assert.True(t, admin.HasPermission("access_evidence"))
	assert.False(t, admin.HasPermission("edit_cases"))
}

func TestDefaultPermissions(t *testing.T) {
	assert.Contains(t, DefaultPermissions("hr_admin"), "edit_cases")
	assert.Contains(t, DefaultPermissions("ngo_admin"), "forward_cases")
	assert.NotContains(t, DefaultPermissions("ngo_admin"), "edit_cases")
	assert.Equal(t, []string{"view_cases", "access_evidence"}, DefaultPermissions("legal_aid_admin"))
	assert.Nil(t, DefaultPermissions("intruder"))
}

func TestCaseAccessHasPermission(t *testing.T) {
	grant := CaseAccess{Permissions: "view,edit"}
	assert.True(t, grant.HasPermission("view"))
	assert.True(t, grant.HasPermission("edit"))
	assert.False(t, grant.HasPermission("forward"))
	assert.False(t, grant.HasPermission(""))
}

func TestCaseAccessIsValid(t *testing.T) {
	active := CaseAccess{IsActive: "1", ExpiresAt: time.Now().Add(time.Hour)}
	assert.True(t, active.IsValid())

	expired := CaseAccess{IsActive: "1", ExpiresAt: time.Now().Add(-time.Hour)}
	assert.False(t, expired.IsValid())

	deactivated := CaseAccess{IsActive: "0", ExpiresAt: time.Now().Add(time.Hour)}
	assert.False(t, deactivated.IsValid())
}
