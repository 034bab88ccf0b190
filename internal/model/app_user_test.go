package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAppUser_HasNotPermissionForReport(t *testing.T) {
	tests := []struct {
		name        string
		permissions []string
		report      string
		want        bool
	}{
		{name: "no permissions", report: "Client Listing", want: true},
		{name: "all functions", permissions: []string{PermissionAllFunctions}, report: "Client Listing", want: false},
		{name: "all functions read", permissions: []string{PermissionAllFunctionsRead}, report: "Client Listing", want: false},
		{name: "reporting super user", permissions: []string{PermissionReportingSuperUser}, report: "Client Listing", want: false},
		{name: "can run this report", permissions: []string{"CAN_RUN_Client Listing"}, report: "Client Listing", want: false},
		{name: "can run other report", permissions: []string{"CAN_RUN_Loan Listing"}, report: "Client Listing", want: true},
		{name: "name is case sensitive", permissions: []string{"CAN_RUN_client listing"}, report: "Client Listing", want: true},
		{name: "unrelated permission", permissions: []string{"CREATE_CLIENT"}, report: "Client Listing", want: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			u := AppUser{ID: 1, Permissions: tt.permissions}
			assert.Equal(t, tt.want, u.HasNotPermissionForReport(tt.report))
		})
	}
}

func TestIsPentahoType(t *testing.T) {
	assert.True(t, IsPentahoType("Pentaho"))
	assert.True(t, IsPentahoType("PENTAHO"))
	assert.True(t, IsPentahoType("pentaho"))
	assert.False(t, IsPentahoType("Table"))
	assert.False(t, IsPentahoType(""))
}

func TestResultsetRow_Strings(t *testing.T) {
	v := "1"
	row := ResultsetRow{Row: []*string{&v, nil}}
	assert.Equal(t, []string{"1", ""}, row.Strings())
}
