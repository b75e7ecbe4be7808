package admin

import (
	"net/http"
	"net/http/httptest"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
)

func newMockDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	t.Helper()
	conn, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { conn.Close() })

	db, err := gorm.Open(mysql.New(mysql.Config{
		Conn:                      conn,
		SkipInitializeWithVersion: true,
	}), &gorm.Config{})
	require.NoError(t, err)
	return db, mock
}

func adminContext(t *testing.T, role string) (*gin.Context, *httptest.ResponseRecorder) {
	t.Helper()
	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/admin/cases/5", nil)
	c.Params = gin.Params{{Key: "id", Value: "5"}}
	c.Set("adminId", uint(3))
	c.Set("organizationId", "org-42")
	c.Set("claims", jwt.MapClaims{"role": role})
	return c, w
}

func expectCaseLookup(mock sqlmock.Sqlmock, destination string) {
	rows := sqlmock.NewRows([]string{"incident_id", "user_id", "title", "description", "destination", "status"}).
		AddRow(5, 7, "Harassment in office", "Repeated comments", destination, "submitted")
	mock.ExpectQuery(regexp.QuoteMeta("SELECT * FROM `incidents` WHERE incident_id = ? AND status <> ?")).
		WillReturnRows(rows)
}

func expectGrantLookup(mock sqlmock.Sqlmock, permissions string) {
	rows := sqlmock.NewRows([]string{"access_id", "case_id", "admin_id", "organization_id", "access_type", "permissions", "is_active", "expires_at"}).
		AddRow(1, 5, 3, "org-42", "forwarded", permissions, "1", time.Now().Add(time.Hour))
	mock.ExpectQuery(regexp.QuoteMeta("SELECT * FROM `case_access` WHERE case_id = ? AND admin_id = ?")).
		WillReturnRows(rows)
}

func TestAccessibleCaseTierMatch(t *testing.T) {
	db, mock := newMockDB(t)
	c, _ := adminContext(t, "hr_admin")

	expectCaseLookup(mock, "hr")

	incident, ok := accessibleCase(c, db, "5", "view")
	require.True(t, ok)
	assert.Equal(t, 5, incident.IncidentID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestAccessibleCaseGrantWithPermission(t *testing.T) {
	db, mock := newMockDB(t)
	c, _ := adminContext(t, "ngo_admin")

	expectCaseLookup(mock, "hr")
	expectGrantLookup(mock, "view,edit")
	mock.ExpectBegin()
	mock.ExpectExec(regexp.QuoteMeta("UPDATE `case_access` SET")).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	incident, ok := accessibleCase(c, db, "5", "edit")
	require.True(t, ok)
	assert.Equal(t, 5, incident.IncidentID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestAccessibleCaseGrantLacksPermission(t *testing.T) {
	db, mock := newMockDB(t)
	c, w := adminContext(t, "ngo_admin")

	expectCaseLookup(mock, "hr")
	expectGrantLookup(mock, "view")

	// A view-only grant must not authorize edits.
	_, ok := accessibleCase(c, db, "5", "edit")
	require.False(t, ok)
	assert.Equal(t, http.StatusForbidden, w.Code)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestAccessibleCaseNoGrant(t *testing.T) {
	db, mock := newMockDB(t)
	c, w := adminContext(t, "ngo_admin")

	expectCaseLookup(mock, "hr")
	mock.ExpectQuery(regexp.QuoteMeta("SELECT * FROM `case_access` WHERE case_id = ? AND admin_id = ?")).
		WillReturnRows(sqlmock.NewRows([]string{"access_id"}))

	_, ok := accessibleCase(c, db, "5", "view")
	require.False(t, ok)
	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestAccessibleCaseNotFound(t *testing.T) {
	db, mock := newMockDB(t)
	c, w := adminContext(t, "hr_admin")

	mock.ExpectQuery(regexp.QuoteMeta("SELECT * FROM `incidents` WHERE incident_id = ? AND status <> ?")).
		WillReturnRows(sqlmock.NewRows([]string{"incident_id"}))

	_, ok := accessibleCase(c, db, "5", "view")
	require.False(t, ok)
	assert.Equal(t, http.StatusNotFound, w.Code)
}
