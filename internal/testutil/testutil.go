package testutil

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/google/uuid"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/Ifeanyi-design/irapada-ogo-youths/internal/auth"
	"github.com/Ifeanyi-design/irapada-ogo-youths/internal/database/models"
)

// SetupTestDB creates an in-memory SQLite database for testing
func SetupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("failed to create test database: %v", err)
	}

	err = db.AutoMigrate(
		&models.User{},
		&models.PreUser{},
		&models.Table{},
		&models.Column{},
		&models.Content{},
	)
	if err != nil {
		t.Fatalf("failed to migrate test database: %v", err)
	}

	return db
}

// CreateTestUser creates a test user
func CreateTestUser(t *testing.T, db *gorm.DB, admin bool) *models.User {
	t.Helper()

	hash, err := auth.HashPassword("testpassword123")
	if err != nil {
		t.Fatalf("failed to hash password: %v", err)
	}

	user := &models.User{
		Name:         "Test User",
		Email:        "test-" + uuid.New().String()[:8] + "@example.com",
		PasswordHash: hash,
		Admin:        admin,
	}

	if err := db.Create(user).Error; err != nil {
		t.Fatalf("failed to create test user: %v", err)
	}

	return user
}

// CreateTestPreUser creates a test pre-user, optionally linked to a user
func CreateTestPreUser(t *testing.T, db *gorm.DB, userID *uint) *models.PreUser {
	t.Helper()

	preUser := &models.PreUser{
		UserID: userID,
		Name:   "Test PreUser",
	}

	if err := db.Create(preUser).Error; err != nil {
		t.Fatalf("failed to create test pre-user: %v", err)
	}

	return preUser
}

// CreateTestTable creates a test table for the given pre-user
func CreateTestTable(t *testing.T, db *gorm.DB, preUserID uint, name string) *models.Table {
	t.Helper()

	table := &models.Table{
		PreUserID: preUserID,
		Name:      name,
	}

	if err := db.Create(table).Error; err != nil {
		t.Fatalf("failed to create test table: %v", err)
	}

	return table
}

// CreateTestColumn creates a test column on the given table
func CreateTestColumn(t *testing.T, db *gorm.DB, tableID uint, name string, datatype models.Datatype) *models.Column {
	t.Helper()

	column := &models.Column{
		TableID:  tableID,
		Name:     name,
		Datatype: datatype,
	}

	if err := db.Create(column).Error; err != nil {
		t.Fatalf("failed to create test column: %v", err)
	}

	return column
}

// CreateTestContent creates a ledger entry with the given references
func CreateTestContent(t *testing.T, db *gorm.DB, preUserID, tableID, columnID *uint, value string, createdAt time.Time) *models.Content {
	t.Helper()

	content := &models.Content{
		PreUserID: preUserID,
		TableID:   tableID,
		ColumnID:  columnID,
		Value:     value,
		CreatedAt: createdAt,
	}

	if err := db.Create(content).Error; err != nil {
		t.Fatalf("failed to create test content: %v", err)
	}

	return content
}

// CreateTestJWTService creates a JWT service for testing
func CreateTestJWTService() *auth.JWTService {
	return auth.NewJWTService("test-secret-key-for-testing", 24*time.Hour)
}

// GenerateTestToken generates a valid JWT token for the given user
func GenerateTestToken(t *testing.T, jwtService *auth.JWTService, user *models.User) string {
	t.Helper()

	token, err := jwtService.GenerateToken(user.ID, user.Email, user.Admin)
	if err != nil {
		t.Fatalf("failed to generate test token: %v", err)
	}

	return token
}

// AuthenticatedRequest creates an HTTP request with authentication
func AuthenticatedRequest(t *testing.T, method, path string, body interface{}, token string) *http.Request {
	t.Helper()

	var reqBody *bytes.Buffer
	if body != nil {
		jsonData, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("failed to marshal request body: %v", err)
		}
		reqBody = bytes.NewBuffer(jsonData)
	} else {
		reqBody = bytes.NewBuffer(nil)
	}

	req := httptest.NewRequest(method, path, reqBody)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	return req
}

// AssertStatus checks if the response has the expected status code
func AssertStatus(t *testing.T, rr *httptest.ResponseRecorder, expected int) {
	t.Helper()
	if rr.Code != expected {
		t.Errorf("expected status %d, got %d. Body: %s", expected, rr.Code, rr.Body.String())
	}
}

// TestSetup holds the common test dependencies
type TestSetup struct {
	DB         *gorm.DB
	JWTService *auth.JWTService
	User       *models.User
	PreUser    *models.PreUser
	Token      string
}

// NewTestContext creates a regular user with a linked pre-user and a token
func NewTestContext(t *testing.T) *TestSetup {
	t.Helper()
	return newContext(t, false)
}

// NewAdminContext creates an admin user with a linked pre-user and a token
func NewAdminContext(t *testing.T) *TestSetup {
	t.Helper()
	return newContext(t, true)
}

func newContext(t *testing.T, admin bool) *TestSetup {
	db := SetupTestDB(t)
	jwtService := CreateTestJWTService()
	user := CreateTestUser(t, db, admin)
	preUser := CreateTestPreUser(t, db, &user.ID)
	token := GenerateTestToken(t, jwtService, user)

	return &TestSetup{
		DB:         db,
		JWTService: jwtService,
		User:       user,
		PreUser:    preUser,
		Token:      token,
	}
}

// Cleanup closes the test database
func (ts *TestSetup) Cleanup() {
	if ts.DB != nil {
		sqlDB, err := ts.DB.DB()
		if err == nil {
			sqlDB.Close()
		}
	}
}
