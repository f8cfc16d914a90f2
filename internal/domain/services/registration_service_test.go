package services

import (
	"fmt"
	"strings"
	"testing"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/Sain-orshikh/MAIS-burtgel/internal/domain/models"
	"github.com/Sain-orshikh/MAIS-burtgel/internal/infrastructure/config"
)

// newTestDB opens an isolated in-memory database with the schema migrated
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)

	// A pooled second connection would see a different empty database
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, db.AutoMigrate(&models.Admin{}, &models.Registration{}))
	return db
}

// fakeEmailService records dispatched notifications
type fakeEmailService struct {
	approvals  []string
	rejections []string
	reasons    []string
	failWith   error
}

func (f *fakeEmailService) SendApprovalEmail(to, name string) error {
	if f.failWith != nil {
		return f.failWith
	}
	f.approvals = append(f.approvals, to)
	return nil
}

func (f *fakeEmailService) SendRejectionEmail(to, name, reason string) error {
	if f.failWith != nil {
		return f.failWith
	}
	f.rejections = append(f.rejections, to)
	f.reasons = append(f.reasons, reason)
	return nil
}

func newTestRegistrationService(t *testing.T) (*RegistrationService, *fakeEmailService) {
	t.Helper()
	email := &fakeEmailService{}
	svc := NewRegistrationService(newTestDB(t), &config.Config{}, email)
	return svc, email
}

func newApplication(i int) *models.Registration {
	return &models.Registration{
		Name:                       fmt.Sprintf("Applicant %d", i),
		Email:                      fmt.Sprintf("applicant%d@example.com", i),
		PhoneNumber:                fmt.Sprintf("+9769%07d", i),
		NationalRegistrationNumber: fmt.Sprintf("MN%08d", i),
		School: models.SchoolInfo{
			Name:         "International School of Ulaanbaatar",
			AverageGrade: 85,
		},
		Essay: strings.Repeat("Education matters. ", 10),
	}
}

func TestCreateAssignsSequentialNumbers(t *testing.T) {
	svc, _ := newTestRegistrationService(t)

	for i := 1; i <= 3; i++ {
		reg := newApplication(i)
		require.NoError(t, svc.Create(reg))
		assert.Equal(t, i, reg.RegistrationNumber)
		assert.Equal(t, models.StatusPending, reg.Status)
	}
}

func TestCreateForcesPendingStatus(t *testing.T) {
	svc, _ := newTestRegistrationService(t)

	reg := newApplication(1)
	reg.Status = models.StatusApproved
	require.NoError(t, svc.Create(reg))
	assert.Equal(t, models.StatusPending, reg.Status)
}

func TestCreateRejectsDuplicateEmail(t *testing.T) {
	svc, _ := newTestRegistrationService(t)
	require.NoError(t, svc.Create(newApplication(1)))

	dup := newApplication(2)
	dup.Email = "applicant1@example.com"
	assert.ErrorIs(t, svc.Create(dup), ErrRegistrationExists)
}

func TestCreateRejectsDuplicateEmailCaseInsensitively(t *testing.T) {
	svc, _ := newTestRegistrationService(t)
	require.NoError(t, svc.Create(newApplication(1)))

	dup := newApplication(2)
	dup.Email = "APPLICANT1@Example.com"
	assert.ErrorIs(t, svc.Create(dup), ErrRegistrationExists)
}

func TestCreateRejectsDuplicateNationalRegistrationNumber(t *testing.T) {
	svc, _ := newTestRegistrationService(t)
	require.NoError(t, svc.Create(newApplication(1)))

	dup := newApplication(2)
	dup.NationalRegistrationNumber = "MN00000001"
	assert.ErrorIs(t, svc.Create(dup), ErrRegistrationExists)
}

func TestListOmitsEssayAndSortsByNumber(t *testing.T) {
	svc, _ := newTestRegistrationService(t)
	for i := 1; i <= 3; i++ {
		require.NoError(t, svc.Create(newApplication(i)))
	}

	regs, err := svc.List()
	require.NoError(t, err)
	require.Len(t, regs, 3)

	for i, reg := range regs {
		assert.Equal(t, i+1, reg.RegistrationNumber)
		assert.Empty(t, reg.Essay)
	}
}

func TestGetByIDReturnsFullRecord(t *testing.T) {
	svc, _ := newTestRegistrationService(t)
	created := newApplication(1)
	require.NoError(t, svc.Create(created))

	reg, err := svc.GetByID(created.ID)
	require.NoError(t, err)
	assert.Equal(t, created.Essay, reg.Essay)
	assert.Equal(t, "applicant1@example.com", reg.Email)
}

func TestGetByIDUnknownApplicant(t *testing.T) {
	svc, _ := newTestRegistrationService(t)

	_, err := svc.GetByID(42)
	assert.ErrorIs(t, err, ErrRegistrationNotFound)
}

func TestUpdateStatusApprovedSendsOneEmail(t *testing.T) {
	svc, email := newTestRegistrationService(t)
	created := newApplication(1)
	require.NoError(t, svc.Create(created))

	reg, err := svc.UpdateStatus(created.ID, models.StatusApproved, "")
	require.NoError(t, err)
	assert.Equal(t, models.StatusApproved, reg.Status)
	assert.Equal(t, []string{"applicant1@example.com"}, email.approvals)
	assert.Empty(t, email.rejections)
}

func TestUpdateStatusRejectedCarriesReason(t *testing.T) {
	svc, email := newTestRegistrationService(t)
	created := newApplication(1)
	require.NoError(t, svc.Create(created))

	reg, err := svc.UpdateStatus(created.ID, models.StatusRejected, "Incomplete payment confirmation")
	require.NoError(t, err)
	assert.Equal(t, models.StatusRejected, reg.Status)
	assert.Equal(t, []string{"Incomplete payment confirmation"}, email.reasons)
}

func TestUpdateStatusOverwritesDecidedRecord(t *testing.T) {
	svc, _ := newTestRegistrationService(t)
	created := newApplication(1)
	require.NoError(t, svc.Create(created))

	_, err := svc.UpdateStatus(created.ID, models.StatusApproved, "")
	require.NoError(t, err)

	reg, err := svc.UpdateStatus(created.ID, models.StatusRejected, "Changed on review")
	require.NoError(t, err)
	assert.Equal(t, models.StatusRejected, reg.Status)
}

func TestUpdateStatusRejectsUnknownValue(t *testing.T) {
	svc, email := newTestRegistrationService(t)
	created := newApplication(1)
	require.NoError(t, svc.Create(created))

	_, err := svc.UpdateStatus(created.ID, models.Status("waitlisted"), "")
	assert.ErrorIs(t, err, ErrInvalidStatus)
	assert.Empty(t, email.approvals)
	assert.Empty(t, email.rejections)
}

func TestUpdateStatusUnknownApplicantSendsNothing(t *testing.T) {
	svc, email := newTestRegistrationService(t)

	_, err := svc.UpdateStatus(42, models.StatusApproved, "")
	assert.ErrorIs(t, err, ErrRegistrationNotFound)
	assert.Empty(t, email.approvals)
}

func TestUpdateStatusSurvivesEmailFailure(t *testing.T) {
	svc, email := newTestRegistrationService(t)
	created := newApplication(1)
	require.NoError(t, svc.Create(created))

	email.failWith = fmt.Errorf("smtp unreachable")
	reg, err := svc.UpdateStatus(created.ID, models.StatusApproved, "")
	require.NoError(t, err)
	assert.Equal(t, models.StatusApproved, reg.Status)
}
