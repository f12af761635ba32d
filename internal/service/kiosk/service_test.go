package kiosk

import (
	"context"
	"encoding/base64"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pontolabs/ponto-backend-go/internal/config"
	"github.com/pontolabs/ponto-backend-go/internal/domain/auth"
	"github.com/pontolabs/ponto-backend-go/internal/domain/device"
	"github.com/pontolabs/ponto-backend-go/internal/domain/employee"
	"github.com/pontolabs/ponto-backend-go/internal/domain/punch"
	"github.com/pontolabs/ponto-backend-go/internal/domain/timesheet"
	"github.com/pontolabs/ponto-backend-go/internal/pkg/pinhash"
	"github.com/pontolabs/ponto-backend-go/internal/pkg/utils"
)

// ========================================
// IN-MEMORY FAKES
// ========================================

type fakeEmployeeRepo struct {
	employee.EmployeeRepository
	byCPFHash map[string]*employee.Employee
}

func (f *fakeEmployeeRepo) GetActiveByCPFHash(_ context.Context, cpfHash string) (*employee.Employee, error) {
	emp, ok := f.byCPFHash[cpfHash]
	if !ok {
		return nil, nil
	}
	cp := *emp
	return &cp, nil
}

func (f *fakeEmployeeRepo) SetFailedAttempts(_ context.Context, id string, attempts int, lockedUntil *time.Time) error {
	for _, emp := range f.byCPFHash {
		if emp.ID == id {
			emp.FailedAttempts = attempts
			emp.LockedUntil = lockedUntil
		}
	}
	return nil
}

func (f *fakeEmployeeRepo) ResetFailedAttempts(_ context.Context, id string) error {
	for _, emp := range f.byCPFHash {
		if emp.ID == id {
			emp.FailedAttempts = 0
			emp.LockedUntil = nil
		}
	}
	return nil
}

type fakeDeviceRepo struct {
	device.DeviceRepository
	devices []device.Device
}

func (f *fakeDeviceRepo) GetActiveBySecretHash(_ context.Context, secretHash string) (*device.Device, error) {
	for _, d := range f.devices {
		if d.Active && d.SecretHash == secretHash {
			cp := d
			return &cp, nil
		}
	}
	return nil, nil
}

func (f *fakeDeviceRepo) HasActiveDevice(_ context.Context) (bool, error) {
	for _, d := range f.devices {
		if d.Active {
			return true, nil
		}
	}
	return false, nil
}

func (f *fakeDeviceRepo) Create(_ context.Context, d device.Device) (device.Device, error) {
	d.ID = "dev-auto"
	f.devices = append(f.devices, d)
	return d, nil
}

type fakePunchRepo struct {
	punch.PunchRepository
	punches []punch.Punch

	// competing, when set, lands another punch right before the atomic
	// cooldown re-check, like a concurrent request winning the race.
	competing *punch.Punch
}

func (f *fakePunchRepo) Create(_ context.Context, p punch.Punch) (punch.Punch, error) {
	p.ID = "punch-1"
	f.punches = append(f.punches, p)
	return p, nil
}

func (f *fakePunchRepo) CreateWithCooldown(ctx context.Context, p punch.Punch, cutoff time.Time) (punch.Punch, error) {
	if f.competing != nil {
		f.punches = append(f.punches, *f.competing)
		f.competing = nil
	}
	tooSoon, err := f.HasPunchAfter(ctx, p.EmployeeID, cutoff)
	if err != nil {
		return punch.Punch{}, err
	}
	if tooSoon {
		return punch.Punch{}, punch.ErrTooSoon
	}
	return f.Create(ctx, p)
}

func (f *fakePunchRepo) ListByEmployeeAndRange(_ context.Context, employeeID string, from, to time.Time) ([]punch.Punch, error) {
	var out []punch.Punch
	for _, p := range f.punches {
		if p.EmployeeID == employeeID && !p.PunchedAt.Before(from) && p.PunchedAt.Before(to) {
			out = append(out, p)
		}
	}
	return out, nil
}

func (f *fakePunchRepo) HasPunchAfter(_ context.Context, employeeID string, after time.Time) (bool, error) {
	for _, p := range f.punches {
		if p.EmployeeID == employeeID && p.PunchedAt.After(after) {
			return true, nil
		}
	}
	return false, nil
}

type fakeAttemptRepo struct {
	attempts []auth.LoginAttempt
}

func (f *fakeAttemptRepo) Create(_ context.Context, a auth.LoginAttempt) error {
	f.attempts = append(f.attempts, a)
	return nil
}

type fakeFileService struct {
	uploads int
	fail    bool
}

func (f *fakeFileService) UploadSelfie(_ context.Context, employeeID string, at time.Time, _ []byte) (string, error) {
	if f.fail {
		return "", errors.New("bucket unavailable")
	}
	f.uploads++
	return "selfies/" + employeeID + "/" + at.Format("2006-01-02") + "/1.jpg", nil
}

func (f *fakeFileService) SelfieURL(_ context.Context, path string) (string, error) {
	return "http://localhost/" + path, nil
}

type fakeTimesheetService struct {
	timesheet.TimesheetService
	reconciled    int
	failReconcile bool
}

func (f *fakeTimesheetService) Reconcile(_ context.Context, _ string, _ time.Time) (*timesheet.DailyTimesheet, error) {
	if f.failReconcile {
		return nil, errors.New("database unavailable")
	}
	f.reconciled++
	return nil, nil
}

// ========================================
// FIXTURE
// ========================================

const (
	testCPFHash = "a665a45920422f9d417e4867efdc4fb8a04a1f3fff1fa07e998e86f7f7a27ae3"
	testPIN     = "123456"
	testSecret  = "kiosk-secret"
)

type fixture struct {
	svc        *KioskServiceImpl
	employees  *fakeEmployeeRepo
	devices    *fakeDeviceRepo
	punches    *fakePunchRepo
	attempts   *fakeAttemptRepo
	files      *fakeFileService
	timesheets *fakeTimesheetService
	clock      time.Time
}

func newFixture(t *testing.T) *fixture {
	t.Helper()

	pinHash, err := pinhash.Hash(testPIN)
	require.NoError(t, err)

	f := &fixture{
		employees: &fakeEmployeeRepo{byCPFHash: map[string]*employee.Employee{
			testCPFHash: {
				ID:      "emp-1",
				Name:    "Maria Souza",
				CPFHash: testCPFHash,
				PINHash: pinHash,
				Role:    employee.RoleStaff,
				Active:  true,
			},
		}},
		devices: &fakeDeviceRepo{devices: []device.Device{{
			ID:         "dev-1",
			Name:       "Lobby kiosk",
			Unit:       "Matriz",
			SecretHash: utils.SHA256Hex(testSecret),
			Active:     true,
		}}},
		punches:    &fakePunchRepo{},
		attempts:   &fakeAttemptRepo{},
		files:      &fakeFileService{},
		timesheets: &fakeTimesheetService{},
		clock:      time.Date(2025, 3, 10, 9, 0, 0, 0, time.UTC),
	}

	f.svc = &KioskServiceImpl{
		cfg: config.KioskConfig{
			CooldownMinutes:   3,
			MaxFailedAttempts: 5,
			LockoutMinutes:    2,
		},
		employees:  f.employees,
		devices:    f.devices,
		punches:    f.punches,
		attempts:   f.attempts,
		files:      f.files,
		timesheets: f.timesheets,
		now:        func() time.Time { return f.clock },
	}
	return f
}

func (f *fixture) validateReq() punch.ValidateRequest {
	return punch.ValidateRequest{
		CPFHash:      testCPFHash,
		PIN:          testPIN,
		DeviceSecret: testSecret,
		Unit:         "Matriz",
	}
}

func (f *fixture) punchReq() punch.PunchRequest {
	return punch.PunchRequest{
		CPFHash:      testCPFHash,
		PIN:          testPIN,
		DeviceSecret: testSecret,
		Unit:         "Matriz",
		SelfieImage:  base64.StdEncoding.EncodeToString([]byte("jpeg-bytes")),
	}
}

// ========================================
// VALIDATE
// ========================================

func TestValidate_Success(t *testing.T) {
	f := newFixture(t)

	resp, err := f.svc.Validate(context.Background(), f.validateReq())

	require.NoError(t, err)
	assert.Equal(t, "emp-1", resp.EmployeeID)
	assert.Equal(t, "Maria Souza", resp.EmployeeName)
	assert.False(t, resp.IsAdmin)

	require.Len(t, f.attempts.attempts, 1)
	assert.True(t, f.attempts.attempts[0].Success)
}

func TestValidate_AdminFlag(t *testing.T) {
	f := newFixture(t)
	f.employees.byCPFHash[testCPFHash].Role = employee.RoleHR

	resp, err := f.svc.Validate(context.Background(), f.validateReq())

	require.NoError(t, err)
	assert.True(t, resp.IsAdmin)
}

func TestValidate_UnknownCPF(t *testing.T) {
	f := newFixture(t)
	req := f.validateReq()
	req.CPFHash = utils.SHA256Hex("00000000000")

	_, err := f.svc.Validate(context.Background(), req)

	assert.ErrorIs(t, err, employee.ErrEmployeeNotFound)
	require.Len(t, f.attempts.attempts, 1)
	assert.False(t, f.attempts.attempts[0].Success)
}

func TestValidate_WrongPIN(t *testing.T) {
	f := newFixture(t)
	req := f.validateReq()
	req.PIN = "654321"

	_, err := f.svc.Validate(context.Background(), req)

	assert.ErrorIs(t, err, auth.ErrInvalidCredentials)
	assert.Equal(t, 1, f.employees.byCPFHash[testCPFHash].FailedAttempts)
}

func TestValidate_LockoutAfterMaxFailures(t *testing.T) {
	f := newFixture(t)
	req := f.validateReq()
	req.PIN = "654321"

	for i := 0; i < 4; i++ {
		_, err := f.svc.Validate(context.Background(), req)
		assert.ErrorIs(t, err, auth.ErrInvalidCredentials)
	}

	// Fifth wrong PIN trips the lock.
	_, err := f.svc.Validate(context.Background(), req)
	assert.ErrorIs(t, err, employee.ErrAccountLocked)

	var locked *employee.AccountLockedError
	require.ErrorAs(t, err, &locked)
	assert.Equal(t, 2, locked.RemainingMinutes)

	// While locked even the correct PIN is rejected, and the counter does
	// not keep climbing.
	_, err = f.svc.Validate(context.Background(), f.validateReq())
	assert.ErrorIs(t, err, employee.ErrAccountLocked)
	assert.Equal(t, 5, f.employees.byCPFHash[testCPFHash].FailedAttempts)
}

func TestValidate_LockExpires(t *testing.T) {
	f := newFixture(t)
	lock := f.clock.Add(-time.Second)
	f.employees.byCPFHash[testCPFHash].FailedAttempts = 5
	f.employees.byCPFHash[testCPFHash].LockedUntil = &lock

	resp, err := f.svc.Validate(context.Background(), f.validateReq())

	require.NoError(t, err)
	assert.Equal(t, "emp-1", resp.EmployeeID)
	assert.Equal(t, 0, f.employees.byCPFHash[testCPFHash].FailedAttempts)
	assert.Nil(t, f.employees.byCPFHash[testCPFHash].LockedUntil)
}

func TestValidate_WrongDeviceSecret(t *testing.T) {
	f := newFixture(t)
	req := f.validateReq()
	req.DeviceSecret = "not-the-secret"

	_, err := f.svc.Validate(context.Background(), req)

	assert.ErrorIs(t, err, device.ErrDeviceUnauthorized)
}

func TestValidate_AutoRegistersFirstDevice(t *testing.T) {
	f := newFixture(t)
	f.devices.devices = nil

	resp, err := f.svc.Validate(context.Background(), f.validateReq())

	require.NoError(t, err)
	assert.Equal(t, "emp-1", resp.EmployeeID)
	require.Len(t, f.devices.devices, 1)
	assert.Equal(t, utils.SHA256Hex(testSecret), f.devices.devices[0].SecretHash)
	assert.Equal(t, "Matriz", f.devices.devices[0].Unit)
	assert.True(t, f.devices.devices[0].Active)
}

// ========================================
// PUNCH
// ========================================

func TestPunch_FirstOfDayIsEntry(t *testing.T) {
	f := newFixture(t)

	resp, err := f.svc.Punch(context.Background(), f.punchReq())

	require.NoError(t, err)
	assert.Equal(t, punch.TypeEntry, resp.PunchType)
	assert.Equal(t, "Maria Souza", resp.EmployeeName)
	assert.Equal(t, "Matriz", resp.Unit)

	require.Len(t, f.punches.punches, 1)
	assert.Equal(t, punch.StatusOK, f.punches.punches[0].Status)
	assert.Equal(t, 1, f.files.uploads)
	assert.Equal(t, 1, f.timesheets.reconciled)
}

func TestPunch_ClassificationSequence(t *testing.T) {
	f := newFixture(t)

	want := []punch.Type{
		punch.TypeEntry,
		punch.TypeBreakStart,
		punch.TypeBreakEnd,
		punch.TypeExit,
		punch.TypeEntry,
		punch.TypeExit,
	}

	for i, wantType := range want {
		resp, err := f.svc.Punch(context.Background(), f.punchReq())
		require.NoError(t, err, "punch %d", i)
		assert.Equal(t, wantType, resp.PunchType, "punch %d", i)

		f.clock = f.clock.Add(10 * time.Minute)
	}
}

func TestPunch_CooldownRejectsRapidRepeat(t *testing.T) {
	f := newFixture(t)

	_, err := f.svc.Punch(context.Background(), f.punchReq())
	require.NoError(t, err)

	f.clock = f.clock.Add(time.Minute)
	_, err = f.svc.Punch(context.Background(), f.punchReq())
	assert.ErrorIs(t, err, punch.ErrTooSoon)

	// No punch row, no selfie, no reconciliation for the rejected attempt.
	assert.Len(t, f.punches.punches, 1)
	assert.Equal(t, 1, f.files.uploads)
	assert.Equal(t, 1, f.timesheets.reconciled)
}

func TestPunch_ConcurrentPunchLosesCooldownRace(t *testing.T) {
	f := newFixture(t)

	// The fast-fail check sees no punches, but another request commits one
	// before this insert. The atomic re-check must reject it.
	f.punches.competing = &punch.Punch{
		EmployeeID: "emp-1",
		PunchedAt:  f.clock.Add(-time.Minute),
	}

	_, err := f.svc.Punch(context.Background(), f.punchReq())

	assert.ErrorIs(t, err, punch.ErrTooSoon)
	assert.Len(t, f.punches.punches, 1) // only the competing punch landed
	assert.Equal(t, 0, f.timesheets.reconciled)
}

func TestPunch_CooldownBoundaryAccepted(t *testing.T) {
	f := newFixture(t)

	_, err := f.svc.Punch(context.Background(), f.punchReq())
	require.NoError(t, err)

	// Exactly three minutes later is allowed.
	f.clock = f.clock.Add(3 * time.Minute)
	resp, err := f.svc.Punch(context.Background(), f.punchReq())
	require.NoError(t, err)
	assert.Equal(t, punch.TypeBreakStart, resp.PunchType)
}

func TestPunch_DataURLSelfieAccepted(t *testing.T) {
	f := newFixture(t)
	req := f.punchReq()
	req.SelfieImage = "data:image/jpeg;base64," + base64.StdEncoding.EncodeToString([]byte("jpeg-bytes"))

	_, err := f.svc.Punch(context.Background(), req)

	require.NoError(t, err)
	assert.Equal(t, 1, f.files.uploads)
}

func TestPunch_StorageFailureAborts(t *testing.T) {
	f := newFixture(t)
	f.files.fail = true

	_, err := f.svc.Punch(context.Background(), f.punchReq())

	assert.ErrorIs(t, err, punch.ErrStorageFailure)
	assert.Empty(t, f.punches.punches)
	assert.Equal(t, 0, f.timesheets.reconciled)
}

func TestPunch_LockedAccountRejected(t *testing.T) {
	f := newFixture(t)
	lock := f.clock.Add(time.Minute)
	f.employees.byCPFHash[testCPFHash].LockedUntil = &lock

	_, err := f.svc.Punch(context.Background(), f.punchReq())

	assert.ErrorIs(t, err, employee.ErrAccountLocked)
	assert.Empty(t, f.punches.punches)
}

func TestPunch_ReconcileFailureDoesNotFailPunch(t *testing.T) {
	f := newFixture(t)
	f.timesheets.failReconcile = true

	resp, err := f.svc.Punch(context.Background(), f.punchReq())

	require.NoError(t, err)
	assert.Equal(t, punch.TypeEntry, resp.PunchType)
	require.Len(t, f.punches.punches, 1)
}
