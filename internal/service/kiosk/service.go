package kiosk

import (
	"context"
	"encoding/base64"
	"errors"
	"fmt"
	"log/slog"
	"math"
	"strings"
	"time"

	"github.com/pontolabs/ponto-backend-go/internal/config"
	"github.com/pontolabs/ponto-backend-go/internal/domain/auth"
	"github.com/pontolabs/ponto-backend-go/internal/domain/device"
	"github.com/pontolabs/ponto-backend-go/internal/domain/employee"
	"github.com/pontolabs/ponto-backend-go/internal/domain/punch"
	"github.com/pontolabs/ponto-backend-go/internal/domain/timesheet"
	"github.com/pontolabs/ponto-backend-go/internal/pkg/pinhash"
	"github.com/pontolabs/ponto-backend-go/internal/pkg/utils"
	"github.com/pontolabs/ponto-backend-go/internal/service/file"
)

type KioskServiceImpl struct {
	cfg        config.KioskConfig
	employees  employee.EmployeeRepository
	devices    device.DeviceRepository
	punches    punch.PunchRepository
	attempts   auth.LoginAttemptRepository
	files      file.FileService
	timesheets timesheet.TimesheetService
	now        func() time.Time
}

func NewKioskService(
	cfg config.KioskConfig,
	employees employee.EmployeeRepository,
	devices device.DeviceRepository,
	punches punch.PunchRepository,
	attempts auth.LoginAttemptRepository,
	files file.FileService,
	timesheets timesheet.TimesheetService,
) punch.KioskService {
	return &KioskServiceImpl{
		cfg:        cfg,
		employees:  employees,
		devices:    devices,
		punches:    punches,
		attempts:   attempts,
		files:      files,
		timesheets: timesheets,
		now:        time.Now,
	}
}

// resolveDevice matches the secret against registered devices. When no
// device matches but none is registered at all, the device is
// auto-registered (bootstrap/demo convenience).
func (s *KioskServiceImpl) resolveDevice(ctx context.Context, secret string, unit string) (device.Device, error) {
	secretHash := utils.SHA256Hex(secret)

	found, err := s.devices.GetActiveBySecretHash(ctx, secretHash)
	if err != nil {
		return device.Device{}, fmt.Errorf("failed to look up device: %w", err)
	}
	if found != nil {
		return *found, nil
	}

	hasAny, err := s.devices.HasActiveDevice(ctx)
	if err != nil {
		return device.Device{}, fmt.Errorf("failed to check registered devices: %w", err)
	}
	if hasAny {
		return device.Device{}, device.ErrDeviceUnauthorized
	}

	if unit == "" {
		unit = "Demo"
	}
	created, err := s.devices.Create(ctx, device.Device{
		Name:       "Auto-registered device",
		Unit:       unit,
		SecretHash: secretHash,
		Active:     true,
	})
	if err != nil {
		return device.Device{}, fmt.Errorf("failed to auto-register device: %w", err)
	}

	slog.Info("Kiosk device auto-registered", "device_id", created.ID, "unit", created.Unit)
	return created, nil
}

func (s *KioskServiceImpl) recordAttempt(ctx context.Context, cpfHash string, deviceID *string, success bool) {
	err := s.attempts.Create(ctx, auth.LoginAttempt{
		CPFHash:     cpfHash,
		DeviceID:    deviceID,
		Success:     success,
		AttemptedAt: s.now(),
	})
	if err != nil {
		// Audit rows must not break the kiosk flow.
		slog.Error("Failed to record login attempt", "error", err)
	}
}

// checkLock returns an AccountLockedError while the employee's lock window
// is still open.
func (s *KioskServiceImpl) checkLock(emp *employee.Employee) error {
	if emp.LockedUntil == nil {
		return nil
	}
	now := s.now()
	if emp.LockedUntil.After(now) {
		remaining := int(math.Ceil(emp.LockedUntil.Sub(now).Minutes()))
		return &employee.AccountLockedError{RemainingMinutes: remaining}
	}
	return nil
}

// Validate implements punch.KioskService.
func (s *KioskServiceImpl) Validate(ctx context.Context, req punch.ValidateRequest) (punch.ValidateResponse, error) {
	if err := req.Validate(); err != nil {
		return punch.ValidateResponse{}, err
	}

	dev, err := s.resolveDevice(ctx, req.DeviceSecret, req.Unit)
	if err != nil {
		return punch.ValidateResponse{}, err
	}

	emp, err := s.employees.GetActiveByCPFHash(ctx, req.CPFHash)
	if err != nil {
		return punch.ValidateResponse{}, fmt.Errorf("failed to look up employee: %w", err)
	}
	if emp == nil {
		s.recordAttempt(ctx, req.CPFHash, &dev.ID, false)
		return punch.ValidateResponse{}, employee.ErrEmployeeNotFound
	}

	if err := s.checkLock(emp); err != nil {
		return punch.ValidateResponse{}, err
	}

	if !pinhash.Verify(req.PIN, emp.PINHash) {
		attempts := emp.FailedAttempts + 1
		var lockedUntil *time.Time
		if attempts >= s.cfg.MaxFailedAttempts {
			lock := s.now().Add(time.Duration(s.cfg.LockoutMinutes) * time.Minute)
			lockedUntil = &lock
		}
		if err := s.employees.SetFailedAttempts(ctx, emp.ID, attempts, lockedUntil); err != nil {
			slog.Error("Failed to record failed PIN attempt", "employee_id", emp.ID, "error", err)
		}
		s.recordAttempt(ctx, req.CPFHash, &dev.ID, false)

		if lockedUntil != nil {
			return punch.ValidateResponse{}, &employee.AccountLockedError{RemainingMinutes: s.cfg.LockoutMinutes}
		}
		return punch.ValidateResponse{}, auth.ErrInvalidCredentials
	}

	if err := s.employees.ResetFailedAttempts(ctx, emp.ID); err != nil {
		slog.Error("Failed to reset PIN attempt counter", "employee_id", emp.ID, "error", err)
	}
	s.recordAttempt(ctx, req.CPFHash, &dev.ID, true)

	return punch.ValidateResponse{
		EmployeeID:   emp.ID,
		EmployeeName: emp.Name,
		PhotoURL:     emp.PhotoURL,
		IsAdmin:      emp.Role.HasAdminAccess(),
	}, nil
}

// Punch implements punch.KioskService. Identity is assumed to have passed
// Validate in a prior kiosk step; the PIN is not re-verified here, but the
// lock window still applies.
func (s *KioskServiceImpl) Punch(ctx context.Context, req punch.PunchRequest) (punch.PunchResponse, error) {
	if err := req.Validate(); err != nil {
		return punch.PunchResponse{}, err
	}

	dev, err := s.resolveDevice(ctx, req.DeviceSecret, req.Unit)
	if err != nil {
		return punch.PunchResponse{}, err
	}

	emp, err := s.employees.GetActiveByCPFHash(ctx, req.CPFHash)
	if err != nil {
		return punch.PunchResponse{}, fmt.Errorf("failed to look up employee: %w", err)
	}
	if emp == nil {
		s.recordAttempt(ctx, req.CPFHash, &dev.ID, false)
		return punch.PunchResponse{}, employee.ErrEmployeeNotFound
	}

	if err := s.checkLock(emp); err != nil {
		return punch.PunchResponse{}, err
	}

	now := s.now()

	// Cooldown fast-fail before the selfie upload; a punch exactly at the
	// boundary is allowed. The authoritative check runs atomically with
	// the insert below.
	cooldownStart := now.Add(-time.Duration(s.cfg.CooldownMinutes) * time.Minute)
	tooSoon, err := s.punches.HasPunchAfter(ctx, emp.ID, cooldownStart)
	if err != nil {
		return punch.PunchResponse{}, fmt.Errorf("failed to check punch cooldown: %w", err)
	}
	if tooSoon {
		return punch.PunchResponse{}, punch.ErrTooSoon
	}

	dayStart := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	todays, err := s.punches.ListByEmployeeAndRange(ctx, emp.ID, dayStart, dayStart.Add(24*time.Hour))
	if err != nil {
		return punch.PunchResponse{}, fmt.Errorf("failed to list today's punches: %w", err)
	}
	punchType := punch.TypeForCount(len(todays))

	image, err := decodeSelfie(req.SelfieImage)
	if err != nil {
		return punch.PunchResponse{}, punch.ErrStorageFailure
	}

	// Selfie upload happens before the punch insert: a storage failure
	// aborts the whole request and leaves no partial state.
	selfieRef, err := s.files.UploadSelfie(ctx, emp.ID, now, image)
	if err != nil {
		slog.Error("Selfie upload failed", "employee_id", emp.ID, "error", err)
		return punch.PunchResponse{}, punch.ErrStorageFailure
	}

	created, err := s.punches.CreateWithCooldown(ctx, punch.Punch{
		EmployeeID: emp.ID,
		DeviceID:   dev.ID,
		Unit:       dev.Unit,
		Type:       punchType,
		PunchedAt:  now,
		Status:     punch.StatusOK,
		SelfieURL:  selfieRef,
	}, cooldownStart)
	if err != nil {
		if errors.Is(err, punch.ErrTooSoon) {
			return punch.PunchResponse{}, punch.ErrTooSoon
		}
		return punch.PunchResponse{}, fmt.Errorf("failed to record punch: %w", err)
	}

	// Reconciliation failure never fails the punch: availability over
	// consistency. The cron backfill catches up later.
	if _, err := s.timesheets.Reconcile(ctx, emp.ID, now); err != nil {
		slog.Error("Reconciliation failed after punch",
			"employee_id", emp.ID,
			"punch_id", created.ID,
			"error", err,
		)
	}

	slog.Info("Punch registered",
		"employee_id", emp.ID,
		"punch_type", punchType,
		"unit", dev.Unit,
	)

	return punch.PunchResponse{
		PunchType:    punchType,
		PunchedAt:    now.Format(time.RFC3339),
		EmployeeName: emp.Name,
		Unit:         dev.Unit,
	}, nil
}

// decodeSelfie accepts raw base64 or a data URL as sent by the kiosk
// camera widget.
func decodeSelfie(s string) ([]byte, error) {
	if idx := strings.Index(s, ";base64,"); idx >= 0 {
		s = s[idx+len(";base64,"):]
	}
	return base64.StdEncoding.DecodeString(s)
}
