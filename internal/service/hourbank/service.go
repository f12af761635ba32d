package hourbank

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/pontolabs/ponto-backend-go/internal/domain/hourbank"
)

type HourBankServiceImpl struct {
	ledgerRepo  hourbank.LedgerRepository
	balanceRepo hourbank.BalanceRepository
}

func NewHourBankService(
	ledgerRepo hourbank.LedgerRepository,
	balanceRepo hourbank.BalanceRepository,
) hourbank.HourBankService {
	return &HourBankServiceImpl{
		ledgerRepo:  ledgerRepo,
		balanceRepo: balanceRepo,
	}
}

// PostAutomatic implements hourbank.HourBankService.
func (s *HourBankServiceImpl) PostAutomatic(ctx context.Context, employeeID string, refDate time.Time, minutes int) error {
	if _, err := s.ledgerRepo.UpsertAutomatic(ctx, employeeID, refDate, minutes); err != nil {
		return fmt.Errorf("failed to upsert automatic ledger entry: %w", err)
	}

	if _, err := s.RecomputeBalance(ctx, employeeID); err != nil {
		return err
	}

	return nil
}

// RecomputeBalance implements hourbank.HourBankService. The aggregate is
// always rebuilt from scratch, never adjusted incrementally, to avoid
// drift.
func (s *HourBankServiceImpl) RecomputeBalance(ctx context.Context, employeeID string) (hourbank.Balance, error) {
	total, err := s.ledgerRepo.SumApprovedMinutes(ctx, employeeID)
	if err != nil {
		return hourbank.Balance{}, fmt.Errorf("failed to sum approved ledger minutes: %w", err)
	}

	balance, err := s.balanceRepo.Upsert(ctx, employeeID, total)
	if err != nil {
		return hourbank.Balance{}, fmt.Errorf("failed to upsert hour bank balance: %w", err)
	}

	return balance, nil
}

// CreateManualEntry implements hourbank.HourBankService.
func (s *HourBankServiceImpl) CreateManualEntry(ctx context.Context, req hourbank.CreateManualEntryRequest, createdBy string) (hourbank.LedgerEntryResponse, error) {
	if err := req.Validate(); err != nil {
		return hourbank.LedgerEntryResponse{}, err
	}

	refDate, err := time.Parse("2006-01-02", req.RefDate)
	if err != nil {
		return hourbank.LedgerEntryResponse{}, fmt.Errorf("invalid ref_date: %w", err)
	}

	entry := hourbank.LedgerEntry{
		EmployeeID:     req.EmployeeID,
		RefDate:        refDate,
		Minutes:        req.Minutes,
		Source:         hourbank.Source(req.Source),
		ApprovalStatus: hourbank.ApprovalPending,
		Description:    req.Description,
		CreatedBy:      &createdBy,
	}

	created, err := s.ledgerRepo.Create(ctx, entry)
	if err != nil {
		return hourbank.LedgerEntryResponse{}, fmt.Errorf("failed to create manual ledger entry: %w", err)
	}

	return mapEntryToResponse(created), nil
}

// Approve implements hourbank.HourBankService.
func (s *HourBankServiceImpl) Approve(ctx context.Context, entryID string, approvedBy string) (hourbank.LedgerEntryResponse, error) {
	return s.setApproval(ctx, entryID, approvedBy, hourbank.ApprovalApproved)
}

// Reject implements hourbank.HourBankService.
func (s *HourBankServiceImpl) Reject(ctx context.Context, entryID string, approvedBy string) (hourbank.LedgerEntryResponse, error) {
	return s.setApproval(ctx, entryID, approvedBy, hourbank.ApprovalRejected)
}

func (s *HourBankServiceImpl) setApproval(ctx context.Context, entryID string, approvedBy string, status hourbank.ApprovalStatus) (hourbank.LedgerEntryResponse, error) {
	entry, err := s.ledgerRepo.GetByID(ctx, entryID)
	if err != nil {
		if errors.Is(err, hourbank.ErrEntryNotFound) {
			return hourbank.LedgerEntryResponse{}, hourbank.ErrEntryNotFound
		}
		return hourbank.LedgerEntryResponse{}, fmt.Errorf("failed to get ledger entry: %w", err)
	}

	if entry.Source == hourbank.SourceAutomatic {
		return hourbank.LedgerEntryResponse{}, hourbank.ErrAutomaticEntryFrozen
	}

	if entry.ApprovalStatus != hourbank.ApprovalPending {
		return hourbank.LedgerEntryResponse{}, hourbank.ErrEntryNotPending
	}

	now := time.Now()
	if err := s.ledgerRepo.UpdateApproval(ctx, entryID, status, approvedBy, now); err != nil {
		return hourbank.LedgerEntryResponse{}, fmt.Errorf("failed to update ledger approval: %w", err)
	}

	if _, err := s.RecomputeBalance(ctx, entry.EmployeeID); err != nil {
		return hourbank.LedgerEntryResponse{}, err
	}

	entry.ApprovalStatus = status
	entry.ApprovedBy = &approvedBy
	entry.ApprovedAt = &now

	return mapEntryToResponse(entry), nil
}

// ListLedger implements hourbank.HourBankService. Pass an empty employeeID
// for the full admin listing.
func (s *HourBankServiceImpl) ListLedger(ctx context.Context, employeeID string) ([]hourbank.LedgerEntryResponse, error) {
	var (
		entries []hourbank.LedgerEntry
		err     error
	)
	if employeeID == "" {
		entries, err = s.ledgerRepo.List(ctx)
	} else {
		entries, err = s.ledgerRepo.ListByEmployee(ctx, employeeID)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to list ledger entries: %w", err)
	}

	responses := make([]hourbank.LedgerEntryResponse, 0, len(entries))
	for _, entry := range entries {
		responses = append(responses, mapEntryToResponse(entry))
	}
	return responses, nil
}

// GetBalance implements hourbank.HourBankService.
func (s *HourBankServiceImpl) GetBalance(ctx context.Context, employeeID string) (hourbank.BalanceResponse, error) {
	balance, err := s.balanceRepo.GetByEmployee(ctx, employeeID)
	if err != nil {
		return hourbank.BalanceResponse{}, fmt.Errorf("failed to get hour bank balance: %w", err)
	}

	if balance == nil {
		return hourbank.BalanceResponse{EmployeeID: employeeID, BalanceMinutes: 0}, nil
	}

	return hourbank.BalanceResponse{
		EmployeeID:     balance.EmployeeID,
		EmployeeName:   balance.EmployeeName,
		BalanceMinutes: balance.BalanceMinutes,
	}, nil
}

// ListBalances implements hourbank.HourBankService.
func (s *HourBankServiceImpl) ListBalances(ctx context.Context) ([]hourbank.BalanceResponse, error) {
	balances, err := s.balanceRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list hour bank balances: %w", err)
	}

	responses := make([]hourbank.BalanceResponse, 0, len(balances))
	for _, b := range balances {
		responses = append(responses, hourbank.BalanceResponse{
			EmployeeID:     b.EmployeeID,
			EmployeeName:   b.EmployeeName,
			BalanceMinutes: b.BalanceMinutes,
		})
	}
	return responses, nil
}

func mapEntryToResponse(e hourbank.LedgerEntry) hourbank.LedgerEntryResponse {
	var approvedAt *string
	if e.ApprovedAt != nil {
		formatted := e.ApprovedAt.Format("2006-01-02 15:04:05")
		approvedAt = &formatted
	}

	return hourbank.LedgerEntryResponse{
		ID:             e.ID,
		EmployeeID:     e.EmployeeID,
		EmployeeName:   e.EmployeeName,
		RefDate:        e.RefDate.Format("2006-01-02"),
		Minutes:        e.Minutes,
		Source:         string(e.Source),
		ApprovalStatus: string(e.ApprovalStatus),
		Description:    e.Description,
		CreatedBy:      e.CreatedBy,
		ApprovedBy:     e.ApprovedBy,
		ApprovedAt:     approvedAt,
		CreatedAt:      e.CreatedAt.Format("2006-01-02 15:04:05"),
	}
}
