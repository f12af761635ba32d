package hourbank

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pontolabs/ponto-backend-go/internal/domain/hourbank"
)

type fakeLedgerRepo struct {
	entries []hourbank.LedgerEntry
	nextID  int
}

func (f *fakeLedgerRepo) UpsertAutomatic(_ context.Context, employeeID string, refDate time.Time, minutes int) (hourbank.LedgerEntry, error) {
	for i, e := range f.entries {
		if e.EmployeeID == employeeID && e.RefDate.Equal(refDate) && e.Source == hourbank.SourceAutomatic {
			f.entries[i].Minutes = minutes
			return f.entries[i], nil
		}
	}
	entry := hourbank.LedgerEntry{
		ID:             f.newID(),
		EmployeeID:     employeeID,
		RefDate:        refDate,
		Minutes:        minutes,
		Source:         hourbank.SourceAutomatic,
		ApprovalStatus: hourbank.ApprovalApproved,
	}
	f.entries = append(f.entries, entry)
	return entry, nil
}

func (f *fakeLedgerRepo) Create(_ context.Context, e hourbank.LedgerEntry) (hourbank.LedgerEntry, error) {
	e.ID = f.newID()
	f.entries = append(f.entries, e)
	return e, nil
}

func (f *fakeLedgerRepo) GetByID(_ context.Context, id string) (hourbank.LedgerEntry, error) {
	for _, e := range f.entries {
		if e.ID == id {
			return e, nil
		}
	}
	return hourbank.LedgerEntry{}, hourbank.ErrEntryNotFound
}

func (f *fakeLedgerRepo) UpdateApproval(_ context.Context, id string, status hourbank.ApprovalStatus, approvedBy string, approvedAt time.Time) error {
	for i, e := range f.entries {
		if e.ID == id {
			f.entries[i].ApprovalStatus = status
			f.entries[i].ApprovedBy = &approvedBy
			f.entries[i].ApprovedAt = &approvedAt
			return nil
		}
	}
	return hourbank.ErrEntryNotFound
}

func (f *fakeLedgerRepo) ListByEmployee(_ context.Context, employeeID string) ([]hourbank.LedgerEntry, error) {
	var out []hourbank.LedgerEntry
	for _, e := range f.entries {
		if e.EmployeeID == employeeID {
			out = append(out, e)
		}
	}
	return out, nil
}

func (f *fakeLedgerRepo) List(_ context.Context) ([]hourbank.LedgerEntry, error) {
	return append([]hourbank.LedgerEntry(nil), f.entries...), nil
}

func (f *fakeLedgerRepo) SumApprovedMinutes(_ context.Context, employeeID string) (int, error) {
	total := 0
	for _, e := range f.entries {
		if e.EmployeeID == employeeID && e.ApprovalStatus == hourbank.ApprovalApproved {
			total += e.Minutes
		}
	}
	return total, nil
}

func (f *fakeLedgerRepo) newID() string {
	f.nextID++
	return "entry-" + string(rune('a'+f.nextID-1))
}

type fakeBalanceRepo struct {
	balances map[string]int
}

func (f *fakeBalanceRepo) Upsert(_ context.Context, employeeID string, balanceMinutes int) (hourbank.Balance, error) {
	if f.balances == nil {
		f.balances = map[string]int{}
	}
	f.balances[employeeID] = balanceMinutes
	return hourbank.Balance{EmployeeID: employeeID, BalanceMinutes: balanceMinutes}, nil
}

func (f *fakeBalanceRepo) GetByEmployee(_ context.Context, employeeID string) (*hourbank.Balance, error) {
	minutes, ok := f.balances[employeeID]
	if !ok {
		return nil, nil
	}
	return &hourbank.Balance{EmployeeID: employeeID, BalanceMinutes: minutes}, nil
}

func (f *fakeBalanceRepo) List(_ context.Context) ([]hourbank.Balance, error) {
	var out []hourbank.Balance
	for id, minutes := range f.balances {
		out = append(out, hourbank.Balance{EmployeeID: id, BalanceMinutes: minutes})
	}
	return out, nil
}

func newService() (hourbank.HourBankService, *fakeLedgerRepo, *fakeBalanceRepo) {
	ledger := &fakeLedgerRepo{}
	balances := &fakeBalanceRepo{}
	return NewHourBankService(ledger, balances), ledger, balances
}

func date(day int) time.Time {
	return time.Date(2025, 3, day, 0, 0, 0, 0, time.UTC)
}

func TestPostAutomatic_SingleEntryPerDay(t *testing.T) {
	svc, ledger, balances := newService()
	ctx := context.Background()

	require.NoError(t, svc.PostAutomatic(ctx, "emp-1", date(10), 60))
	require.NoError(t, svc.PostAutomatic(ctx, "emp-1", date(10), -30))

	// Re-reconciling the same day replaces the entry instead of adding one.
	require.Len(t, ledger.entries, 1)
	assert.Equal(t, -30, ledger.entries[0].Minutes)
	assert.Equal(t, hourbank.ApprovalApproved, ledger.entries[0].ApprovalStatus)
	assert.Equal(t, -30, balances.balances["emp-1"])
}

func TestPostAutomatic_BalanceAggregatesDays(t *testing.T) {
	svc, _, balances := newService()
	ctx := context.Background()

	require.NoError(t, svc.PostAutomatic(ctx, "emp-1", date(10), 60))
	require.NoError(t, svc.PostAutomatic(ctx, "emp-1", date(11), -90))
	require.NoError(t, svc.PostAutomatic(ctx, "emp-1", date(12), 15))

	assert.Equal(t, -15, balances.balances["emp-1"])
}

func TestCreateManualEntry_StartsPending(t *testing.T) {
	svc, ledger, balances := newService()
	ctx := context.Background()

	require.NoError(t, svc.PostAutomatic(ctx, "emp-1", date(10), 100))

	resp, err := svc.CreateManualEntry(ctx, hourbank.CreateManualEntryRequest{
		EmployeeID: "emp-1",
		RefDate:    "2025-03-11",
		Minutes:    480,
		Source:     string(hourbank.SourceMedicalCertificate),
	}, "admin-1")
	require.NoError(t, err)
	assert.Equal(t, "pending", resp.ApprovalStatus)

	// A pending entry does not count toward the balance.
	_, err = svc.RecomputeBalance(ctx, "emp-1")
	require.NoError(t, err)
	assert.Equal(t, 100, balances.balances["emp-1"])
	require.Len(t, ledger.entries, 2)
}

func TestApprove_CountsTowardBalance(t *testing.T) {
	svc, _, balances := newService()
	ctx := context.Background()

	require.NoError(t, svc.PostAutomatic(ctx, "emp-1", date(10), 100))
	created, err := svc.CreateManualEntry(ctx, hourbank.CreateManualEntryRequest{
		EmployeeID: "emp-1",
		RefDate:    "2025-03-11",
		Minutes:    480,
		Source:     string(hourbank.SourceExcusedAbsence),
	}, "admin-1")
	require.NoError(t, err)

	approved, err := svc.Approve(ctx, created.ID, "admin-2")
	require.NoError(t, err)
	assert.Equal(t, "approved", approved.ApprovalStatus)
	require.NotNil(t, approved.ApprovedBy)
	assert.Equal(t, "admin-2", *approved.ApprovedBy)
	assert.Equal(t, 580, balances.balances["emp-1"])
}

func TestReject_ExcludedFromBalance(t *testing.T) {
	svc, _, balances := newService()
	ctx := context.Background()

	require.NoError(t, svc.PostAutomatic(ctx, "emp-1", date(10), 100))
	created, err := svc.CreateManualEntry(ctx, hourbank.CreateManualEntryRequest{
		EmployeeID: "emp-1",
		RefDate:    "2025-03-11",
		Minutes:    -60,
		Source:     string(hourbank.SourceManualAdjustment),
	}, "admin-1")
	require.NoError(t, err)

	rejected, err := svc.Reject(ctx, created.ID, "admin-2")
	require.NoError(t, err)
	assert.Equal(t, "rejected", rejected.ApprovalStatus)
	assert.Equal(t, 100, balances.balances["emp-1"])
}

func TestApprove_AlreadyProcessedRejected(t *testing.T) {
	svc, _, _ := newService()
	ctx := context.Background()

	created, err := svc.CreateManualEntry(ctx, hourbank.CreateManualEntryRequest{
		EmployeeID: "emp-1",
		RefDate:    "2025-03-11",
		Minutes:    30,
		Source:     string(hourbank.SourceCompensation),
	}, "admin-1")
	require.NoError(t, err)

	_, err = svc.Approve(ctx, created.ID, "admin-2")
	require.NoError(t, err)

	_, err = svc.Approve(ctx, created.ID, "admin-3")
	assert.ErrorIs(t, err, hourbank.ErrEntryNotPending)
}

func TestApprove_AutomaticEntryFrozen(t *testing.T) {
	svc, ledger, _ := newService()
	ctx := context.Background()

	require.NoError(t, svc.PostAutomatic(ctx, "emp-1", date(10), 60))

	_, err := svc.Approve(ctx, ledger.entries[0].ID, "admin-1")
	assert.ErrorIs(t, err, hourbank.ErrAutomaticEntryFrozen)
}

func TestGetBalance_ZeroWhenNeverComputed(t *testing.T) {
	svc, _, _ := newService()

	resp, err := svc.GetBalance(context.Background(), "emp-unknown")
	require.NoError(t, err)
	assert.Equal(t, 0, resp.BalanceMinutes)
	assert.Equal(t, "emp-unknown", resp.EmployeeID)
}

func TestCreateManualEntry_RejectsAutomaticSource(t *testing.T) {
	svc, _, _ := newService()

	_, err := svc.CreateManualEntry(context.Background(), hourbank.CreateManualEntryRequest{
		EmployeeID: "emp-1",
		RefDate:    "2025-03-11",
		Minutes:    60,
		Source:     string(hourbank.SourceAutomatic),
	}, "admin-1")
	assert.Error(t, err)
}
