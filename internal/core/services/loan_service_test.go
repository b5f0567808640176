package services

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"lablend/internal/adapters/persistence/models"
	"lablend/internal/core/domain"

	"gorm.io/gorm"
)

type stubLoanRepo struct {
	loans  map[string]*models.Loan
	nextID int
}

func newStubLoanRepo() *stubLoanRepo {
	return &stubLoanRepo{loans: make(map[string]*models.Loan), nextID: 1}
}

func (r *stubLoanRepo) Create(_ context.Context, loan *models.Loan) error {
	if loan.LoanID == "" {
		loan.LoanID = fmt.Sprintf("loan-%d", r.nextID)
		r.nextID++
	}
	clone := *loan
	r.loans[loan.LoanID] = &clone
	return nil
}

func (r *stubLoanRepo) GetByID(_ context.Context, id string) (*models.Loan, error) {
	loan, ok := r.loans[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	clone := *loan
	return &clone, nil
}

func (r *stubLoanRepo) Update(_ context.Context, loan *models.Loan) error {
	if _, ok := r.loans[loan.LoanID]; !ok {
		return gorm.ErrRecordNotFound
	}
	clone := *loan
	r.loans[loan.LoanID] = &clone
	return nil
}

func (r *stubLoanRepo) Delete(_ context.Context, id string) error {
	if _, ok := r.loans[id]; !ok {
		return gorm.ErrRecordNotFound
	}
	delete(r.loans, id)
	return nil
}

func (r *stubLoanRepo) List(_ context.Context) ([]*models.Loan, error) {
	var out []*models.Loan
	for _, loan := range r.loans {
		clone := *loan
		out = append(out, &clone)
	}
	return out, nil
}

func (r *stubLoanRepo) MarkOverdue(_ context.Context, now time.Time) (int64, error) {
	var n int64
	for _, loan := range r.loans {
		if loan.LoanStatus == domain.LoanActive && loan.ReturnDate.Before(now) {
			loan.LoanStatus = domain.LoanOverdue
			n++
		}
	}
	return n, nil
}

type loanFixture struct {
	svc       *LoanService
	loans     *stubLoanRepo
	users     *stubUserRepo
	materials *stubMaterialRepo
	user      *models.User
	material  *models.Material
}

func newLoanFixture(t *testing.T) *loanFixture {
	t.Helper()
	loans := newStubLoanRepo()
	users := newStubUserRepo()
	materials := newStubMaterialRepo()

	user := &models.User{
		FirstName: "Ana",
		LastName:  "García",
		UserType:  "Student",
		Username:  "agarcia",
		Email:     "ana@example.com",
		Status:    domain.UserActive,
	}
	if err := users.Create(context.Background(), user); err != nil {
		t.Fatalf("seeding user failed: %v", err)
	}

	material := &models.Material{
		MaterialType: "Microscope",
		Brand:        "Zeiss",
		Model:        "Primo Star",
		Status:       domain.MaterialAvailable,
	}
	if err := materials.Create(context.Background(), material); err != nil {
		t.Fatalf("seeding material failed: %v", err)
	}

	return &loanFixture{
		svc:       NewLoanService(loans, users, materials),
		loans:     loans,
		users:     users,
		materials: materials,
		user:      user,
		material:  material,
	}
}

func (f *loanFixture) validInput() *LoanInput {
	return &LoanInput{
		UserID:     f.user.ID,
		MaterialID: f.material.MaterialID,
		ReturnDate: time.Now().Add(48 * time.Hour),
		LoanStatus: domain.LoanActive,
	}
}

func TestLoanService_Create_StampsLoanDate(t *testing.T) {
	f := newLoanFixture(t)

	input := f.validInput()
	// The client-sent loan date must be ignored.
	input.LoanDate = time.Date(2000, 1, 1, 0, 0, 0, 0, time.UTC)

	before := time.Now()
	loan, err := f.svc.Create(context.Background(), input)
	if err != nil {
		t.Fatalf("Create returned error: %v", err)
	}
	after := time.Now()

	if loan.LoanDate.Before(before) || loan.LoanDate.After(after) {
		t.Errorf("loan date %v not stamped at creation time", loan.LoanDate)
	}
	if loan.LoanStatus != domain.LoanActive {
		t.Errorf("got status %q, want %q", loan.LoanStatus, domain.LoanActive)
	}
}

func TestLoanService_Create_MarksMaterialBorrowed(t *testing.T) {
	f := newLoanFixture(t)

	if _, err := f.svc.Create(context.Background(), f.validInput()); err != nil {
		t.Fatalf("Create returned error: %v", err)
	}

	material, err := f.materials.GetByID(context.Background(), f.material.MaterialID)
	if err != nil {
		t.Fatalf("material lookup failed: %v", err)
	}
	if material.Status != domain.MaterialBorrowed {
		t.Errorf("got material status %q, want %q", material.Status, domain.MaterialBorrowed)
	}
}

func TestLoanService_Create_UnknownUser(t *testing.T) {
	f := newLoanFixture(t)

	input := f.validInput()
	input.UserID = "missing"
	if _, err := f.svc.Create(context.Background(), input); !errors.Is(err, domain.ErrUserNotFound) {
		t.Fatalf("expected ErrUserNotFound, got %v", err)
	}
	if len(f.loans.loans) != 0 {
		t.Errorf("loan must not be persisted for an unknown user")
	}
}

func TestLoanService_Create_UnknownMaterial(t *testing.T) {
	f := newLoanFixture(t)

	input := f.validInput()
	input.MaterialID = "missing"
	if _, err := f.svc.Create(context.Background(), input); !errors.Is(err, domain.ErrMaterialNotFound) {
		t.Fatalf("expected ErrMaterialNotFound, got %v", err)
	}
}

func TestLoanService_Create_ReturnDateTooSoon(t *testing.T) {
	f := newLoanFixture(t)

	input := f.validInput()
	input.ReturnDate = time.Now().Add(12 * time.Hour)
	_, err := f.svc.Create(context.Background(), input)
	var ve *ValidationError
	if !errors.As(err, &ve) {
		t.Fatalf("expected ValidationError, got %v", err)
	}
	want := "La fecha de devolución no puede ser menor a mañana"
	if ve.Fields["return_date"] != want {
		t.Errorf("got %q, want %q", ve.Fields["return_date"], want)
	}
}

func TestLoanService_Update_ReturnFreesMaterial(t *testing.T) {
	f := newLoanFixture(t)

	created, err := f.svc.Create(context.Background(), f.validInput())
	if err != nil {
		t.Fatalf("Create returned error: %v", err)
	}

	input := f.validInput()
	input.LoanStatus = domain.LoanReturned
	updated, err := f.svc.Update(context.Background(), created.LoanID, input)
	if err != nil {
		t.Fatalf("Update returned error: %v", err)
	}
	if updated.LoanStatus != domain.LoanReturned {
		t.Errorf("got status %q, want %q", updated.LoanStatus, domain.LoanReturned)
	}

	material, err := f.materials.GetByID(context.Background(), f.material.MaterialID)
	if err != nil {
		t.Fatalf("material lookup failed: %v", err)
	}
	if material.Status != domain.MaterialAvailable {
		t.Errorf("got material status %q, want %q", material.Status, domain.MaterialAvailable)
	}
}

func TestLoanService_Update_UnknownUser(t *testing.T) {
	f := newLoanFixture(t)

	created, err := f.svc.Create(context.Background(), f.validInput())
	if err != nil {
		t.Fatalf("Create returned error: %v", err)
	}

	input := f.validInput()
	input.UserID = "missing"
	if _, err := f.svc.Update(context.Background(), created.LoanID, input); !errors.Is(err, domain.ErrUserNotFound) {
		t.Fatalf("expected ErrUserNotFound, got %v", err)
	}
}

func TestLoanService_Update_UnknownMaterial(t *testing.T) {
	f := newLoanFixture(t)

	created, err := f.svc.Create(context.Background(), f.validInput())
	if err != nil {
		t.Fatalf("Create returned error: %v", err)
	}

	input := f.validInput()
	input.MaterialID = "missing"
	if _, err := f.svc.Update(context.Background(), created.LoanID, input); !errors.Is(err, domain.ErrMaterialNotFound) {
		t.Fatalf("expected ErrMaterialNotFound, got %v", err)
	}
}

func TestLoanService_Update_MaterialSwap(t *testing.T) {
	f := newLoanFixture(t)

	created, err := f.svc.Create(context.Background(), f.validInput())
	if err != nil {
		t.Fatalf("Create returned error: %v", err)
	}

	replacement := &models.Material{
		MaterialType: "Laptop",
		Brand:        "Dell",
		Model:        "XPS",
		Status:       domain.MaterialAvailable,
	}
	if err := f.materials.Create(context.Background(), replacement); err != nil {
		t.Fatalf("seeding material failed: %v", err)
	}

	input := f.validInput()
	input.MaterialID = replacement.MaterialID
	if _, err := f.svc.Update(context.Background(), created.LoanID, input); err != nil {
		t.Fatalf("Update returned error: %v", err)
	}

	// The old material is freed, the replacement picks up the loan.
	old, err := f.materials.GetByID(context.Background(), f.material.MaterialID)
	if err != nil {
		t.Fatalf("material lookup failed: %v", err)
	}
	if old.Status != domain.MaterialAvailable {
		t.Errorf("got old material status %q, want %q", old.Status, domain.MaterialAvailable)
	}
	swapped, err := f.materials.GetByID(context.Background(), replacement.MaterialID)
	if err != nil {
		t.Fatalf("material lookup failed: %v", err)
	}
	if swapped.Status != domain.MaterialBorrowed {
		t.Errorf("got new material status %q, want %q", swapped.Status, domain.MaterialBorrowed)
	}
}

func TestLoanService_Update_NotFound(t *testing.T) {
	f := newLoanFixture(t)

	if _, err := f.svc.Update(context.Background(), "missing", f.validInput()); !errors.Is(err, domain.ErrLoanNotFound) {
		t.Fatalf("expected ErrLoanNotFound, got %v", err)
	}
}

func TestLoanService_Delete(t *testing.T) {
	f := newLoanFixture(t)

	created, err := f.svc.Create(context.Background(), f.validInput())
	if err != nil {
		t.Fatalf("Create returned error: %v", err)
	}

	if err := f.svc.Delete(context.Background(), created.LoanID); err != nil {
		t.Fatalf("Delete returned error: %v", err)
	}
	if err := f.svc.Delete(context.Background(), created.LoanID); !errors.Is(err, domain.ErrLoanNotFound) {
		t.Fatalf("expected ErrLoanNotFound on second delete, got %v", err)
	}
}

func TestLoanService_MarkOverdue(t *testing.T) {
	f := newLoanFixture(t)

	// Seed directly: an active loan already past its return date.
	overdue := &models.Loan{
		UserID:     f.user.ID,
		MaterialID: f.material.MaterialID,
		LoanDate:   time.Now().Add(-72 * time.Hour),
		ReturnDate: time.Now().Add(-24 * time.Hour),
		LoanStatus: domain.LoanActive,
	}
	if err := f.loans.Create(context.Background(), overdue); err != nil {
		t.Fatalf("seeding loan failed: %v", err)
	}

	current, err := f.svc.Create(context.Background(), f.validInput())
	if err != nil {
		t.Fatalf("Create returned error: %v", err)
	}

	n, err := f.svc.MarkOverdue(context.Background())
	if err != nil {
		t.Fatalf("MarkOverdue returned error: %v", err)
	}
	if n != 1 {
		t.Errorf("got %d transitions, want 1", n)
	}

	swept, err := f.loans.GetByID(context.Background(), overdue.LoanID)
	if err != nil {
		t.Fatalf("loan lookup failed: %v", err)
	}
	if swept.LoanStatus != domain.LoanOverdue {
		t.Errorf("got status %q, want %q", swept.LoanStatus, domain.LoanOverdue)
	}

	untouched, err := f.loans.GetByID(context.Background(), current.LoanID)
	if err != nil {
		t.Fatalf("loan lookup failed: %v", err)
	}
	if untouched.LoanStatus != domain.LoanActive {
		t.Errorf("current loan swept unexpectedly: %q", untouched.LoanStatus)
	}
}
