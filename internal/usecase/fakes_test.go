package usecase

import (
	"context"
	"fmt"
	"sync"
	"time"

	"hawc-booking/internal/data/entity"
	"hawc-booking/internal/data/repository"
	"hawc-booking/pkg/mailer"
	"hawc-booking/pkg/mollie"
	"hawc-booking/pkg/utils"

	"go.uber.org/zap"
)

// In-memory fakes over the repository interfaces, so services are tested
// without a database.

type fakeBookingRepo struct {
	mu       sync.Mutex
	bookings map[string]*entity.Booking
}

func newFakeBookingRepo() *fakeBookingRepo {
	return &fakeBookingRepo{bookings: make(map[string]*entity.Booking)}
}

func (f *fakeBookingRepo) CreateIfAbsent(ctx context.Context, booking *entity.Booking) (bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if _, ok := f.bookings[booking.ID]; ok {
		return false, nil
	}
	stored := *booking
	f.bookings[booking.ID] = &stored
	return true, nil
}

func (f *fakeBookingRepo) FindByID(ctx context.Context, id string) (*entity.Booking, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	booking, ok := f.bookings[id]
	if !ok {
		return nil, nil
	}
	copy := *booking
	return &copy, nil
}

func (f *fakeBookingRepo) FindByUserID(ctx context.Context, userID string, limit int) ([]*entity.Booking, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var result []*entity.Booking
	for _, booking := range f.bookings {
		if booking.UserID == userID && len(result) < limit {
			copy := *booking
			result = append(result, &copy)
		}
	}
	return result, nil
}

func (f *fakeBookingRepo) FindByResourceBefore(ctx context.Context, resourceID string, before time.Time) ([]*entity.Booking, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var result []*entity.Booking
	for _, booking := range f.bookings {
		if booking.ResourceID == resourceID && booking.Start.Before(before) {
			copy := *booking
			result = append(result, &copy)
		}
	}
	return result, nil
}

func (f *fakeBookingRepo) MarkNotified(ctx context.Context, id string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	booking, ok := f.bookings[id]
	if !ok {
		return fmt.Errorf("booking %s not found", id)
	}
	booking.Emailed = true
	return nil
}

func (f *fakeBookingRepo) Delete(ctx context.Context, id string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if _, ok := f.bookings[id]; !ok {
		return fmt.Errorf("booking %s not found", id)
	}
	delete(f.bookings, id)
	return nil
}

func (f *fakeBookingRepo) count() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.bookings)
}

func (f *fakeBookingRepo) get(id string) *entity.Booking {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.bookings[id]
}

type fakeResourceRepo struct {
	resources map[string]*entity.Resource
}

func newFakeResourceRepo(resources ...*entity.Resource) *fakeResourceRepo {
	f := &fakeResourceRepo{resources: make(map[string]*entity.Resource)}
	for _, r := range resources {
		f.resources[r.ID] = r
	}
	return f
}

func (f *fakeResourceRepo) FindByID(ctx context.Context, id string) (*entity.Resource, error) {
	return f.resources[id], nil
}

func (f *fakeResourceRepo) FindAll(ctx context.Context, typeTag string) ([]*entity.Resource, error) {
	var result []*entity.Resource
	for _, r := range f.resources {
		if typeTag == "" || string(r.Type) == typeTag {
			result = append(result, r)
		}
	}
	return result, nil
}

type fakeAccountRepo struct {
	accounts map[string]*entity.Account
}

func newFakeAccountRepo(accounts ...*entity.Account) *fakeAccountRepo {
	f := &fakeAccountRepo{accounts: make(map[string]*entity.Account)}
	for _, a := range accounts {
		f.accounts[a.ID] = a
	}
	return f
}

func (f *fakeAccountRepo) FindByID(ctx context.Context, id string) (*entity.Account, error) {
	return f.accounts[id], nil
}

func (f *fakeAccountRepo) FindPendingInvoiceRequests(ctx context.Context) ([]*entity.Account, error) {
	var result []*entity.Account
	for _, a := range f.accounts {
		if a.Class == entity.AccountClassProfessional && a.InvoiceApproval == entity.InvoiceApprovalPending {
			result = append(result, a)
		}
	}
	return result, nil
}

func (f *fakeAccountRepo) UpdateInvoiceApproval(ctx context.Context, id string, state entity.InvoiceApproval) error {
	account, ok := f.accounts[id]
	if !ok {
		return fmt.Errorf("account %s not found", id)
	}
	account.InvoiceApproval = state
	return nil
}

// fakeProcessor stands in for the Mollie client.
type fakeProcessor struct {
	mu          sync.Mutex
	payments    map[string]*mollie.Payment
	createCalls int
	lastCreate  *mollie.CreatePaymentRequest
}

func newFakeProcessor() *fakeProcessor {
	return &fakeProcessor{payments: make(map[string]*mollie.Payment)}
}

func (f *fakeProcessor) CreatePayment(ctx context.Context, req *mollie.CreatePaymentRequest) (*mollie.Payment, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.createCalls++
	f.lastCreate = req
	payment := &mollie.Payment{
		ID:          fmt.Sprintf("tr_test%d", f.createCalls),
		Status:      mollie.StatusOpen,
		Description: req.Description,
		Amount:      req.Amount,
		Metadata:    req.Metadata,
		Links:       mollie.Links{Checkout: &mollie.Link{Href: "https://checkout.example/" + fmt.Sprint(f.createCalls)}},
	}
	f.payments[payment.ID] = payment
	return payment, nil
}

func (f *fakeProcessor) GetPayment(ctx context.Context, id string) (*mollie.Payment, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	payment, ok := f.payments[id]
	if !ok {
		return nil, &mollie.APIError{StatusCode: 404, Title: "Not Found", Detail: "No payment exists with token " + id}
	}
	return payment, nil
}

func (f *fakeProcessor) setStatus(id, status string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.payments[id].Status = status
}

func (f *fakeProcessor) put(payment *mollie.Payment) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.payments[payment.ID] = payment
}

// fakeNotifier counts sends and can be told to fail.
type fakeNotifier struct {
	mu   sync.Mutex
	sent []mailer.Message
	fail bool
}

func (f *fakeNotifier) Send(ctx context.Context, msg mailer.Message) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.fail {
		return fmt.Errorf("smtp relay down")
	}
	f.sent = append(f.sent, msg)
	return nil
}

func (f *fakeNotifier) sendCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.sent)
}

// test wiring helpers

func testConfig() *utils.Config {
	return &utils.Config{
		Mollie: utils.MollieConfig{
			Currency:    "EUR",
			RedirectURL: "https://payments.example/payment-complete",
		},
		Email: utils.EmailConfig{
			To:   "ops@example.com",
			From: "onboarding@resend.dev",
		},
		Booking: utils.BookingConfig{CancellationWindowHours: 24},
	}
}

func testRepos(booking *fakeBookingRepo, resource *fakeResourceRepo, account *fakeAccountRepo) *repository.Repository {
	if booking == nil {
		booking = newFakeBookingRepo()
	}
	if resource == nil {
		resource = newFakeResourceRepo()
	}
	if account == nil {
		account = newFakeAccountRepo()
	}
	return &repository.Repository{
		Booking:  booking,
		Resource: resource,
		Account:  account,
	}
}

func nopLogger() *zap.Logger {
	return zap.NewNop()
}
