package usecase

import (
	"context"
	"testing"

	"hawc-booking/internal/data/entity"
	"hawc-booking/internal/dto/request"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func approvedAccount() *entity.Account {
	return &entity.Account{
		ID:              "user-1",
		Email:           "pro@example.com",
		Name:            "Pro User",
		Class:           entity.AccountClassProfessional,
		InvoiceApproval: entity.InvoiceApprovalApproved,
	}
}

func invoiceRequest(requestID string) *request.CreateInvoiceBookingRequest {
	meta := carBookingMetadata()
	meta.RequestID = requestID
	return &request.CreateInvoiceBookingRequest{
		Amount:   10,
		Metadata: meta,
	}
}

func newInvoiceFixture(bookings *fakeBookingRepo, accounts *fakeAccountRepo) (InvoiceService, *fakeNotifier, *fakeBookingRepo) {
	if bookings == nil {
		bookings = newFakeBookingRepo()
	}
	repos := testRepos(bookings, nil, accounts)
	notifier := &fakeNotifier{}
	availability := NewAvailabilityService(repos, nopLogger())
	svc := NewInvoiceService(repos, availability, notifier, testConfig(), nopLogger())
	return svc, notifier, bookings
}

func TestInvoiceBookingRequiresUserAndRequestID(t *testing.T) {
	svc, _, bookings := newInvoiceFixture(nil, newFakeAccountRepo(approvedAccount()))

	req := invoiceRequest("req-1")
	req.Metadata.UserID = ""
	err := svc.CreateInvoiceBooking(context.Background(), req)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "userId is required")

	req = invoiceRequest("")
	err = svc.CreateInvoiceBooking(context.Background(), req)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "requestId is required")

	assert.Equal(t, 0, bookings.count())
}

func TestInvoiceBookingIdempotent(t *testing.T) {
	svc, notifier, bookings := newInvoiceFixture(nil, newFakeAccountRepo(approvedAccount()))
	ctx := context.Background()

	for i := 0; i < 4; i++ {
		require.NoError(t, svc.CreateInvoiceBooking(ctx, invoiceRequest("req-1")))
	}

	require.Equal(t, 1, bookings.count())
	assert.Equal(t, 1, notifier.sendCount())

	booking := bookings.get(entity.InvoiceBookingPrefix + "req-1")
	require.NotNil(t, booking)
	assert.Equal(t, "10.00", booking.Total)
	assert.Equal(t, entity.PaymentMethodInvoice, booking.PaymentMethod)
	assert.Nil(t, booking.PaymentID)
	assert.True(t, booking.Emailed)
}

func TestInvoiceBookingDistinctRequests(t *testing.T) {
	svc, _, bookings := newInvoiceFixture(nil, newFakeAccountRepo(approvedAccount()))
	ctx := context.Background()

	require.NoError(t, svc.CreateInvoiceBooking(ctx, invoiceRequest("req-1")))

	// Same slot again under a new token conflicts instead of duplicating
	err := svc.CreateInvoiceBooking(ctx, invoiceRequest("req-2"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "already booked")
	assert.Equal(t, 1, bookings.count())
}

func TestInvoiceBookingIneligibleAccounts(t *testing.T) {
	cases := []struct {
		name    string
		account *entity.Account
	}{
		{"standard", &entity.Account{ID: "user-1", Class: entity.AccountClassStandard}},
		{"pending professional", &entity.Account{ID: "user-1", Class: entity.AccountClassProfessional, InvoiceApproval: entity.InvoiceApprovalPending}},
		{"rejected professional", &entity.Account{ID: "user-1", Class: entity.AccountClassProfessional, InvoiceApproval: entity.InvoiceApprovalRejected}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			svc, notifier, bookings := newInvoiceFixture(nil, newFakeAccountRepo(tc.account))

			err := svc.CreateInvoiceBooking(context.Background(), invoiceRequest("req-1"))
			require.Error(t, err)
			assert.Contains(t, err.Error(), "not approved")
			assert.Equal(t, 0, bookings.count())
			assert.Equal(t, 0, notifier.sendCount())
		})
	}
}

func TestInvoiceBookingAdminAlwaysEligible(t *testing.T) {
	admin := &entity.Account{ID: "user-1", Email: "admin@example.com", Class: entity.AccountClassAdmin}
	svc, _, bookings := newInvoiceFixture(nil, newFakeAccountRepo(admin))

	require.NoError(t, svc.CreateInvoiceBooking(context.Background(), invoiceRequest("req-adm")))
	assert.Equal(t, 1, bookings.count())
}

func TestInvoiceBookingUnknownAccount(t *testing.T) {
	svc, _, _ := newInvoiceFixture(nil, newFakeAccountRepo())

	err := svc.CreateInvoiceBooking(context.Background(), invoiceRequest("req-1"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not found")
}

func TestInvoiceBookingEmailFallsBackToAccount(t *testing.T) {
	// Without an operations inbox configured the booking owner is notified;
	// the account record covers a missing metadata email.
	account := approvedAccount()
	repos := testRepos(nil, nil, newFakeAccountRepo(account))
	notifier := &fakeNotifier{}
	config := testConfig()
	config.Email.To = ""
	availability := NewAvailabilityService(repos, nopLogger())
	svc := NewInvoiceService(repos, availability, notifier, config, nopLogger())

	req := invoiceRequest("req-1")
	req.Metadata.UserEmail = ""
	require.NoError(t, svc.CreateInvoiceBooking(context.Background(), req))

	require.Equal(t, 1, notifier.sendCount())
	assert.Equal(t, account.Email, notifier.sent[0].To)
}

func TestSetInvoiceApproval(t *testing.T) {
	pro := &entity.Account{ID: "acc-1", Class: entity.AccountClassProfessional, InvoiceApproval: entity.InvoiceApprovalPending}
	standard := &entity.Account{ID: "acc-2", Class: entity.AccountClassStandard}
	accounts := newFakeAccountRepo(pro, standard)
	svc, _, _ := newInvoiceFixture(nil, accounts)
	ctx := context.Background()

	require.NoError(t, svc.SetInvoiceApproval(ctx, "acc-1", "approved"))
	assert.Equal(t, entity.InvoiceApprovalApproved, pro.InvoiceApproval)

	err := svc.SetInvoiceApproval(ctx, "acc-1", "maybe")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid approval state")

	err = svc.SetInvoiceApproval(ctx, "acc-2", "approved")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not a professional account")

	err = svc.SetInvoiceApproval(ctx, "ghost", "approved")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not found")
}

func TestListInvoiceRequests(t *testing.T) {
	accounts := newFakeAccountRepo(
		&entity.Account{ID: "acc-1", Name: "Pending Pro", Class: entity.AccountClassProfessional, InvoiceApproval: entity.InvoiceApprovalPending},
		&entity.Account{ID: "acc-2", Class: entity.AccountClassProfessional, InvoiceApproval: entity.InvoiceApprovalApproved},
		&entity.Account{ID: "acc-3", Class: entity.AccountClassStandard},
	)
	svc, _, _ := newInvoiceFixture(nil, accounts)

	requests, err := svc.ListInvoiceRequests(context.Background())
	require.NoError(t, err)

	require.Len(t, requests, 1)
	assert.Equal(t, "acc-1", requests[0].AccountID)
	assert.Equal(t, "Pending Pro", requests[0].Name)
}
