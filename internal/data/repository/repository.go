package repository

import (
	"hawc-booking/pkg/database"

	"go.uber.org/zap"
)

type Repository struct {
	Booking  BookingRepository
	Resource ResourceRepository
	Account  AccountRepository
}

func NewRepository(db database.PgxIface, log *zap.Logger) *Repository {
	return &Repository{
		Booking:  NewBookingRepository(db, log),
		Resource: NewResourceRepository(db, log),
		Account:  NewAccountRepository(db, log),
	}
}
