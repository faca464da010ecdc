package entity

import "time"

type AccountClass string

const (
	AccountClassStandard     AccountClass = "standard"
	AccountClassProfessional AccountClass = "professional"
	AccountClassAdmin        AccountClass = "admin"
)

type InvoiceApproval string

const (
	InvoiceApprovalPending  InvoiceApproval = "pending"
	InvoiceApprovalApproved InvoiceApproval = "approved"
	InvoiceApprovalRejected InvoiceApproval = "rejected"
)

// Account is owned by the external identity collaborator; this core reads
// it to gate the invoice-booking path, and admins flip the approval state.
type Account struct {
	ID              string          `db:"id"`
	Email           string          `db:"email"`
	Name            string          `db:"name"`
	Class           AccountClass    `db:"class"`
	InvoiceApproval InvoiceApproval `db:"invoice_approval"`
	CreatedAt       time.Time       `db:"created_at"`
}

// InvoiceEligible reports whether the account may book on invoice:
// professional accounts need approval, admins always may.
func (a *Account) InvoiceEligible() bool {
	if a.Class == AccountClassAdmin {
		return true
	}
	return a.Class == AccountClassProfessional && a.InvoiceApproval == InvoiceApprovalApproved
}
