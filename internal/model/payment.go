package model

import "time"

// ModeOfPayment enumerates the accepted payment channels.
type ModeOfPayment string

const (
	ModeBankTransferBDO          ModeOfPayment = "bank_transfer_bdo"
	ModeBankTransferSecurityBank ModeOfPayment = "bank_transfer_security_bank"
	ModeCash                     ModeOfPayment = "cash"
	ModeGcash                    ModeOfPayment = "gcash"
)

// Valid reports whether m is a known payment mode.
func (m ModeOfPayment) Valid() bool {
	switch m {
	case ModeBankTransferBDO, ModeBankTransferSecurityBank, ModeCash, ModeGcash:
		return true
	}
	return false
}

// StudentPayment is the parent header of a payment aggregate. It owns 1..N
// StudentFile children of type "payment" and is soft-deleted as a unit with
// them.
type StudentPayment struct {
	ID              int64         `json:"-"`
	AdministratorID int64         `json:"-"`
	StudentID       int64         `json:"-"`
	IsFull          bool          `json:"is_full"`
	IsInstallment   bool          `json:"is_installment"`
	ModeOfPayment   ModeOfPayment `json:"mode_of_payment"`
	DatePaid        time.Time     `json:"date_paid"`
	AmountPaid      float64       `json:"amount_paid"`
	Balance         *float64      `json:"balance,omitempty"`
	Course          string        `json:"course"`
	Year            string        `json:"year"`
	Term            string        `json:"term"`
	Status          RecordStatus  `json:"status"`
	Slug            string        `json:"slug"`
	CreatedAt       time.Time     `json:"created_at"`
	UpdatedAt       time.Time     `json:"updated_at"`
	DeletedAt       *time.Time    `json:"-"`
}
