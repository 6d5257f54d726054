package model

// StudentTally breaks the active student population down the way the
// dashboard charts it.
type StudentTally struct {
	Total    int64            `json:"count"`
	ByStatus map[string]int64 `json:"by_enrollment_status_count"`
	ByYear   map[string]int64 `json:"by_year_level_count"`
	ByCourse map[string]int64 `json:"by_course_count"`
}

// UserTally is the account overview shown on the dashboard.
type UserTally struct {
	Administrators int64        `json:"administrators_count"`
	Students       StudentTally `json:"students"`
}

// PaymentTally summarizes one calendar year of payment records.
type PaymentTally struct {
	Total             int64            `json:"count"`
	Full              int64            `json:"full_count"`
	Installment       int64            `json:"installment_count"`
	ByMode            map[string]int64 `json:"by_mode_of_payment_count"`
	Pending           int64            `json:"pending_count"`
	Verified          int64            `json:"verified_count"`
	AmountFull        float64          `json:"full_amount"`
	AmountInstallment float64          `json:"installment_amount"`
}
