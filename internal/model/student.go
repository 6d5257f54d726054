package model

import "time"

// Student is a student account managed by administrators. The slug is the
// opaque external identifier used in URLs and audit logs; it never changes.
type Student struct {
	ID               int64            `json:"-"`
	FirstName        string           `json:"first_name"`
	MiddleName       string           `json:"middle_name,omitempty"`
	LastName         string           `json:"last_name"`
	StudentNumber    string           `json:"student_number"`
	Email            string           `json:"email"`
	PasswordHash     string           `json:"-"`
	Course           string           `json:"course"`
	Year             string           `json:"year"`
	Term             string           `json:"term"`
	EnrollmentStatus EnrollmentStatus `json:"enrollment_status"`
	Slug             string           `json:"slug"`
	CreatedAt        time.Time        `json:"created_at"`
	UpdatedAt        time.Time        `json:"updated_at"`
	DeletedAt        *time.Time       `json:"-"`
}

// Enrolled reports whether the student may use self-service endpoints.
func (s *Student) Enrolled() bool {
	return s.EnrollmentStatus == StatusEnrolled
}
