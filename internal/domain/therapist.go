package domain

// Therapist is a service provider. Reference data for the scheduler: created
// and deactivated by HR administration, read-only everywhere else.
type Therapist struct {
	ID             int64
	EmployeeCode   string
	DisplayName    string
	Active         bool
	HomeLocationID *int64
}
