package domain

// Service is a bookable spa service (massage, treatment, package).
// DurationMinutes is an explicit attribute of the definition; booking
// duration is the sum over the requested services.
type Service struct {
	Code            string
	Name            string
	Description     *string
	Price           float64
	DurationMinutes int
	Active          bool
}
