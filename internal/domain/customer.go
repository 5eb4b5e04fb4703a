package domain

// Customer is a cleaned customer row ready for loading. SourceKey is the
// upstream identifier (e.g. "C001") used only to build the key map; it is
// never written to the store, which generates its own customer_id.
type Customer struct {
	SourceKey        string `json:"source_key"`
	FirstName        string `json:"first_name"`
	LastName         string `json:"last_name"`
	Email            string `json:"email"`
	Phone            string `json:"phone"`
	City             string `json:"city"`
	RegistrationDate string `json:"registration_date"`
}
