package domain

// SetupMandateData is the canonical request for establishing a recurring /
// off-session mandate without moving money (spec flow "setup_mandate").
type SetupMandateData struct {
	Currency            Currency
	PaymentMethodData   PaymentMethodData
	ReturnURL           string
	RequestRefID        string
	CustomerAcceptance  *CustomerAcceptance
}
