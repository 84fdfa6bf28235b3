package entities

// CompanyProfileID keys the only company_info row.
const CompanyProfileID = "default"

// CompanyInfo is the single shop profile printed on document headers.
type CompanyInfo struct {
	ID      string
	Name    string
	Address string
	Phone   string
	Email   string
	TaxID   string
}
