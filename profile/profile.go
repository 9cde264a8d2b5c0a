package profile

// Profile is one scraped LinkedIn profile record as delivered by the
// BrightData dataset export. Records are immutable once ingested; a record
// without an ID is skipped by the ingestion pipeline.
type Profile struct {
	ID             string       `json:"id"`
	Name           string       `json:"name"`
	Position       string       `json:"position"`
	About          string       `json:"about"`
	URL            string       `json:"url"`
	CurrentCompany *Company     `json:"current_company"`
	Experience     []Experience `json:"experience"`
}

type Company struct {
	Name string `json:"name"`
}

type Experience struct {
	Title   string `json:"title"`
	Company string `json:"company"`
}

// CurrentCompanyName resolves the nested current employer name, empty when
// the record carries no current company.
func (p *Profile) CurrentCompanyName() string {
	if p.CurrentCompany == nil {
		return ""
	}
	return p.CurrentCompany.Name
}

// ExperienceCompanies returns the past employer names in record order,
// skipping entries without a company.
func (p *Profile) ExperienceCompanies() []string {
	var companies []string
	for _, e := range p.Experience {
		if e.Company != "" {
			companies = append(companies, e.Company)
		}
	}
	return companies
}
