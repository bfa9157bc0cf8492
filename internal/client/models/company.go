package models

// Company is a listing entry. The nested collections are filled only by the
// endpoints that return them.
type Company struct {
	ID            string           `json:"id"`
	Name          string           `json:"name"`
	Industry      string           `json:"industry"`
	Location      string           `json:"location"`
	Website       string           `json:"website,omitempty"`
	LogoURL       string           `json:"logoUrl,omitempty"`
	AverageRating float64          `json:"averageRating"`
	ReviewCount   int              `json:"reviewCount"`
	SalaryCount   int              `json:"salaryCount"`
	Overview      *CompanyOverview `json:"overview,omitempty"`
	Taxes         []Tax            `json:"taxes,omitempty"`
	Stocks        []Stock          `json:"stocks,omitempty"`
	Reviews       []Review         `json:"reviews,omitempty"`
	Salaries      []Salary         `json:"salaries,omitempty"`
}

type CompanyOverview struct {
	CompanyID   string `json:"companyId"`
	Description string `json:"description"`
	Founded     int    `json:"founded,omitempty"`
	Headquarter string `json:"headquarters,omitempty"`
	Employees   string `json:"employees,omitempty"`
	CEO         string `json:"ceo,omitempty"`
}

type Tax struct {
	Country string  `json:"country"`
	Kind    string  `json:"type"`
	Rate    float64 `json:"rate"`
}

type Stock struct {
	Symbol   string  `json:"symbol"`
	Exchange string  `json:"exchange"`
	Price    float64 `json:"price"`
	Currency string  `json:"currency"`
}
