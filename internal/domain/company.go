package domain

// CompanyInfo is the singleton record with the business contact details.
type CompanyInfo struct {
	Name         string `json:"name"`
	Location     string `json:"location"`
	Phone        string `json:"phone"`
	WhatsApp     string `json:"whatsapp"`
	Email        string `json:"email"`
	Address      string `json:"address"`
	WorkingHours string `json:"workingHours"`
}

// DefaultCompanyInfo is served when no record has been stored yet.
func DefaultCompanyInfo() CompanyInfo {
	return CompanyInfo{
		Name:         "TM Higienização",
		Location:     "Bertioga - São Paulo",
		Phone:        "(13) 99704-3410",
		WhatsApp:     "5513997043410",
		Email:        "contato@tmhigienizacao.com.br",
		Address:      "Bertioga, São Paulo",
		WorkingHours: "Segunda a Sábado: 8h às 18h",
	}
}
