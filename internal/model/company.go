package model

// Company is the singleton record describing the issuing business.
// Writes replace it wholesale; there is never more than one row.
type Company struct {
	NameAr                 string  `json:"name_ar"`
	NameEn                 string  `json:"name_en"`
	DescriptionAr          string  `json:"description_ar"`
	DescriptionEn          string  `json:"description_en"`
	TaxNumber              string  `json:"tax_number"`
	Street                 string  `json:"street"`
	Neighborhood           string  `json:"neighborhood"`
	Country                string  `json:"country"`
	City                   string  `json:"city"`
	CommercialRegistration string  `json:"commercial_registration"`
	Building               string  `json:"building"`
	PostalCode             string  `json:"postal_code"`
	AdditionalNumber       string  `json:"additional_number"`
	Email                  string  `json:"email"`
	Phone1                 string  `json:"phone1"`
	Phone2                 string  `json:"phone2"`
	Phone3                 string  `json:"phone3"`
	LogoPath               *string `json:"logo_path"`
}

// DefaultCompany returns the built-in company record persisted on first read.
func DefaultCompany() Company {
	return Company{
		NameAr:                 "شركة مثلث الأنظمة المميزة للمقاولات",
		NameEn:                 "MUTHALLATH AL-ANZIMAH AL-MUMAYYIZAH CONTRACTING CO.",
		DescriptionAr:          "تصميم وتصنيع وتوريد وتركيب مظلات الشد الإنشائي والخيام والسواتر",
		DescriptionEn:          "Design, Manufacture, Supply & Installation of Structure Tension Awnings, Tents & Canopies",
		TaxNumber:              "311104439400003",
		Street:                 "شارع حائل",
		Neighborhood:           "حي البغدادية الغربية",
		Country:                "السعودية",
		City:                   "جدة",
		CommercialRegistration: "4030255240",
		Building:               "8376",
		PostalCode:             "22231",
		AdditionalNumber:       "3842",
		Email:                  "info@tsscoksa.com",
		Phone1:                 "+966 50 061 2006",
		Phone2:                 "055 538 9792",
		Phone3:                 "+966 50 336 5527",
	}
}
