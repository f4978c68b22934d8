package models

// Settings is the single company-profile document in the settings collection
type Settings struct {
	CompanyName string `json:"companyName" bson:"companyName"`
	Address     string `json:"address" bson:"address"`
	Phone       string `json:"phone" bson:"phone"`
	Email       string `json:"email" bson:"email"`
	Website     string `json:"website" bson:"website"`
	GSTNumber   string `json:"gstNumber" bson:"gstNumber"`
	LogoURL     string `json:"logoUrl" bson:"logoUrl"`
}

// SettingsRequest is the request body for updating the company profile
type SettingsRequest struct {
	CompanyName string `json:"companyName" validate:"required"`
	Address     string `json:"address"`
	Phone       string `json:"phone"`
	Email       string `json:"email" validate:"omitempty,email"`
	Website     string `json:"website"`
	GSTNumber   string `json:"gstNumber"`
}

// EmailReportRequest asks for an exported report to be mailed out
type EmailReportRequest struct {
	To     string `json:"to" validate:"required,email"`
	Report string `json:"report" validate:"required,oneof=sales expenses projects attendance interns"`
	Format string `json:"format" validate:"omitempty,oneof=csv xlsx"`
}
