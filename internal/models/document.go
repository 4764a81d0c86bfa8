package models

// DocumentCategory is the folder a document is filed under.
type DocumentCategory string

const (
	CategoryAgreements   DocumentCategory = "agreements"
	CategoryContracts    DocumentCategory = "contracts"
	CategoryReports      DocumentCategory = "reports"
	CategoryCertificates DocumentCategory = "certificates"
)

// DocumentCategories lists categories in display order.
var DocumentCategories = []DocumentCategory{
	CategoryAgreements,
	CategoryContracts,
	CategoryReports,
	CategoryCertificates,
}

// Valid reports whether c is a known category.
func (c DocumentCategory) Valid() bool {
	for _, known := range DocumentCategories {
		if c == known {
			return true
		}
	}
	return false
}

// Label is the display name of the category.
func (c DocumentCategory) Label() string {
	switch c {
	case CategoryAgreements:
		return "Internship Agreements"
	case CategoryContracts:
		return "Contracts"
	case CategoryReports:
		return "Reports & Summaries"
	case CategoryCertificates:
		return "Certificates"
	}
	return string(c)
}

// Document is the metadata of an uploaded file. Contents are not stored.
type Document struct {
	ID         string           `json:"id"`
	InternID   string           `json:"internId"`
	Name       string           `json:"name"`
	Type       string           `json:"type"`
	Size       int64            `json:"size"`
	UploadedAt Date             `json:"uploadedAt"`
	Category   DocumentCategory `json:"category"`
}
