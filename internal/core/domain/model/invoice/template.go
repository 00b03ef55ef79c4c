package invoice

// Template is branding/legal configuration copied into invoices at
// generation time. The active default template for the document type is
// selected; absence is legal and falls back to system defaults.
type Template struct {
	name      string
	docType   DocumentType
	terms     string
	isDefault bool
	isActive  bool
}

// DefaultTerms is the system fallback used when no active default
// template is configured for a document type.
const DefaultTerms = "Payment is due by the date stated on this invoice."

// RestoreTemplate reconstructs a template from configuration storage.
func RestoreTemplate(name string, docType DocumentType, terms string, isDefault, isActive bool) Template {
	return Template{
		name:      name,
		docType:   docType,
		terms:     terms,
		isDefault: isDefault,
		isActive:  isActive,
	}
}

// Name returns the template's display name.
func (t Template) Name() string { return t.name }

// Type returns the document type the template applies to.
func (t Template) Type() DocumentType { return t.docType }

// Terms returns the legal text copied into generated invoices.
func (t Template) Terms() string { return t.terms }

// IsDefault reports whether the template is the type's default.
func (t Template) IsDefault() bool { return t.isDefault }

// IsActive reports whether the template may be selected.
func (t Template) IsActive() bool { return t.isActive }
