package invoicerepo

import (
	"context"
	"errors"

	"shop/internal/core/domain/model/invoice"
	"shop/internal/pkg/errs"

	"gorm.io/gorm"
)

// TemplateDTO represents the database structure for invoice templates.
// Templates are configuration data: seeded by operators, read at
// generation time, never written by the application core.
type TemplateDTO struct {
	ID        uint   `gorm:"primaryKey;autoIncrement"`
	Name      string `gorm:"type:varchar(128);not null"`
	DocType   string `gorm:"type:varchar(16);not null;index"`
	Terms     string
	IsDefault bool `gorm:"not null"`
	IsActive  bool `gorm:"not null"`
}

// TableName specifies the database table name for invoice templates.
func (TemplateDTO) TableName() string {
	return "invoice_templates"
}

// GormInvoiceTemplateRepository implements InvoiceTemplateRepository
// using GORM.
type GormInvoiceTemplateRepository struct {
	db *gorm.DB
}

// NewGormInvoiceTemplateRepository creates a new GORM template repository.
func NewGormInvoiceTemplateRepository(db *gorm.DB) *GormInvoiceTemplateRepository {
	return &GormInvoiceTemplateRepository{db: db}
}

// GetActiveDefault retrieves the active default template for a document
// type. Returns an ObjectNotFoundError when none is configured; callers
// treat that as a signal to fall back to system defaults.
func (r *GormInvoiceTemplateRepository) GetActiveDefault(
	ctx context.Context,
	docType invoice.DocumentType,
) (*invoice.Template, error) {
	var dto TemplateDTO
	err := r.db.WithContext(ctx).
		First(&dto, "doc_type = ? AND is_default = ? AND is_active = ?", docType.String(), true, true).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("invoice template", docType.String())
		}
		return nil, err
	}

	parsed, err := invoice.ParseDocumentType(dto.DocType)
	if err != nil {
		return nil, err
	}

	template := invoice.RestoreTemplate(dto.Name, parsed, dto.Terms, dto.IsDefault, dto.IsActive)
	return &template, nil
}
