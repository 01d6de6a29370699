package postgres

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/invtrack/kardex-api/internal/domain/entity"
	"github.com/invtrack/kardex-api/internal/domain/repository"
)

var _ repository.ReportAuditRepository = (*ReportAuditRepo)(nil)

// ReportAuditRepo persiste la auditoría de reportes generados.
type ReportAuditRepo struct {
	q Querier
}

// NewReportAuditRepository construye el adaptador. Pasar pool o tx (Querier).
func NewReportAuditRepository(q Querier) *ReportAuditRepo {
	return &ReportAuditRepo{q: q}
}

// Create persiste un registro de auditoría de reporte.
func (r *ReportAuditRepo) Create(ctx context.Context, audit *entity.ReportAudit) error {
	if audit.ID == "" {
		audit.ID = uuid.New().String()
	}
	query := `
		INSERT INTO report_audits (id, nac_code, format, row_count, generated_by, generated_at)
		VALUES ($1, $2, $3, $4, $5, $6)`
	generatedBy := (*string)(nil)
	if audit.GeneratedBy != "" {
		generatedBy = &audit.GeneratedBy
	}
	_, err := r.q.Exec(ctx, query,
		audit.ID, audit.NacCode, audit.Format, audit.RowCount, generatedBy, audit.GeneratedAt,
	)
	if err != nil {
		return fmt.Errorf("create report audit: %w", err)
	}
	return nil
}
