package repository

import (
	"context"

	"github.com/invtrack/kardex-api/internal/domain/entity"
)

// ReportAuditRepository define el puerto de persistencia de la auditoría de
// reportes generados (quién exportó qué tarjeta y en qué formato).
type ReportAuditRepository interface {
	Create(ctx context.Context, audit *entity.ReportAudit) error
}
