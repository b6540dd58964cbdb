package service

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/clinicdesk/clinicdesk/internal/domain/clinic"
	"github.com/clinicdesk/clinicdesk/pkg/metrics"
)

type AuditRepository interface {
	Create(ctx context.Context, entry *clinic.AuditLog) error
}

// AuditEntry describes a mutating operation for the audit trail.
type AuditEntry struct {
	Action       clinic.AuditAction
	ResourceType string
	ResourceKey  string
	RequestID    string
	IPAddress    string
}

type AuditService struct {
	repo    AuditRepository
	log     *zap.Logger
	col     *metrics.Collector
	entries chan *clinic.AuditLog
	done    chan struct{}
}

const auditBufferSize = 10_000

func NewAuditService(repo AuditRepository, log *zap.Logger, col *metrics.Collector) *AuditService {
	svc := &AuditService{
		repo:    repo,
		log:     log,
		col:     col,
		entries: make(chan *clinic.AuditLog, auditBufferSize),
		done:    make(chan struct{}),
	}
	go svc.worker()
	return svc
}

// LogAsync enqueues an audit entry for async persistence.
// If the buffer is full, the entry is dropped and a warning is emitted.
func (s *AuditService) LogAsync(ctx context.Context, entry AuditEntry) {
	al := &clinic.AuditLog{
		Action:       entry.Action,
		ResourceType: entry.ResourceType,
		ResourceKey:  entry.ResourceKey,
		RequestID:    entry.RequestID,
		IPAddress:    entry.IPAddress,
	}

	select {
	case s.entries <- al:
	default:
		s.col.AuditBufferDropped.Inc()
		s.log.Warn("audit log buffer full, dropping entry",
			zap.String("action", string(entry.Action)),
			zap.String("resource", entry.ResourceType),
		)
	}
}

func (s *AuditService) Shutdown() {
	close(s.entries)
	select {
	case <-s.done:
	case <-time.After(10 * time.Second):
		s.log.Warn("audit service shutdown timed out; some entries may be lost")
	}
}

func (s *AuditService) worker() {
	defer close(s.done)
	for entry := range s.entries {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		if err := s.repo.Create(ctx, entry); err != nil {
			s.log.Error("failed to persist audit log", zap.Error(err))
		} else {
			s.col.AuditEntriesTotal.Inc()
		}
		cancel()
	}
}
