package service

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/clinicdesk/clinicdesk/internal/domain/clinic"
	"github.com/clinicdesk/clinicdesk/internal/domain/room"
	"github.com/clinicdesk/clinicdesk/pkg/metrics"
)

type RoomService struct {
	repo     room.Repository
	auditSvc *AuditService
	col      *metrics.Collector
	log      *zap.Logger
}

func NewRoomService(repo room.Repository, auditSvc *AuditService, col *metrics.Collector, log *zap.Logger) *RoomService {
	return &RoomService{repo: repo, auditSvc: auditSvc, col: col, log: log}
}

func (s *RoomService) Create(ctx context.Context, cmd *room.CreateRoomCommand, meta RequestMeta) (*room.Room, error) {
	if cmd.RoomName == "" {
		return nil, &ValidationError{Fields: []string{"roomName is required"}}
	}

	r := &room.Room{RoomName: cmd.RoomName}
	if err := s.repo.Save(ctx, r); err != nil {
		return nil, err
	}

	s.col.RoomsCreatedTotal.Inc()
	s.auditSvc.LogAsync(ctx, AuditEntry{
		Action:       clinic.ActionCreate,
		ResourceType: "room",
		ResourceKey:  r.RoomName,
		RequestID:    meta.RequestID,
		IPAddress:    meta.IPAddress,
	})

	return r, nil
}

func (s *RoomService) List(ctx context.Context) ([]*room.Room, error) {
	return s.repo.FindAll(ctx)
}

func (s *RoomService) Get(ctx context.Context, name string) (*room.Room, error) {
	return s.repo.FindByName(ctx, name)
}

func (s *RoomService) Delete(ctx context.Context, name string, meta RequestMeta) error {
	if err := s.repo.DeleteByName(ctx, name); err != nil {
		return err
	}

	s.auditSvc.LogAsync(ctx, AuditEntry{
		Action:       clinic.ActionDelete,
		ResourceType: "room",
		ResourceKey:  name,
		RequestID:    meta.RequestID,
		IPAddress:    meta.IPAddress,
	})
	return nil
}

func (s *RoomService) DeleteAll(ctx context.Context, meta RequestMeta) error {
	if err := s.repo.DeleteAll(ctx); err != nil {
		return fmt.Errorf("deleting rooms: %w", err)
	}

	s.auditSvc.LogAsync(ctx, AuditEntry{
		Action:       clinic.ActionDeleteAll,
		ResourceType: "room",
		RequestID:    meta.RequestID,
		IPAddress:    meta.IPAddress,
	})
	return nil
}
