package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/clinicdesk/clinicdesk/internal/domain/room"
)

func newRoomService(t *testing.T) (*RoomService, *mockRoomRepo) {
	t.Helper()
	auditSvc, _, col := newTestAudit()
	t.Cleanup(auditSvc.Shutdown)
	repo := newMockRoomRepo()
	return NewRoomService(repo, auditSvc, col, zap.NewNop()), repo
}

func TestRoomServiceCreate(t *testing.T) {
	svc, _ := newRoomService(t)

	r, err := svc.Create(context.Background(), &room.CreateRoomCommand{RoomName: "Dermatology"}, RequestMeta{})
	require.NoError(t, err)
	assert.Equal(t, "Dermatology", r.RoomName)
}

func TestRoomServiceCreateEmptyName(t *testing.T) {
	svc, _ := newRoomService(t)

	_, err := svc.Create(context.Background(), &room.CreateRoomCommand{}, RequestMeta{})

	var verr *ValidationError
	assert.ErrorAs(t, err, &verr)
}

func TestRoomServiceCreateDuplicate(t *testing.T) {
	svc, _ := newRoomService(t)

	_, err := svc.Create(context.Background(), &room.CreateRoomCommand{RoomName: "Oncology"}, RequestMeta{})
	require.NoError(t, err)

	_, err = svc.Create(context.Background(), &room.CreateRoomCommand{RoomName: "Oncology"}, RequestMeta{})
	assert.ErrorIs(t, err, room.ErrRoomAlreadyExists)
}

func TestRoomServiceGetAndDeleteNotFound(t *testing.T) {
	svc, _ := newRoomService(t)

	_, err := svc.Get(context.Background(), "Surgery")
	assert.ErrorIs(t, err, room.ErrRoomNotFound)

	assert.ErrorIs(t, svc.Delete(context.Background(), "Surgery", RequestMeta{}), room.ErrRoomNotFound)
}

func TestRoomServiceDeleteAll(t *testing.T) {
	svc, repo := newRoomService(t)

	for _, name := range []string{"Dermatology", "Oncology"} {
		_, err := svc.Create(context.Background(), &room.CreateRoomCommand{RoomName: name}, RequestMeta{})
		require.NoError(t, err)
	}

	require.NoError(t, svc.DeleteAll(context.Background(), RequestMeta{}))
	assert.Empty(t, repo.rooms)
}
