package handler

import (
	"context"
	"fmt"
	"net/http"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/require"

	"github.com/campushub/campus-api/internal/dto"
	"github.com/campushub/campus-api/internal/service"
)

type stubEventService struct {
	events    []dto.EventResponse
	updateErr error
	updated   dto.EventResponse
	lastActor service.Actor
}

func (s *stubEventService) Create(ctx context.Context, payload dto.EventCreateRequest, actor service.Actor) (dto.EventResponse, error) {
	s.lastActor = actor
	return dto.EventResponse{ID: 1, Title: payload.Title, Status: "Pending Approval"}, nil
}

func (s *stubEventService) List(ctx context.Context) ([]dto.EventResponse, error) {
	return s.events, nil
}

func (s *stubEventService) Get(ctx context.Context, id uint) (dto.EventResponse, error) {
	return dto.EventResponse{ID: id}, nil
}

func (s *stubEventService) UpdateStatus(ctx context.Context, id uint, payload dto.EventStatusUpdateRequest, actor service.Actor) (dto.EventResponse, error) {
	s.lastActor = actor
	if s.updateErr != nil {
		return dto.EventResponse{}, s.updateErr
	}
	return s.updated, nil
}

func TestEventStatusUpdateInvalidTransitionConflicts(t *testing.T) {
	svc := &stubEventService{updateErr: fmt.Errorf("%w: Completed -> Approved", service.ErrInvalidTransition)}
	handler := NewEventHandler(svc, testLogger())
	app := authedApp(80, "admin", func(r fiber.Router) { handler.RegisterFaculty(r) })

	resp := doJSON(t, app, http.MethodPut, "/events/3/status", `{"status":"Approved"}`)
	require.Equal(t, http.StatusConflict, resp.StatusCode)

	body := decodeBody(t, resp)
	require.Equal(t, false, body["success"])
	require.Contains(t, body["message"], "Completed -> Approved")
}

func TestEventStatusUpdateRejectsBadID(t *testing.T) {
	handler := NewEventHandler(&stubEventService{}, testLogger())
	app := authedApp(80, "admin", func(r fiber.Router) { handler.RegisterFaculty(r) })

	resp := doJSON(t, app, http.MethodPut, "/events/0/status", `{"status":"Approved"}`)
	require.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestEventCreatePassesActorFromContext(t *testing.T) {
	svc := &stubEventService{}
	handler := NewEventHandler(svc, testLogger())
	app := authedApp(81, "admin", func(r fiber.Router) { handler.RegisterAdmin(r) })

	resp := doJSON(t, app, http.MethodPost, "/events", `{"title":"Fest","date":"2026-10-01T10:00:00Z"}`)
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	require.Equal(t, uint(81), svc.lastActor.ID)
	require.Equal(t, "admin", svc.lastActor.Role)

	body := decodeBody(t, resp)
	require.Equal(t, true, body["success"])
}

func TestEventListWrapsEnvelope(t *testing.T) {
	svc := &stubEventService{events: []dto.EventResponse{{ID: 1, Title: "Fest"}}}
	handler := NewEventHandler(svc, testLogger())
	app := authedApp(82, "student", func(r fiber.Router) { handler.Register(r) })

	resp := doJSON(t, app, http.MethodGet, "/events", "")
	require.Equal(t, http.StatusOK, resp.StatusCode)

	body := decodeBody(t, resp)
	require.Equal(t, true, body["success"])
	require.Len(t, body["data"], 1)
}
