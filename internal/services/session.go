package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/renato0307/termdock/internal/domain"
	"github.com/renato0307/termdock/internal/logging"
	"github.com/renato0307/termdock/internal/ports"
)

// SessionService owns session records and keeps manual orders in step with them
type SessionService struct {
	marks       ports.SessionMarkWriter
	now         func() time.Time
	orders      *ManualOrderService
	reader      ports.SessionReader
	sessionRepo ports.SessionStateUpdater
	writer      ports.SessionWriter
}

// NewSessionService creates a new SessionService
func NewSessionService(
	reader ports.SessionReader,
	writer ports.SessionWriter,
	sessionRepo ports.SessionStateUpdater,
	marks ports.SessionMarkWriter,
	orders *ManualOrderService,
) *SessionService {
	return &SessionService{
		marks:       marks,
		now:         time.Now,
		orders:      orders,
		reader:      reader,
		sessionRepo: sessionRepo,
		writer:      writer,
	}
}

// Add registers a new session. A random ID is generated when none is given.
func (s *SessionService) Add(ctx context.Context, params AddSessionParams) (*domain.Session, error) {
	id := strings.TrimSpace(params.ID)
	if id == "" {
		id = uuid.New().String()
	}
	if params.ParentSessionID == id {
		return nil, fmt.Errorf("session %s cannot be its own parent: %w", id, domain.ErrInvalidSession)
	}
	workspace := strings.TrimSpace(params.Workspace)
	if workspace != "" && domain.IsReservedWorkspace(workspace) {
		return nil, fmt.Errorf("workspace name %q is reserved: %w", workspace, domain.ErrInvalidSession)
	}

	session := domain.Session{
		Command:            params.Command,
		CreatedAt:          s.now(),
		ID:                 id,
		IsActive:           !params.Inactive,
		LocalOnly:          params.LocalOnly,
		ParentSessionID:    params.ParentSessionID,
		TemplateBadgeLabel: params.TemplateBadgeLabel,
		TemplateName:       params.TemplateName,
		Title:              params.Title,
		WorkingDirectory:   params.WorkingDirectory,
		Workspace:          workspace,
		WorkspaceOrder:     params.WorkspaceOrder,
	}

	logging.Logger.Info("Adding session", "id", id, "workspace", session.EffectiveWorkspace())
	if err := s.writer.Add(ctx, session); err != nil {
		logging.Logger.Error("Failed to add session", "id", id, "error", err)
		return nil, fmt.Errorf("failed to add session: %w", err)
	}
	return &session, nil
}

// Get returns a session by ID
func (s *SessionService) Get(ctx context.Context, id string) (*domain.Session, error) {
	return s.reader.Get(ctx, id)
}

// Delete removes a session and every manual order entry that mentions it
func (s *SessionService) Delete(ctx context.Context, id string) error {
	logging.Logger.Info("Deleting session", "id", id)

	if err := s.writer.Delete(ctx, id); err != nil {
		logging.Logger.Error("Failed to delete session", "id", id, "error", err)
		return fmt.Errorf("failed to delete session: %w", err)
	}
	if err := s.orders.Remove(ctx, id); err != nil {
		return fmt.Errorf("failed to drop session from manual order: %w", err)
	}
	return nil
}

// Terminate marks the session process as exited
func (s *SessionService) Terminate(ctx context.Context, id string) error {
	return s.setActive(ctx, id, false)
}

// Resume marks the session process as running again
func (s *SessionService) Resume(ctx context.Context, id string) error {
	return s.setActive(ctx, id, true)
}

func (s *SessionService) setActive(ctx context.Context, id string, active bool) error {
	logging.Logger.Info("Setting session active flag", "id", id, "active", active)
	if err := s.sessionRepo.SetActive(ctx, id, active); err != nil {
		logging.Logger.Error("Failed to set active flag", "id", id, "error", err)
		return fmt.Errorf("failed to set active flag: %w", err)
	}
	return nil
}

// SetPinned pins or unpins a session
func (s *SessionService) SetPinned(ctx context.Context, id string, pinned bool) error {
	logging.Logger.Info("Setting pinned flag", "id", id, "pinned", pinned)
	if err := s.marks.SetPinned(ctx, id, pinned); err != nil {
		logging.Logger.Error("Failed to set pinned flag", "id", id, "error", err)
		return fmt.Errorf("failed to set pinned flag: %w", err)
	}
	return nil
}

// SetSticky marks a session as visible regardless of the status filter
func (s *SessionService) SetSticky(ctx context.Context, id string, sticky bool) error {
	logging.Logger.Info("Setting sticky flag", "id", id, "sticky", sticky)
	if err := s.marks.SetSticky(ctx, id, sticky); err != nil {
		logging.Logger.Error("Failed to set sticky flag", "id", id, "error", err)
		return fmt.Errorf("failed to set sticky flag: %w", err)
	}
	return nil
}

// MoveToWorkspace reassigns a session and moves it between manual order buckets
func (s *SessionService) MoveToWorkspace(ctx context.Context, id, workspace string) error {
	workspace = strings.TrimSpace(workspace)
	if domain.IsReservedWorkspace(workspace) {
		return fmt.Errorf("invalid target workspace %q: %w", workspace, domain.ErrInvalidSession)
	}

	current, err := s.reader.Get(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrSessionNotFound) {
			return err
		}
		return fmt.Errorf("failed to get session: %w", err)
	}

	from := current.OrderKey()
	current.Workspace = workspace
	to := current.OrderKey()

	logging.Logger.Info("Moving session to workspace", "id", id, "from", from.String(), "to", to.String())
	if err := s.sessionRepo.UpdateWorkspace(ctx, id, workspace); err != nil {
		logging.Logger.Error("Failed to update workspace", "id", id, "error", err)
		return fmt.Errorf("failed to update workspace: %w", err)
	}
	if err := s.orders.MoveAcrossWorkspaces(ctx, id, from, to); err != nil {
		return fmt.Errorf("failed to move session between manual orders: %w", err)
	}
	return nil
}
