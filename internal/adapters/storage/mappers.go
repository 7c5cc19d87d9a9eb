package storage

import (
	"github.com/renato0307/termdock/internal/domain"
)

// sessionModelToDomain converts a SessionModel (GORM) to domain.Session
func sessionModelToDomain(m SessionModel, hasActiveChildren bool) domain.Session {
	s := domain.Session{
		Command:            m.Command,
		CreatedAt:          m.CreatedAt,
		HasActiveChildren:  hasActiveChildren,
		ID:                 m.ID,
		IsActive:           m.IsActive,
		LocalOnly:          m.LocalOnly,
		TemplateBadgeLabel: m.TemplateBadgeLabel,
		TemplateName:       m.TemplateName,
		Title:              m.Title,
		WorkingDirectory:   m.WorkingDirectory,
		Workspace:          m.Workspace,
	}
	if m.ParentID != nil {
		s.ParentSessionID = *m.ParentID
	}
	if m.WorkspaceOrder != nil {
		order := *m.WorkspaceOrder
		s.WorkspaceOrder = &order
	}
	return s
}

// domainToSessionModel converts a domain.Session to SessionModel (GORM)
func domainToSessionModel(s domain.Session) SessionModel {
	m := SessionModel{
		Command:            s.Command,
		CreatedAt:          s.CreatedAt,
		ID:                 s.ID,
		IsActive:           s.IsActive,
		LocalOnly:          s.LocalOnly,
		TemplateBadgeLabel: s.TemplateBadgeLabel,
		TemplateName:       s.TemplateName,
		Title:              s.Title,
		WorkingDirectory:   s.WorkingDirectory,
		Workspace:          s.Workspace,
		WorkspaceOrder:     s.WorkspaceOrder,
	}
	if s.ParentSessionID != "" {
		parent := s.ParentSessionID
		m.ParentID = &parent
	}
	return m
}

// activeParents returns the IDs of sessions that have at least one running child
func activeParents(models []SessionModel) map[string]bool {
	parents := make(map[string]bool)
	for _, m := range models {
		if m.ParentID != nil && m.IsActive {
			parents[*m.ParentID] = true
		}
	}
	return parents
}
