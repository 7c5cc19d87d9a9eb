package services

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"github.com/renato0307/termdock/internal/domain"
	"github.com/renato0307/termdock/internal/logging"
	"github.com/renato0307/termdock/internal/ports"
)

// ManualOrderService keeps the user-imposed session order of every workspace
type ManualOrderService struct {
	mu sync.Mutex

	store  ports.ManualOrderStore
	orders map[domain.WorkspaceKey][]string

	currentWorkspace string
	filterWorkspace  string

	// active caches the bucket of activeKey; it is refreshed whenever the
	// bucket is replaced so readers never see a stale order
	active    []string
	activeKey domain.WorkspaceKey
}

// NewManualOrderService loads every bucket from the store
func NewManualOrderService(ctx context.Context, store ports.ManualOrderStore) (*ManualOrderService, error) {
	orders, err := store.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load manual order: %w", err)
	}
	if orders == nil {
		orders = make(map[domain.WorkspaceKey][]string)
	}

	s := &ManualOrderService{
		orders: orders,
		store:  store,
	}
	s.refreshActiveLocked()

	logging.Logger.Debug("Manual order loaded", "buckets", len(orders))
	return s, nil
}

// SetWorkspaceContext sets the workspace filter override and the workspace
// the caller is looking at. The override wins when set.
func (s *ManualOrderService) SetWorkspaceContext(filterOverride, current string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.filterWorkspace = filterOverride
	s.currentWorkspace = current
	s.refreshActiveLocked()
}

// ActiveKey returns the bucket currently in scope
func (s *ManualOrderService) ActiveKey() domain.WorkspaceKey {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.activeKey
}

// GetActiveOrder returns a copy of the order of the bucket in scope
func (s *ManualOrderService) GetActiveOrder() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return cloneOrder(s.active)
}

// OrderFor returns a copy of the order stored for key
func (s *ManualOrderService) OrderFor(key domain.WorkspaceKey) []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return cloneOrder(s.orders[key])
}

// Orders returns a copy of every non-empty bucket
func (s *ManualOrderService) Orders() map[domain.WorkspaceKey][]string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.snapshotLocked()
}

// Update replaces the order of the bucket in scope
func (s *ManualOrderService) Update(ctx context.Context, newOrder []string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	prev := s.cloneOrdersLocked()
	s.orders[s.activeKey] = cleanOrder(newOrder)
	s.refreshActiveLocked()

	logging.Logger.Debug("Manual order updated", "workspace", s.activeKey.String(), "count", len(s.active))
	return s.commitLocked(ctx, prev)
}

// Clear empties the order of the bucket in scope
func (s *ManualOrderService) Clear(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	prev := s.cloneOrdersLocked()
	s.orders[s.activeKey] = []string{}
	s.refreshActiveLocked()

	logging.Logger.Debug("Manual order cleared", "workspace", s.activeKey.String())
	return s.commitLocked(ctx, prev)
}

// ApplyExternal stores an authoritative order received from elsewhere (for
// example another client). An empty workspace means the bucket in scope.
func (s *ManualOrderService) ApplyExternal(ctx context.Context, ids []string, workspace string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	key := s.activeKey
	if strings.TrimSpace(workspace) != "" {
		key = domain.NormalizeWorkspaceKey(strings.TrimSpace(workspace))
	}

	prev := s.cloneOrdersLocked()
	s.orders[key] = cleanOrder(ids)
	if key == s.activeKey {
		s.refreshActiveLocked()
	}

	logging.Logger.Debug("External manual order applied",
		"workspace", key.String(),
		"count", len(ids),
		"active", key == s.activeKey)
	return s.commitLocked(ctx, prev)
}

// Move places id at toIndex in the bucket in scope, starting from the order
// the user currently sees. IDs of the previous order that are not visible keep
// their relative order after the visible ones.
func (s *ManualOrderService) Move(ctx context.Context, visible []string, id string, toIndex int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	base := cleanOrder(visible)
	from := indexOf(base, id)
	if from < 0 {
		return fmt.Errorf("session %s is not in the visible list: %w", id, domain.ErrSessionNotFound)
	}

	base = append(base[:from], base[from+1:]...)
	if toIndex < 0 {
		toIndex = 0
	}
	if toIndex > len(base) {
		toIndex = len(base)
	}
	base = append(base[:toIndex], append([]string{id}, base[toIndex:]...)...)

	seen := make(map[string]bool, len(base))
	for _, v := range base {
		seen[v] = true
	}
	for _, v := range s.active {
		if !seen[v] {
			base = append(base, v)
			seen[v] = true
		}
	}

	prev := s.cloneOrdersLocked()
	s.orders[s.activeKey] = base
	s.refreshActiveLocked()

	logging.Logger.Debug("Session moved in manual order",
		"workspace", s.activeKey.String(),
		"session", id,
		"index", toIndex)
	return s.commitLocked(ctx, prev)
}

// MoveAcrossWorkspaces removes id from the source bucket and appends it to
// the destination bucket when that bucket already has a manual order.
func (s *ManualOrderService) MoveAcrossWorkspaces(ctx context.Context, id string, from, to domain.WorkspaceKey) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if from == to {
		return nil
	}

	prev := s.cloneOrdersLocked()
	s.orders[from] = removeID(s.orders[from], id)
	if dest := s.orders[to]; len(dest) > 0 {
		s.orders[to] = append(removeID(dest, id), id)
	}
	s.refreshActiveLocked()

	logging.Logger.Debug("Session moved across workspaces",
		"session", id,
		"from", from.String(),
		"to", to.String())
	return s.commitLocked(ctx, prev)
}

// Remove drops id from every bucket
func (s *ManualOrderService) Remove(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	prev := s.cloneOrdersLocked()
	changed := false
	for key, order := range s.orders {
		if indexOf(order, id) >= 0 {
			s.orders[key] = removeID(order, id)
			changed = true
		}
	}
	if !changed {
		return nil
	}
	s.refreshActiveLocked()
	return s.commitLocked(ctx, prev)
}

func (s *ManualOrderService) refreshActiveLocked() {
	s.activeKey = resolveActiveKey(s.filterWorkspace, s.currentWorkspace)
	order, ok := s.orders[s.activeKey]
	if !ok {
		order = []string{}
		s.orders[s.activeKey] = order
	}
	s.active = order
}

// commitLocked persists the buckets; on failure the buckets are reset to prev
// so memory never runs ahead of the store
func (s *ManualOrderService) commitLocked(ctx context.Context, prev map[domain.WorkspaceKey][]string) error {
	if err := s.store.Save(ctx, s.snapshotLocked()); err != nil {
		logging.Logger.Error("Failed to persist manual order, rolling back", "error", err)
		s.orders = prev
		s.refreshActiveLocked()
		return fmt.Errorf("failed to save manual order: %w", err)
	}
	return nil
}

func (s *ManualOrderService) cloneOrdersLocked() map[domain.WorkspaceKey][]string {
	clone := make(map[domain.WorkspaceKey][]string, len(s.orders))
	for key, order := range s.orders {
		clone[key] = cloneOrder(order)
	}
	return clone
}

func (s *ManualOrderService) snapshotLocked() map[domain.WorkspaceKey][]string {
	snapshot := make(map[domain.WorkspaceKey][]string, len(s.orders))
	for key, order := range s.orders {
		if len(order) > 0 {
			snapshot[key] = cloneOrder(order)
		}
	}
	return snapshot
}

// resolveActiveKey picks the bucket: filter override, then current workspace, then Default
func resolveActiveKey(filterOverride, current string) domain.WorkspaceKey {
	if trimmed := strings.TrimSpace(filterOverride); trimmed != "" {
		return domain.NormalizeWorkspaceKey(trimmed)
	}
	if current != "" {
		return domain.NormalizeWorkspaceKey(current)
	}
	return domain.NamedWorkspace(domain.DefaultWorkspace)
}

// cleanOrder drops blank and repeated IDs
func cleanOrder(ids []string) []string {
	result := make([]string, 0, len(ids))
	seen := make(map[string]bool, len(ids))
	for _, id := range ids {
		if id == "" || seen[id] {
			continue
		}
		seen[id] = true
		result = append(result, id)
	}
	return result
}

func cloneOrder(order []string) []string {
	result := make([]string, len(order))
	copy(result, order)
	return result
}

func indexOf(order []string, id string) int {
	for i, v := range order {
		if v == id {
			return i
		}
	}
	return -1
}

func removeID(order []string, id string) []string {
	result := make([]string, 0, len(order))
	for _, v := range order {
		if v != id {
			result = append(result, v)
		}
	}
	return result
}
