// Package inventory orchestrates mutations against the persistence layer:
// every add, update or delete appends an activity entry, reloads the
// snapshot, re-derives the alert set and replaces the stored one. Alerts are
// never recomputed implicitly; this service is the only caller.
package inventory

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/mworx/stockroom/internal/alerts"
	"github.com/mworx/stockroom/internal/dashboard"
	"github.com/mworx/stockroom/internal/models"
	"github.com/mworx/stockroom/internal/repo"
	"github.com/rs/zerolog/log"
)

// Actor identifies who performs an operation; it stamps audit fields and
// activity entries.
type Actor struct {
	ID    string
	Name  string
	Email string
}

type Service struct {
	items      repo.ItemRepository
	alertStore repo.AlertRepository
	activities repo.ActivityRepository

	now      func() time.Time
	onRaised func([]models.InventoryAlert)
}

func NewService(items repo.ItemRepository, alertStore repo.AlertRepository, activities repo.ActivityRepository) *Service {
	return &Service{
		items:      items,
		alertStore: alertStore,
		activities: activities,
		now:        time.Now,
	}
}

// SetClock overrides the service clock. Test helper.
func (s *Service) SetClock(now func() time.Time) {
	s.now = now
}

// OnAlertsRaised registers a hook invoked with alerts that were not present
// in the previous derivation.
func (s *Service) OnAlertsRaised(fn func([]models.InventoryAlert)) {
	s.onRaised = fn
}

func (s *Service) AddItem(actor Actor, item models.InventoryItem) (models.InventoryItem, error) {
	now := s.now()
	item.ID = uuid.NewString()
	item.CreatedAt = now
	item.LastUpdated = now
	item.UpdatedBy = actor.Email

	created, err := s.items.Create(item)
	if err != nil {
		return models.InventoryItem{}, err
	}

	s.recordActivity(actor, models.ActionCreate, created.ID, created.Name,
		fmt.Sprintf("Created new inventory item: %s", created.Name))
	s.refreshAlerts()
	return created, nil
}

func (s *Service) UpdateItem(actor Actor, item models.InventoryItem) (models.InventoryItem, error) {
	existing, err := s.items.GetByID(item.ID)
	if err != nil {
		return models.InventoryItem{}, err
	}
	item.CreatedAt = existing.CreatedAt
	item.LastUpdated = s.now()
	item.UpdatedBy = actor.Email

	updated, err := s.items.Update(item)
	if err != nil {
		return models.InventoryItem{}, err
	}

	s.recordActivity(actor, models.ActionUpdate, updated.ID, updated.Name,
		fmt.Sprintf("Updated inventory item: %s", updated.Name))
	s.refreshAlerts()
	return updated, nil
}

func (s *Service) DeleteItem(actor Actor, id string) error {
	item, err := s.items.GetByID(id)
	if err != nil {
		return err
	}
	if err := s.items.Delete(id); err != nil {
		return err
	}

	s.recordActivity(actor, models.ActionDelete, item.ID, item.Name,
		fmt.Sprintf("Deleted inventory item: %s", item.Name))
	s.refreshAlerts()
	return nil
}

func (s *Service) Items() ([]models.InventoryItem, error) {
	return s.items.GetAll()
}

func (s *Service) Item(id string) (models.InventoryItem, error) {
	return s.items.GetByID(id)
}

func (s *Service) Search(f repo.ItemFilter) ([]models.InventoryItem, int, error) {
	return s.items.Filter(f)
}

func (s *Service) Alerts() ([]models.InventoryAlert, error) {
	return s.alertStore.GetAll()
}

func (s *Service) AcknowledgeAlert(id string) (models.InventoryAlert, error) {
	return s.alertStore.Acknowledge(id)
}

func (s *Service) RecentActivities(limit int) ([]models.ActivityLog, error) {
	return s.activities.Recent(limit)
}

// Stats reduces the current snapshot and activity history for the dashboard.
func (s *Service) Stats() (models.DashboardStats, error) {
	items, err := s.items.GetAll()
	if err != nil {
		return models.DashboardStats{}, err
	}
	activities, err := s.activities.Recent(models.ActivityCap)
	if err != nil {
		return models.DashboardStats{}, err
	}
	return dashboard.Compute(items, activities), nil
}

// RecordLogin appends a login activity and is called by the auth handlers.
func (s *Service) RecordLogin(actor Actor) {
	s.recordActivity(actor, models.ActionLogin, "", "", "User logged in successfully")
}

// RecordLogout appends a logout activity.
func (s *Service) RecordLogout(actor Actor) {
	s.recordActivity(actor, models.ActionLogout, "", "", "User logged out")
}

// RecordExport appends an export activity.
func (s *Service) RecordExport(actor Actor, format string, count int) {
	s.recordActivity(actor, models.ActionExport, "", "",
		fmt.Sprintf("Exported %d items as %s", count, format))
}

func (s *Service) recordActivity(actor Actor, action, itemID, itemName, details string) {
	entry := models.ActivityLog{
		ID:        uuid.NewString(),
		UserID:    actor.ID,
		UserName:  actor.Name,
		Action:    action,
		ItemID:    itemID,
		ItemName:  itemName,
		Details:   details,
		Timestamp: s.now(),
	}
	if err := s.activities.Append(entry); err != nil {
		log.Error().Err(err).Str("action", action).Msg("failed to append activity")
	}
}

// refreshAlerts re-derives the alert set from the current snapshot and
// replaces the stored one, carrying acknowledgements forward by (item, type).
func (s *Service) refreshAlerts() {
	snapshot, err := s.items.GetAll()
	if err != nil {
		log.Error().Err(err).Msg("failed to load snapshot for alert derivation")
		return
	}
	prev, err := s.alertStore.GetAll()
	if err != nil {
		log.Error().Err(err).Msg("failed to load previous alert set")
		return
	}

	next := alerts.Reconcile(prev, alerts.Derive(snapshot, s.now()))
	if err := s.alertStore.ReplaceAll(next); err != nil {
		log.Error().Err(err).Msg("failed to replace alert set")
		return
	}

	if s.onRaised == nil {
		return
	}
	known := make(map[string]bool, len(prev))
	for _, a := range prev {
		known[a.ID] = true
	}
	var raised []models.InventoryAlert
	for _, a := range next {
		if !known[a.ID] {
			raised = append(raised, a)
		}
	}
	if len(raised) > 0 {
		s.onRaised(raised)
	}
}
