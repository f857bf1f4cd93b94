package usecase

import (
	"context"
	"log"
	"time"

	"courseboard/model"
	"courseboard/services"
	"courseboard/utils"
)

// AnnouncementsStore is the persistence surface the service needs.
type AnnouncementsStore interface {
	CreateAnnouncement(ctx context.Context, a *model.Announcement) error
	GetAnnouncement(ctx context.Context, key string) (*model.Announcement, error)
	UpdateAnnouncement(ctx context.Context, a *model.Announcement) error
	DeleteAnnouncement(ctx context.Context, key string) (bool, error)
	ListAnnouncements(ctx context.Context) ([]*model.Announcement, error)
}

type AnnouncementsService struct {
	Store AnnouncementsStore
	Cache *services.ListCache // nil disables caching
}

// Placeholder content for freshly added drafts.
const (
	draftTitle = "Sample Announcement"
	draftHTML  = "Here is my announcement!"
)

// ListForViewer returns the announcements the given role may see, newest
// first. An empty store is seeded from the sample set exactly once.
func (s *AnnouncementsService) ListForViewer(ctx context.Context, role string) ([]*model.Announcement, error) {
	class := services.VisibilityPublic
	if services.CanEdit(role) {
		class = services.VisibilityEditor
	}

	if s.Cache != nil {
		items, err := s.Cache.Get(ctx, class)
		if err != nil {
			log.Printf("announcements cache read failed: %v", err)
		} else if items != nil {
			return items, nil
		}
	}

	items, err := s.Store.ListAnnouncements(ctx)
	if err != nil {
		return nil, err
	}
	if len(items) == 0 {
		items, err = s.seedSamples(ctx)
		if err != nil {
			return nil, err
		}
	}

	items = applyRights(items, role)

	if s.Cache != nil && len(items) > 0 {
		if err := s.Cache.Set(ctx, class, items); err != nil {
			log.Printf("announcements cache write failed: %v", err)
		}
	}
	return items, nil
}

// applyRights drops records the viewer is not allowed to see.
func applyRights(items []*model.Announcement, role string) []*model.Announcement {
	if services.CanEdit(role) {
		return items
	}

	allowed := make([]*model.Announcement, 0, len(items))
	for _, item := range items {
		if !item.IsDraft {
			allowed = append(allowed, item)
		}
	}
	return allowed
}

func (s *AnnouncementsService) seedSamples(ctx context.Context) ([]*model.Announcement, error) {
	items := make([]*model.Announcement, 0, len(model.SampleAnnouncements))
	for _, sample := range model.SampleAnnouncements {
		item := sample
		if err := s.Store.CreateAnnouncement(ctx, &item); err != nil {
			return nil, err
		}
		items = append(items, &item)
	}
	utils.TrackAnnouncementOperation("seed")
	return items, nil
}

// CreateDraft adds a new placeholder announcement, dated today and hidden
// from non-editors until published.
func (s *AnnouncementsService) CreateDraft(ctx context.Context) (*model.Announcement, error) {
	item := &model.Announcement{
		Title:   draftTitle,
		Date:    time.Now().Format(model.DateLayout),
		HTML:    draftHTML,
		IsDraft: true,
	}
	if err := s.Store.CreateAnnouncement(ctx, item); err != nil {
		return nil, err
	}
	s.invalidateCache(ctx)
	utils.TrackAnnouncementOperation("add")
	return item, nil
}

func (s *AnnouncementsService) Get(ctx context.Context, key string) (*model.Announcement, error) {
	return s.Store.GetAnnouncement(ctx, key)
}

func (s *AnnouncementsService) Update(ctx context.Context, item *model.Announcement) error {
	if err := s.Store.UpdateAnnouncement(ctx, item); err != nil {
		return err
	}
	s.invalidateCache(ctx)
	utils.TrackAnnouncementOperation("update")
	return nil
}

// Delete removes a record by key. An absent key is a silent no-op.
func (s *AnnouncementsService) Delete(ctx context.Context, key string) error {
	deleted, err := s.Store.DeleteAnnouncement(ctx, key)
	if err != nil {
		return err
	}
	if deleted {
		s.invalidateCache(ctx)
		utils.TrackAnnouncementOperation("delete")
	}
	return nil
}

func (s *AnnouncementsService) invalidateCache(ctx context.Context) {
	if s.Cache == nil {
		return
	}
	if err := s.Cache.Invalidate(ctx); err != nil {
		log.Printf("announcements cache invalidation failed: %v", err)
	}
}
