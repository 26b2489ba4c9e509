package postgres

import (
	"context"
	"time"

	"folio/internal/domain/entity"
	"folio/internal/domain/repository"
	"folio/internal/infra/persistence/model"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// visitorEventRepository implements repository.VisitorEventRepository using GORM.
type visitorEventRepository struct {
	db *gorm.DB
}

// NewVisitorEventRepository is the constructor for visitorEventRepository.
func NewVisitorEventRepository(db *gorm.DB) repository.VisitorEventRepository {
	return &visitorEventRepository{db: db}
}

func (repo *visitorEventRepository) Create(ctx context.Context, event *entity.VisitorEvent) error {
	eventM := fromVisitorEventDomain(event)
	if err := repo.db.WithContext(ctx).Create(eventM).Error; err != nil {
		return translateWriteError(err, "failed to record visitor event")
	}

	event.ID = eventM.ID
	event.CreatedAt = eventM.CreatedAt

	return nil
}

func (repo *visitorEventRepository) Summarize(ctx context.Context, since time.Time, topN int) (*entity.AnalyticsSummary, error) {
	summary := &entity.AnalyticsSummary{
		Since:  since,
		ByType: make(map[entity.EventType]int64, len(entity.EventTypes)),
	}

	window := func() *gorm.DB {
		return repo.db.WithContext(ctx).
			Model(&model.VisitorEventModel{}).
			Where("created_at >= ?", since)
	}

	if err := window().Count(&summary.TotalEvents).Error; err != nil {
		return nil, errors.Wrap(err, "failed to count visitor events")
	}
	if err := window().Select("COUNT(DISTINCT visitor_id)").Scan(&summary.UniqueVisitors).Error; err != nil {
		return nil, errors.Wrap(err, "failed to count unique visitors")
	}

	byType, err := repo.rank(window(), "type", "", 0)
	if err != nil {
		return nil, err
	}
	for _, eventType := range entity.EventTypes {
		summary.ByType[eventType] = 0
	}
	for _, row := range byType {
		summary.ByType[entity.EventType(row.Label)] = row.Count
	}

	if summary.TopPages, err = repo.rank(window(), "page", entity.EventPageView, topN); err != nil {
		return nil, err
	}
	if summary.TopClicks, err = repo.rank(window(), "item", entity.EventClick, topN); err != nil {
		return nil, err
	}
	if summary.Downloads, err = repo.rank(window(), "item", entity.EventDownload, 0); err != nil {
		return nil, err
	}
	if summary.Devices, err = repo.rank(window(), "device", "", 0); err != nil {
		return nil, err
	}

	return summary, nil
}

// rank groups the window by column. Ties keep the label seen first, then sort by label.
func (repo *visitorEventRepository) rank(query *gorm.DB, column string, eventType entity.EventType, limit int) ([]entity.RankedCount, error) {
	if eventType != "" {
		query = query.Where("type = ?", eventType)
	}
	query = query.
		Select(column+" AS label, COUNT(*) AS total").
		Where(column + " <> ''").
		Group(column).
		Order("total DESC, MIN(created_at) ASC, label ASC")
	if limit > 0 {
		query = query.Limit(limit)
	}

	var rows []model.RankedCountRow
	if err := query.Scan(&rows).Error; err != nil {
		return nil, errors.Wrapf(err, "failed to rank visitor events by %s", column)
	}

	ranked := make([]entity.RankedCount, 0, len(rows))
	for _, row := range rows {
		ranked = append(ranked, entity.RankedCount{Label: row.Label, Count: row.Total})
	}

	return ranked, nil
}

func (repo *visitorEventRepository) ListRecent(ctx context.Context, query repository.EventQuery) ([]*entity.VisitorEvent, int64, error) {
	base := repo.db.WithContext(ctx).Model(&model.VisitorEventModel{})
	if query.Type != "" {
		base = base.Where("type = ?", query.Type)
	}

	var total int64
	if err := base.Session(&gorm.Session{}).Count(&total).Error; err != nil {
		return nil, 0, errors.Wrap(err, "failed to count visitor events")
	}

	var rows []model.VisitorEventModel
	err := base.Session(&gorm.Session{}).
		Order("created_at DESC").
		Limit(query.Limit).
		Offset(query.Offset).
		Find(&rows).Error
	if err != nil {
		return nil, 0, errors.Wrap(err, "failed to list visitor events")
	}

	return toVisitorEventDomains(rows), total, nil
}

func (repo *visitorEventRepository) ListByVisitor(ctx context.Context, visitorID string) ([]*entity.VisitorEvent, error) {
	var rows []model.VisitorEventModel
	err := repo.db.WithContext(ctx).
		Where("visitor_id = ?", visitorID).
		Order("created_at ASC").
		Find(&rows).Error
	if err != nil {
		return nil, errors.Wrap(err, "failed to list visitor history")
	}

	return toVisitorEventDomains(rows), nil
}

func (repo *visitorEventRepository) DeleteOlderThan(ctx context.Context, cutoff time.Time) (int64, error) {
	result := repo.db.WithContext(ctx).
		Where("created_at < ?", cutoff).
		Delete(&model.VisitorEventModel{})
	if result.Error != nil {
		return 0, errors.Wrap(result.Error, "failed to prune visitor events")
	}

	return result.RowsAffected, nil
}

func toVisitorEventDomains(rows []model.VisitorEventModel) []*entity.VisitorEvent {
	events := make([]*entity.VisitorEvent, 0, len(rows))
	for i := range rows {
		events = append(events, toVisitorEventDomain(&rows[i]))
	}

	return events
}

func toVisitorEventDomain(data *model.VisitorEventModel) *entity.VisitorEvent {
	return &entity.VisitorEvent{
		ID:        data.ID,
		VisitorID: data.VisitorID,
		Type:      entity.EventType(data.Type),
		Page:      data.Page,
		Item:      data.Item,
		Referrer:  data.Referrer,
		Device:    entity.Device(data.Device),
		UserAgent: data.UserAgent,
		IP:        data.IP,
		CreatedAt: data.CreatedAt,
	}
}

func fromVisitorEventDomain(data *entity.VisitorEvent) *model.VisitorEventModel {
	return &model.VisitorEventModel{
		ID:        data.ID,
		VisitorID: data.VisitorID,
		Type:      string(data.Type),
		Page:      data.Page,
		Item:      data.Item,
		Referrer:  data.Referrer,
		Device:    string(data.Device),
		UserAgent: data.UserAgent,
		IP:        data.IP,
		CreatedAt: data.CreatedAt,
	}
}
