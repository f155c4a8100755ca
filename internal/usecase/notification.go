package usecase

import (
	"fmt"
	"time"

	"github.com/rqapp/rq-mobile-api/internal/catalog"
	"github.com/rqapp/rq-mobile-api/internal/domain"
	"github.com/rqapp/rq-mobile-api/internal/random"
)

// DefaultNotificationPageSize applies when the request omits pageSize.
const DefaultNotificationPageSize = 10

var notificationTypes = []domain.NotificationType{
	domain.NotifNewProperty,
	domain.NotifPriceDrop,
	domain.NotifRQChange,
}

type NotificationUsecase struct {
	rng *random.Source
}

func NewNotificationUsecase(rng *random.Source) *NotificationUsecase {
	return &NotificationUsecase{rng: rng}
}

// List fabricates pageSize fresh notifications per call. The meta totals are
// hardcoded to 3 pages / 25 items regardless of pageSize, as upstream does.
func (u *NotificationUsecase) List(page, pageSize int) ([]domain.Notification, domain.PageMeta) {
	now := time.Now().UTC()

	items := make([]domain.Notification, 0, max(pageSize, 0))
	for i := 0; i < pageSize; i++ {
		propertyID := fmt.Sprintf("property-%d", u.rng.IntBetween(1, catalog.Size))
		items = append(items, domain.Notification{
			ID:            fmt.Sprintf("notif-%d", i),
			Type:          random.Pick(u.rng, notificationTypes),
			Title:         "עדכון חדש",
			Body:          "המחיר של נכס שמור ירד ב-2%",
			CreatedAt:     now.Add(-time.Duration(i) * time.Hour),
			ReadAt:        nil,
			PropertyID:    &propertyID,
			SavedSearchID: nil,
			Metadata: domain.NotificationMetadata{
				ThumbnailURL:  "https://picsum.photos/100/100?random=1",
				City:          "תל אביב",
				RQScore:       u.rng.IntBetween(60, 90),
				Price:         u.rng.Int64Between(1_500_000, 4_000_000),
				ChangePercent: u.rng.FloatBetween(-5, 5),
			},
		})
	}

	meta := domain.PageMeta{
		Page:       page,
		PageSize:   pageSize,
		TotalPages: 3,
		TotalItems: 25,
	}
	return items, meta
}
