package domain

import "time"

type NotificationType string

const (
	NotifNewProperty NotificationType = "new_property"
	NotifPriceDrop   NotificationType = "price_drop"
	NotifRQChange    NotificationType = "rq_change"
)

type NotificationMetadata struct {
	ThumbnailURL  string  `json:"thumbnailUrl"`
	City          string  `json:"city"`
	RQScore       int     `json:"rqScore"`
	Price         int64   `json:"price"`
	ChangePercent float64 `json:"changePercent"`
}

// Notification entries are fabricated per request; ReadAt is always nil in
// list responses and mark-read is a no-op.
type Notification struct {
	ID            string               `json:"id"`
	Type          NotificationType     `json:"type"`
	Title         string               `json:"title"`
	Body          string               `json:"body"`
	CreatedAt     time.Time            `json:"createdAt"`
	ReadAt        *time.Time           `json:"readAt"`
	PropertyID    *string              `json:"propertyId"`
	SavedSearchID *string              `json:"savedSearchId"`
	Metadata      NotificationMetadata `json:"metadata"`
}
