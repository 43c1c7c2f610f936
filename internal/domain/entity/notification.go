package entity

import "time"

// DefaultDriverNotificationType is used when a driver notification is created without a type.
const DefaultDriverNotificationType = "order_assigned"

// NotificationBase holds the fields every notification variant shares.
type NotificationBase struct {
	ID        uint64    `json:"id"`
	Type      string    `json:"type"`
	Title     string    `json:"title"`
	Message   string    `json:"message"`
	IsRead    bool      `json:"is_read"` // Only ever moves from false to true.
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Base gives generic code access to the shared fields.
func (n *NotificationBase) Base() *NotificationBase {
	return n
}

// Notification is implemented by pointers to every notification variant.
type Notification interface {
	Base() *NotificationBase
}

// NotificationPtr constrains a type parameter to *N where *N is a Notification.
type NotificationPtr[N any] interface {
	*N
	Notification
}

// AdminNotification belongs to one back-office admin.
type AdminNotification struct {
	NotificationBase
	AdminID     uint64  `json:"admin_id"`
	ReferenceID *uint64 `json:"reference_id,omitempty"` // Subject the notification links to.
}

// DriverNotification belongs to one driver.
type DriverNotification struct {
	NotificationBase
	DriverID    uint64  `json:"driver_id"`
	ReferenceID *string `json:"reference_id,omitempty"` // Usually the order id.
}
