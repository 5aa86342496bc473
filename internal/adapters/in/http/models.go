package http

import (
	"time"

	"dispatch/internal/core/domain/model/assignment"
)

// Error is the uniform error body returned by every endpoint.
type Error struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// NewOrder is the request body for placing an order.
type NewOrder struct {
	CustomerName    string         `json:"customerName"`
	CustomerPhone   string         `json:"customerPhone"`
	CustomerAddress string         `json:"customerAddress"`
	Area            string         `json:"area"`
	Items           []NewOrderItem `json:"items"`
	ScheduledFor    string         `json:"scheduledFor"`
}

// NewOrderItem is one line of a new order. Price is in minor currency units.
type NewOrderItem struct {
	Name     string `json:"name"`
	Quantity int    `json:"quantity"`
	Price    int64  `json:"price"`
}

// OrderCreated is the response body for a successfully placed order.
type OrderCreated struct {
	ID          string `json:"id"`
	OrderNumber string `json:"orderNumber"`
}

// Order is one row of the order listing.
type Order struct {
	ID           string    `json:"id"`
	OrderNumber  string    `json:"orderNumber"`
	CustomerName string    `json:"customerName"`
	Area         string    `json:"area"`
	Status       string    `json:"status"`
	PartnerID    *string   `json:"partnerId,omitempty"`
	TotalAmount  int64     `json:"totalAmount"`
	ScheduledFor string    `json:"scheduledFor"`
	CreatedAt    time.Time `json:"createdAt"`
}

// OrderStatusUpdate is the request body for a fulfillment transition.
type OrderStatusUpdate struct {
	Status string `json:"status"`
}

// AssignmentRequest is the request body for a manual partner assignment.
type AssignmentRequest struct {
	OrderID   string `json:"orderId"`
	PartnerID string `json:"partnerId"`
}

// AssignmentAttempt is the wire form of one ledger entry produced by an
// assignment operation.
type AssignmentAttempt struct {
	ID        string    `json:"id"`
	OrderID   string    `json:"orderId"`
	PartnerID *string   `json:"partnerId,omitempty"`
	Status    string    `json:"status"`
	Reason    string    `json:"reason,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
}

// NewPartner is the request body for registering a delivery partner.
type NewPartner struct {
	Name       string   `json:"name"`
	Email      string   `json:"email"`
	Phone      string   `json:"phone"`
	Areas      []string `json:"areas"`
	ShiftStart string   `json:"shiftStart"`
	ShiftEnd   string   `json:"shiftEnd"`
}

// PartnerCreated is the response body for a successful registration.
type PartnerCreated struct {
	ID string `json:"id"`
}

// Partner is one row of the partner roster.
type Partner struct {
	ID              string   `json:"id"`
	Name            string   `json:"name"`
	Email           string   `json:"email"`
	Phone           string   `json:"phone"`
	Status          string   `json:"status"`
	CurrentLoad     int      `json:"currentLoad"`
	Areas           []string `json:"areas"`
	ShiftStart      string   `json:"shiftStart"`
	ShiftEnd        string   `json:"shiftEnd"`
	Rating          float64  `json:"rating"`
	CompletedOrders int      `json:"completedOrders"`
	CancelledOrders int      `json:"cancelledOrders"`
}

// PartnerUpdate is the request body for replacing a partner's mutable fields.
type PartnerUpdate struct {
	Phone      string   `json:"phone"`
	Areas      []string `json:"areas"`
	ShiftStart string   `json:"shiftStart"`
	ShiftEnd   string   `json:"shiftEnd"`
	Status     string   `json:"status"`
}

// AssignmentRunResult is the response body for an on-demand dispatch sweep.
type AssignmentRunResult struct {
	Assigned int `json:"assigned"`
	Skipped  int `json:"skipped"`
}

// FailureReason is one bucket of the failure histogram.
type FailureReason struct {
	Reason string `json:"reason"`
	Count  int    `json:"count"`
}

// AssignmentMetrics is the response body for the metrics endpoint.
type AssignmentMetrics struct {
	TotalAttempts  int             `json:"totalAttempts"`
	Successful     int             `json:"successful"`
	Failed         int             `json:"failed"`
	SuccessRate    float64         `json:"successRate"`
	FailureReasons []FailureReason `json:"failureReasons"`
}

// AssignmentHistoryEntry is one row of the history listing.
type AssignmentHistoryEntry struct {
	ID          string    `json:"id"`
	OrderID     string    `json:"orderId"`
	OrderNumber string    `json:"orderNumber"`
	PartnerID   *string   `json:"partnerId,omitempty"`
	PartnerName string    `json:"partnerName,omitempty"`
	Status      string    `json:"status"`
	Reason      string    `json:"reason,omitempty"`
	CreatedAt   time.Time `json:"createdAt"`
}

// DashboardMetrics is the response body for the dashboard endpoint.
type DashboardMetrics struct {
	TotalOrders     int `json:"totalOrders"`
	ActiveOrders    int `json:"activeOrders"`
	PendingOrders   int `json:"pendingOrders"`
	AssignedOrders  int `json:"assignedOrders"`
	PickedOrders    int `json:"pickedOrders"`
	DeliveredOrders int `json:"deliveredOrders"`
	CancelledOrders int `json:"cancelledOrders"`

	TotalPartners     int `json:"totalPartners"`
	ActivePartners    int `json:"activePartners"`
	AvailablePartners int `json:"availablePartners"`

	SuccessRate float64 `json:"successRate"`
}

func attemptToResponse(attempt *assignment.AssignmentAttempt) AssignmentAttempt {
	var partnerID *string
	if id := attempt.PartnerID(); id != nil {
		s := id.String()
		partnerID = &s
	}

	return AssignmentAttempt{
		ID:        attempt.ID().String(),
		OrderID:   attempt.OrderID().String(),
		PartnerID: partnerID,
		Status:    attempt.Status().String(),
		Reason:    attempt.Reason(),
		CreatedAt: attempt.CreatedAt(),
	}
}
