package notification

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
)

// Service persists notifications and pushes them to connected clients.
//
// The Notify* helpers never return an error: a lost notification must not
// block the business action that triggered it. Failures are logged and
// swallowed here, in one place, instead of at every call site.
type Service struct {
	repo Repository
	hub  *Hub
}

func NewService(repo Repository, hub *Hub) *Service {
	return &Service{repo: repo, hub: hub}
}

func (s *Service) create(ctx context.Context, userID int64, t Type, title, message string, data map[string]any) {
	n := &Notification{
		UserID:  userID,
		Type:    t,
		Title:   title,
		Message: message,
		IsRead:  false,
	}
	if data != nil {
		if b, err := json.Marshal(data); err == nil {
			n.Data = b
		}
	}

	if err := s.repo.Create(ctx, n); err != nil {
		log.Printf("notification create failed user_id=%d type=%s err=%v", userID, t, err)
		return
	}

	if s.hub != nil {
		s.hub.Push(userID, n)
	}
}

func (s *Service) GetUserNotifications(ctx context.Context, userID int64, limit, offset int) ([]Notification, int64, error) {
	if limit <= 0 || limit > 100 {
		limit = 20
	}
	if offset < 0 {
		offset = 0
	}

	list, err := s.repo.GetByUserID(ctx, userID, limit, offset)
	if err != nil {
		return nil, 0, err
	}

	unread, err := s.repo.CountUnread(ctx, userID)
	if err != nil {
		unread = 0
	}

	return list, unread, nil
}

func (s *Service) CountUnread(ctx context.Context, userID int64) (int64, error) {
	return s.repo.CountUnread(ctx, userID)
}

func (s *Service) MarkAsRead(ctx context.Context, notificationID, userID int64) error {
	return s.repo.MarkAsRead(ctx, notificationID, userID)
}

func (s *Service) MarkAllAsRead(ctx context.Context, userID int64) error {
	return s.repo.MarkAllAsRead(ctx, userID)
}

func (s *Service) Delete(ctx context.Context, notificationID, userID int64) error {
	return s.repo.SoftDelete(ctx, notificationID, userID)
}

// ---- Typed event helpers ----

func (s *Service) NotifyInquiryReceived(ctx context.Context, managerID, propertyID int64, senderName, message string) {
	s.create(ctx, managerID, TypeInquiry,
		"New inquiry",
		fmt.Sprintf("%s sent an inquiry about your property", senderName),
		map[string]any{"property_id": propertyID, "message": message},
	)
}

func (s *Service) NotifyPropertyApproved(ctx context.Context, managerID, propertyID int64, subdomain string) {
	s.create(ctx, managerID, TypeProperty,
		"Property approved",
		fmt.Sprintf("Your property has been approved. Portal: %s", subdomain),
		map[string]any{"property_id": propertyID, "portal_subdomain": subdomain},
	)
}

func (s *Service) NotifyPropertyRejected(ctx context.Context, managerID, propertyID int64, reason string) {
	msg := "Your property listing was rejected"
	if reason != "" {
		msg = msg + ". Reason: " + reason
	}
	s.create(ctx, managerID, TypeProperty,
		"Property rejected",
		msg,
		map[string]any{"property_id": propertyID, "reason": reason},
	)
}

func (s *Service) NotifyBillingCreated(ctx context.Context, tenantID, billID int64, amount float64) {
	s.create(ctx, tenantID, TypeBilling,
		"New bill issued",
		fmt.Sprintf("A rent bill of %.2f has been issued to you", amount),
		map[string]any{"bill_id": billID, "amount": amount},
	)
}

func (s *Service) NotifyPaymentVerified(ctx context.Context, userID, billID int64, amount float64) {
	s.create(ctx, userID, TypeBilling,
		"Payment received",
		fmt.Sprintf("Your payment of %.2f has been verified", amount),
		map[string]any{"bill_id": billID, "amount": amount},
	)
}

func (s *Service) NotifySubscriptionBillCreated(ctx context.Context, managerID int64, planName string, amount float64) {
	s.create(ctx, managerID, TypeSubscription,
		"Subscription bill created",
		fmt.Sprintf("A pending bill of %.2f was created for plan %s", amount, planName),
		map[string]any{"plan": planName, "amount": amount},
	)
}

func (s *Service) NotifySubscriptionActivated(ctx context.Context, managerID int64, planName string) {
	s.create(ctx, managerID, TypeSubscription,
		"Subscription activated",
		fmt.Sprintf("Your subscription to plan %s is now active", planName),
		map[string]any{"plan": planName},
	)
}

func (s *Service) NotifyDocumentApproved(ctx context.Context, userID int64, documentName string) {
	s.create(ctx, userID, TypeAccount,
		"Document approved",
		fmt.Sprintf("Your document %q has been approved", documentName),
		map[string]any{"document": documentName},
	)
}

func (s *Service) NotifyPortalToggled(ctx context.Context, managerID, propertyID int64, enabled bool) {
	state := "disabled"
	if enabled {
		state = "enabled"
	}
	s.create(ctx, managerID, TypeProperty,
		"Portal "+state,
		fmt.Sprintf("The tenant portal for your property has been %s", state),
		map[string]any{"property_id": propertyID, "enabled": enabled},
	)
}

func (s *Service) NotifyMaintenanceUpdate(ctx context.Context, userID, requestID int64, status string) {
	s.create(ctx, userID, TypeSystem,
		"Maintenance request updated",
		fmt.Sprintf("Maintenance request #%d is now %s", requestID, status),
		map[string]any{"request_id": requestID, "status": status},
	)
}

func (s *Service) NotifyAccountUpdated(ctx context.Context, userID int64) {
	s.create(ctx, userID, TypeAccount,
		"Profile updated",
		"Your account details were updated",
		nil,
	)
}
