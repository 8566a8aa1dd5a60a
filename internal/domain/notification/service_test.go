package notification

import (
	"context"
	"fmt"
	"testing"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
	_ "modernc.org/sqlite"
)

func setupTestService(t *testing.T) (*Service, Repository) {
	t.Helper()
	dsn := fmt.Sprintf("file:notification_test_%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.New(sqlite.Config{DriverName: "sqlite", DSN: dsn}), &gorm.Config{Logger: logger.Default.LogMode(logger.Silent)})
	if err != nil {
		t.Fatalf("failed to open sqlite db: %v", err)
	}
	if err := db.AutoMigrate(&Notification{}); err != nil {
		t.Fatalf("failed to migrate db: %v", err)
	}
	repo := NewRepository(db)
	return NewService(repo, nil), repo
}

func TestNotifyHelpersPersist(t *testing.T) {
	svc, _ := setupTestService(t)
	ctx := context.Background()

	svc.NotifyBillingCreated(ctx, 42, 7, 850)
	svc.NotifyPropertyApproved(ctx, 42, 3, "sunny-loft-3")

	list, unread, err := svc.GetUserNotifications(ctx, 42, 20, 0)
	if err != nil {
		t.Fatalf("GetUserNotifications returned error: %v", err)
	}
	if len(list) != 2 {
		t.Fatalf("expected 2 notifications, got %d", len(list))
	}
	if unread != 2 {
		t.Fatalf("expected 2 unread, got %d", unread)
	}
	for _, n := range list {
		if len(n.Data) == 0 {
			t.Fatalf("expected payload data on notification %d", n.ID)
		}
	}
}

func TestNotificationsAreScopedToUser(t *testing.T) {
	svc, _ := setupTestService(t)
	ctx := context.Background()

	svc.NotifyAccountUpdated(ctx, 1)
	svc.NotifyAccountUpdated(ctx, 2)

	list, _, err := svc.GetUserNotifications(ctx, 1, 20, 0)
	if err != nil {
		t.Fatalf("GetUserNotifications returned error: %v", err)
	}
	if len(list) != 1 {
		t.Fatalf("expected only user 1's notification, got %d", len(list))
	}
	if list[0].UserID != 1 {
		t.Fatalf("expected user_id 1, got %d", list[0].UserID)
	}
}

func TestMarkAsReadUpdatesUnreadCount(t *testing.T) {
	svc, _ := setupTestService(t)
	ctx := context.Background()

	svc.NotifyBillingCreated(ctx, 5, 1, 100)
	svc.NotifyBillingCreated(ctx, 5, 2, 200)

	list, _, err := svc.GetUserNotifications(ctx, 5, 20, 0)
	if err != nil {
		t.Fatalf("GetUserNotifications returned error: %v", err)
	}
	if err := svc.MarkAsRead(ctx, list[0].ID, 5); err != nil {
		t.Fatalf("MarkAsRead returned error: %v", err)
	}

	unread, err := svc.CountUnread(ctx, 5)
	if err != nil {
		t.Fatalf("CountUnread returned error: %v", err)
	}
	if unread != 1 {
		t.Fatalf("expected 1 unread after marking one read, got %d", unread)
	}

	if err := svc.MarkAllAsRead(ctx, 5); err != nil {
		t.Fatalf("MarkAllAsRead returned error: %v", err)
	}
	unread, _ = svc.CountUnread(ctx, 5)
	if unread != 0 {
		t.Fatalf("expected 0 unread after mark-all, got %d", unread)
	}
}

func TestMarkAsReadIgnoresOtherUsers(t *testing.T) {
	svc, _ := setupTestService(t)
	ctx := context.Background()

	svc.NotifyBillingCreated(ctx, 5, 1, 100)
	list, _, _ := svc.GetUserNotifications(ctx, 5, 20, 0)

	// Wrong owner: no rows match, no error, nothing changes.
	if err := svc.MarkAsRead(ctx, list[0].ID, 99); err != nil {
		t.Fatalf("MarkAsRead returned error: %v", err)
	}
	unread, _ := svc.CountUnread(ctx, 5)
	if unread != 1 {
		t.Fatalf("expected notification to stay unread, got %d unread", unread)
	}
}

func TestDeleteHidesNotification(t *testing.T) {
	svc, _ := setupTestService(t)
	ctx := context.Background()

	svc.NotifyBillingCreated(ctx, 5, 1, 100)
	svc.NotifyBillingCreated(ctx, 5, 2, 200)

	list, _, _ := svc.GetUserNotifications(ctx, 5, 20, 0)
	if err := svc.Delete(ctx, list[0].ID, 5); err != nil {
		t.Fatalf("Delete returned error: %v", err)
	}

	list, unread, err := svc.GetUserNotifications(ctx, 5, 20, 0)
	if err != nil {
		t.Fatalf("GetUserNotifications returned error: %v", err)
	}
	if len(list) != 1 {
		t.Fatalf("expected deleted notification to be hidden, got %d", len(list))
	}
	if unread != 1 {
		t.Fatalf("expected deleted notification excluded from unread count, got %d", unread)
	}
}

func TestCreateFailureDoesNotPanic(t *testing.T) {
	svc, repo := setupTestService(t)
	ctx := context.Background()

	// Drop the table so Create fails; the helper must swallow the error.
	if err := repo.(*repository).db.Migrator().DropTable(&Notification{}); err != nil {
		t.Fatalf("failed to drop table: %v", err)
	}
	svc.NotifyAccountUpdated(ctx, 1)
}
