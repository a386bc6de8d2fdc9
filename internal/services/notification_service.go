package services

import (
	"context"
	"fmt"
	"strings"
	"time"

	"go.uber.org/zap"

	"ecotours/internal/models/db_models"
)

const notificationTimeout = 15 * time.Second

// NotificationServiceInterface emails the site owner and guests about new
// bookings and contact messages. Delivery problems are logged only.
type NotificationServiceInterface interface {
	BookingCreated(ctx context.Context, booking *db_models.Booking, placeName string)
	ContactMessageReceived(ctx context.Context, msg *db_models.UserDetails)
}

type NotificationService struct {
	mail       IMailService
	adminEmail string
	log        *zap.Logger
}

func NewNotificationService(mail IMailService, adminEmail string, log *zap.Logger) NotificationServiceInterface {
	return &NotificationService{mail: mail, adminEmail: adminEmail, log: log}
}

func (n *NotificationService) BookingCreated(ctx context.Context, b *db_models.Booking, placeName string) {
	ctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), notificationTimeout)
	defer cancel()

	arrival := b.ArrivalDate.Format("2006-01-02")
	if n.adminEmail != "" {
		body := fmt.Sprintf(
			"New booking #%d for %s.\nGuest: %s <%s>, phone %s\nArrival: %s\nAdults: %d, children: %d (ages: %s)\nPrice: %.2f\n\n%s",
			b.ID, placeName, b.UserName, b.Email, b.Phone, arrival, b.Adults, b.Children,
			strings.Join(b.ChildrenAges, ", "), b.Price, b.Description)
		n.deliver(ctx, "booking admin notice", n.adminEmail,
			fmt.Sprintf("New booking: %s", placeName), body)
	}

	body := fmt.Sprintf(
		"Dear %s,\nthank you for booking %s with us. We received your request for %s and will confirm it shortly.",
		b.UserName, placeName, arrival)
	n.deliver(ctx, "booking confirmation", b.Email, "We received your booking", body)
}

func (n *NotificationService) ContactMessageReceived(ctx context.Context, msg *db_models.UserDetails) {
	if n.adminEmail == "" {
		return
	}
	ctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), notificationTimeout)
	defer cancel()

	body := fmt.Sprintf("%s <%s> wrote:\n\n%s", msg.UserName, msg.UserEmail, msg.UserMessage)
	n.deliver(ctx, "contact message notice", n.adminEmail,
		fmt.Sprintf("New message from %s", msg.UserName), body)
}

func (n *NotificationService) deliver(ctx context.Context, kind, to, subject, body string) {
	if err := n.mail.SendMailToNotifyUser(ctx, to, subject, body, "", ""); err != nil {
		n.log.Warn("failed to send email",
			zap.String("kind", kind),
			zap.String("to", to),
			zap.Error(err))
	}
}
