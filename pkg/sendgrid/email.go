package sendgrid

import (
	"context"
	"fmt"
	"strings"

	"github.com/sendgrid/sendgrid-go"
	"github.com/sendgrid/sendgrid-go/helpers/mail"

	"github.com/revive-recycling/pickup-platform/internal/models"
)

type EmailService interface {
	SendPickupConfirmation(ctx context.Context, toEmail, toName string, pickup *models.Pickup) error
}

type emailService struct {
	client    *sendgrid.Client
	fromEmail string
	fromName  string
}

func NewEmailService(apiKey string, fromEmail string, fromName string) EmailService {
	return &emailService{client: sendgrid.NewSendClient(apiKey), fromEmail: fromEmail, fromName: fromName}
}

// SendPickupConfirmation implements EmailService.
func (e *emailService) SendPickupConfirmation(ctx context.Context, toEmail, toName string, pickup *models.Pickup) error {

	from := mail.NewEmail(e.fromName, e.fromEmail)
	to := mail.NewEmail(toName, toEmail)

	message := mail.NewV3Mail()
	message.SetFrom(from)

	personalization := mail.NewPersonalization()
	personalization.AddTos(to)
	personalization.Subject = "Your pickup is scheduled"
	message.AddPersonalizations(personalization)

	message.AddContent(mail.NewContent("text/plain", confirmationBody(pickup)))

	response, err := e.client.SendWithContext(ctx, message)
	if err != nil {
		return err
	}

	if response.StatusCode >= 400 {
		return fmt.Errorf("failed to send email, status code: %d", response.StatusCode)
	}

	return nil
}

func confirmationBody(pickup *models.Pickup) string {

	var b strings.Builder

	fmt.Fprintf(&b, "Your recycling pickup is scheduled for %s (%s) at %s.\n\n", pickup.PickupDate, pickup.TimeSlot, pickup.Address)
	b.WriteString("Items:\n")

	for _, item := range pickup.Items {
		fmt.Fprintf(&b, "  - %s (%s): %d %s x %s = %s\n",
			item.ItemName, item.CategoryName, item.Quantity, item.Unit, item.Rate, item.EstimatedAmount)
	}

	fmt.Fprintf(&b, "\nEstimated total: %s\n", pickup.GrandTotal)
	b.WriteString("\nThank you for recycling with Revive!\n")

	return b.String()
}
