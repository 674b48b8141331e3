package services

import (
	"bytes"
	"context"
	"fmt"
	"html/template"

	"github.com/google/uuid"
	"github.com/resend/resend-go/v2"
	"go.uber.org/zap"
)

// NotificationService sends transactional email through Resend
type NotificationService struct {
	client    *resend.Client
	logger    *zap.Logger
	fromEmail string
	fromName  string
}

// NewNotificationService creates a new notification service
func NewNotificationService(apiKey string, fromEmail string, fromName string, logger *zap.Logger) *NotificationService {
	client := resend.NewClient(apiKey)

	if logger == nil {
		logger = zap.L()
	}
	return &NotificationService{
		client:    client,
		logger:    logger,
		fromEmail: fromEmail,
		fromName:  fromName,
	}
}

// OrderConfirmationParams contains the data for the confirmation email
type OrderConfirmationParams struct {
	To            string
	CustomerName  string
	PaymentID     int64
	PaymentStatus string
	Amount        float64
	Items         []OrderConfirmationItem
}

// OrderConfirmationItem is one line of the order summary
type OrderConfirmationItem struct {
	Title     string
	Quantity  int
	UnitPrice float64
}

// Total returns the line total for the item
func (i OrderConfirmationItem) Total() float64 {
	return float64(i.Quantity) * i.UnitPrice
}

// SendOrderConfirmation renders and sends the order confirmation email
func (s *NotificationService) SendOrderConfirmation(ctx context.Context, params OrderConfirmationParams) error {
	if params.To == "" {
		return fmt.Errorf("no recipient for order confirmation")
	}

	htmlContent, err := renderTemplate(orderConfirmationHTML, params)
	if err != nil {
		return fmt.Errorf("failed to render HTML template: %w", err)
	}
	textContent, err := renderTemplate(orderConfirmationText, params)
	if err != nil {
		return fmt.Errorf("failed to render text template: %w", err)
	}

	from := fmt.Sprintf("%s <%s>", s.fromName, s.fromEmail)
	request := &resend.SendEmailRequest{
		From:    from,
		To:      []string{params.To},
		Subject: fmt.Sprintf("Pedido confirmado - pagamento #%d", params.PaymentID),
		Html:    htmlContent,
		Text:    textContent,
		Headers: map[string]string{
			"X-Entity-Ref-ID": uuid.New().String(),
		},
		Tags: []resend.Tag{
			{Name: "category", Value: "order_confirmation"},
		},
	}

	sent, err := s.client.Emails.Send(request)
	if err != nil {
		s.logger.Error("failed to send order confirmation",
			zap.Error(err),
			zap.String("to", params.To),
			zap.Int64("payment_id", params.PaymentID))
		return fmt.Errorf("failed to send email: %w", err)
	}

	s.logger.Info("order confirmation sent",
		zap.String("email_id", sent.Id),
		zap.String("to", params.To),
		zap.Int64("payment_id", params.PaymentID))

	return nil
}

// renderTemplate parses and executes a template with the given data
func renderTemplate(templateStr string, data OrderConfirmationParams) (string, error) {
	tmpl, err := template.New("email").Parse(templateStr)
	if err != nil {
		return "", err
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		return "", err
	}

	return buf.String(), nil
}

const orderConfirmationHTML = `
<!DOCTYPE html>
<html>
<head>
    <style>
        body { font-family: Arial, sans-serif; line-height: 1.6; color: #333; }
        .container { max-width: 600px; margin: 0 auto; padding: 20px; }
        .header { background-color: #28a745; color: white; padding: 20px; text-align: center; }
        .content { padding: 20px; }
        table { width: 100%; border-collapse: collapse; }
        th, td { padding: 8px; border-bottom: 1px solid #ddd; text-align: left; }
        .footer { text-align: center; padding: 20px; font-size: 12px; color: #666; }
    </style>
</head>
<body>
    <div class="container">
        <div class="header">
            <h2>Pedido confirmado!</h2>
        </div>
        <div class="content">
            <p>Olá {{.CustomerName}},</p>
            <p>Recebemos o seu pagamento de <strong>R$ {{printf "%.2f" .Amount}}</strong> (pagamento #{{.PaymentID}}, situação: {{.PaymentStatus}}).</p>
            {{if .Items}}
            <table>
                <tr><th>Produto</th><th>Qtde</th><th>Preço</th><th>Total</th></tr>
                {{range .Items}}
                <tr><td>{{.Title}}</td><td>{{.Quantity}}</td><td>R$ {{printf "%.2f" .UnitPrice}}</td><td>R$ {{printf "%.2f" .Total}}</td></tr>
                {{end}}
            </table>
            {{end}}
            <p>Obrigado por comprar na Five Store.</p>
        </div>
        <div class="footer">
            <p>Five Store</p>
        </div>
    </div>
</body>
</html>`

const orderConfirmationText = `Olá {{.CustomerName}},

Recebemos o seu pagamento de R$ {{printf "%.2f" .Amount}} (pagamento #{{.PaymentID}}, situação: {{.PaymentStatus}}).
{{range .Items}}
- {{.Title}} x{{.Quantity}}: R$ {{printf "%.2f" .Total}}{{end}}

Obrigado por comprar na Five Store.`
