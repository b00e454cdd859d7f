package services

import (
	"context"
	"fmt"
	"log"
	"net/smtp"

	"github.com/Rakhulsr/figurine-shop/app/models"
	"github.com/Rakhulsr/figurine-shop/app/utils/format"
)

// OrderNotifier tells a customer their order moved to a new status.
type OrderNotifier interface {
	NotifyOrderStatus(ctx context.Context, order models.Message) error
}

type Config struct {
	Host     string
	Port     string
	Username string
	Password string
	From     string
}

type Mailer struct {
	config Config
	send   func(addr string, a smtp.Auth, from string, to []string, msg []byte) error
}

func NewMailer(cfg Config) *Mailer {
	return &Mailer{
		config: cfg,
		send:   smtp.SendMail,
	}
}

func (m *Mailer) SendHTMLEmail(to, subject, htmlBody string) error {
	headers := [][2]string{
		{"From", m.config.From},
		{"To", to},
		{"Subject", subject},
		{"MIME-Version", "1.0"},
		{"Content-Type", "text/html; charset=\"UTF-8\""},
	}

	var msg string
	for _, h := range headers {
		msg += fmt.Sprintf("%s: %s\r\n", h[0], h[1])
	}
	msg += "\r\n" + htmlBody

	auth := smtp.PlainAuth("", m.config.Username, m.config.Password, m.config.Host)
	addr := fmt.Sprintf("%s:%s", m.config.Host, m.config.Port)

	if err := m.send(addr, auth, m.config.From, []string{to}, []byte(msg)); err != nil {
		log.Printf("Mailer.SendHTMLEmail: failed to send to %s: %v", to, err)
		return fmt.Errorf("failed to send email: %w", err)
	}
	return nil
}

func (m *Mailer) NotifyOrderStatus(ctx context.Context, order models.Message) error {
	if order.Email == "" {
		return nil
	}
	subject := fmt.Sprintf("Your order for %s is %s", order.ProductName, order.OrderStatus)
	return m.SendHTMLEmail(order.Email, subject, BuildOrderStatusEmailBody(order))
}

func BuildOrderStatusEmailBody(order models.Message) string {
	total := "-"
	if order.OrderPrice != nil {
		total = format.Price(*order.OrderPrice)
	}
	variant := ""
	if order.SelectedVariant != "" {
		variant = fmt.Sprintf(" (%s)", order.SelectedVariant)
	}
	return fmt.Sprintf(`
        <!DOCTYPE html>
        <html>
        <head>
            <style>
                body { font-family: sans-serif; color: #333; }
                .status { font-size: 20px; font-weight: bold; color: #007bff; }
            </style>
        </head>
        <body>
            <p>Hi %s,</p>
            <p>Your order status changed to <span class="status">%s</span>.</p>
            <p>%d x %s%s, total %s</p>
            <p>Thank you for shopping with us.</p>
        </body>
        </html>
    `, order.Name, order.OrderStatus, order.Quantity, order.ProductName, variant, total)
}
