package service

import (
	"errors"
	"net/url"
	"strings"

	"github.com/Ibrahima96/pacao/internal/model"
)

var ErrIncompleteOrder = errors.New("name, service and details are required")

// OrderService turns a quote request into a pre-filled WhatsApp deep
// link. One-way handoff: nothing is stored.
type OrderService struct {
	defaultNumber string
}

func NewOrderService(defaultNumber string) *OrderService {
	return &OrderService{defaultNumber: defaultNumber}
}

// BuildLink renders the message template and wraps it in a wa.me URL.
// number overrides the configured default when non-empty (site_content
// key whatsapp_number).
func (s *OrderService) BuildLink(req *model.OrderRequest, number string) (*model.OrderLink, error) {
	name := strings.TrimSpace(req.Name)
	details := strings.TrimSpace(req.Details)
	quantity := strings.TrimSpace(req.Quantity)
	if name == "" || req.Service == "" || details == "" {
		return nil, ErrIncompleteOrder
	}

	var b strings.Builder
	b.WriteString("*Nouvelle demande via le site web* 🚀\n\n")
	b.WriteString("👤 *Nom / Entreprise :* " + name + "\n")
	b.WriteString("🛠 *Service concerné :* " + req.Service + "\n")
	if quantity != "" {
		b.WriteString("📊 *Quantité souhaitée :* " + quantity + "\n")
	}
	b.WriteString("\n📝 *Détails de la demande :*\n" + details)

	if number == "" {
		number = s.defaultNumber
	}

	message := b.String()
	link := "https://wa.me/" + number + "?text=" + url.QueryEscape(message)
	return &model.OrderLink{URL: link, Message: message}, nil
}
