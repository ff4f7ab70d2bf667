package service

import (
	"net/url"
	"strings"
	"testing"

	"github.com/Ibrahima96/pacao/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildLinkTemplateOrder(t *testing.T) {
	svc := NewOrderService("221779883924")

	link, err := svc.BuildLink(&model.OrderRequest{
		Name:     "Jean D.",
		Service:  "Impression Grand Format",
		Quantity: "100 affiches",
		Details:  "Format A2, couleur",
	}, "")
	require.NoError(t, err)

	// All four values present, in template order
	msg := link.Message
	iName := strings.Index(msg, "Jean D.")
	iService := strings.Index(msg, "Impression Grand Format")
	iQty := strings.Index(msg, "100 affiches")
	iDetails := strings.Index(msg, "Format A2, couleur")
	require.NotEqual(t, -1, iName)
	require.NotEqual(t, -1, iService)
	require.NotEqual(t, -1, iQty)
	require.NotEqual(t, -1, iDetails)
	assert.Less(t, iName, iService)
	assert.Less(t, iService, iQty)
	assert.Less(t, iQty, iDetails)

	// Deep link targets the configured number and carries the encoded text
	assert.True(t, strings.HasPrefix(link.URL, "https://wa.me/221779883924?text="))

	encoded := strings.TrimPrefix(link.URL, "https://wa.me/221779883924?text=")
	decoded, err := url.QueryUnescape(encoded)
	require.NoError(t, err)
	assert.Equal(t, msg, decoded)
}

func TestBuildLinkEncodesFrenchText(t *testing.T) {
	svc := NewOrderService("221779883924")

	link, err := svc.BuildLink(&model.OrderRequest{
		Name:    "Société Éclair",
		Service: "Création graphique",
		Details: "Besoin d'un devis détaillé",
	}, "")
	require.NoError(t, err)

	// Accented characters never appear raw in the URL
	query := link.URL[strings.Index(link.URL, "?text=")+len("?text="):]
	assert.NotContains(t, query, "é")
	assert.NotContains(t, query, "É")
	assert.Contains(t, query, "%C3%A9") // é
}

func TestBuildLinkOmitsEmptyQuantity(t *testing.T) {
	svc := NewOrderService("221779883924")

	link, err := svc.BuildLink(&model.OrderRequest{
		Name:    "Jean D.",
		Service: "Flocage",
		Details: "10 polos",
	}, "")
	require.NoError(t, err)
	assert.NotContains(t, link.Message, "Quantité souhaitée")
}

func TestBuildLinkRequiredFields(t *testing.T) {
	svc := NewOrderService("221779883924")

	tests := []model.OrderRequest{
		{Service: "Flocage", Details: "d"},
		{Name: "Jean", Details: "d"},
		{Name: "Jean", Service: "Flocage"},
		{Name: "   ", Service: "Flocage", Details: "d"},
	}
	for _, req := range tests {
		_, err := svc.BuildLink(&req, "")
		assert.ErrorIs(t, err, ErrIncompleteOrder)
	}
}

func TestBuildLinkNumberOverride(t *testing.T) {
	svc := NewOrderService("221779883924")

	link, err := svc.BuildLink(&model.OrderRequest{
		Name:    "Jean D.",
		Service: "Flocage",
		Details: "10 polos",
	}, "221700000000")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(link.URL, "https://wa.me/221700000000?"))
}
