package middleware

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRouteEventName(t *testing.T) {
	tests := []struct {
		method, path, want string
	}{
		{"POST", "/api/v1/companies/:company_id/payments", "post_companies_payments"},
		{"POST", "/api/v1/companies/:company_id/credit-cards/:card_id/imports", "post_companies_credit_cards_imports"},
		{"GET", "/api/v1/companies", "get_companies"},
		{"GET", "", ""},
	}
	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			assert.Equal(t, tt.want, routeEventName(tt.method, tt.path))
		})
	}
}
