package dto

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestProductRequest_Validate(t *testing.T) {
	tests := []struct {
		name      string
		request   ProductRequest
		shouldErr bool
	}{
		{"valid", ProductRequest{Title: "Dune", Price: 9.99, Quantity: 3}, false},
		{"free and out of stock", ProductRequest{Title: "Dune"}, false},
		{"missing title", ProductRequest{Price: 1}, true},
		{"blank title", ProductRequest{Title: "  "}, true},
		{"negative price", ProductRequest{Title: "Dune", Price: -0.01}, true},
		{"negative quantity", ProductRequest{Title: "Dune", Quantity: -1}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.request.Validate()
			if tt.shouldErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
