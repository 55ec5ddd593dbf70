package dto

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPageRequest_DefaultPage(t *testing.T) {
	tests := []struct {
		name string
		in   PageRequest
		want PageRequest
	}{
		{"vacío", PageRequest{}, PageRequest{Limit: DefaultLimit}},
		{"negativos", PageRequest{Limit: -5, Offset: -1}, PageRequest{Limit: DefaultLimit}},
		{"sobre el máximo", PageRequest{Limit: 1000, Offset: 40}, PageRequest{Limit: MaxLimit, Offset: 40}},
		{"válido", PageRequest{Limit: 10, Offset: 30}, PageRequest{Limit: 10, Offset: 30}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := tt.in
			p.DefaultPage()
			assert.Equal(t, tt.want, p)
		})
	}
}

func TestPageRequest_Page(t *testing.T) {
	p := PageRequest{Limit: 20, Offset: 40}
	assert.Equal(t, PageResponse{Limit: 20, Offset: 40, Count: 20, HasMore: true}, p.Page(20))
	assert.Equal(t, PageResponse{Limit: 20, Offset: 40, Count: 7}, p.Page(7))
}
