package dataprocessing

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"shipfill/pkg/contracts/domain"
)

func TestHasData(t *testing.T) {
	empty := domain.EmptyCell()

	tests := []struct {
		name                      string
		detail, color, price, qty domain.CellValue
		want                      bool
	}{
		{
			name:   "all empty",
			detail: empty, color: empty, price: empty, qty: empty,
			want: false,
		},
		{
			name:   "whitespace only text does not count",
			detail: domain.TextCell("   "), color: empty, price: empty, qty: empty,
			want: false,
		},
		{
			name:   "single text cell",
			detail: domain.TextCell("sleeve"), color: empty, price: empty, qty: empty,
			want: true,
		},
		{
			name:   "zero is still data",
			detail: empty, color: empty, price: domain.NumberCell(0), qty: empty,
			want: true,
		},
		{
			name:   "bool counts as data",
			detail: empty, color: empty, price: empty, qty: domain.BoolCell(false),
			want: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, HasData(tt.detail, tt.color, tt.price, tt.qty))
		})
	}
}

func TestIsValidNumeric(t *testing.T) {
	tests := []struct {
		name       string
		price, qty domain.CellValue
		want       bool
	}{
		{
			name:  "both numeric",
			price: domain.NumberCell(12.5), qty: domain.NumberCell(100),
			want: true,
		},
		{
			name:  "numeric-looking text price is rejected",
			price: domain.TextCell("50"), qty: domain.NumberCell(100),
			want: false,
		},
		{
			name:  "numeric-looking text quantity is rejected",
			price: domain.NumberCell(50), qty: domain.TextCell("100"),
			want: false,
		},
		{
			name:  "bool is not numeric",
			price: domain.BoolCell(true), qty: domain.NumberCell(1),
			want: false,
		},
		{
			name:  "empty is not numeric",
			price: domain.EmptyCell(), qty: domain.NumberCell(1),
			want: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, IsValidNumeric(tt.price, tt.qty))
		})
	}
}
