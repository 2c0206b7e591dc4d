package productcontroller

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validInput() ProductInput {
	return ProductInput{
		NameFr:    "Boîte pâtissière",
		NameAr:    "علبة حلويات",
		BasePrice: 150,
		Type:      "PACKAGING",
	}
}

func TestValidateProductInput(t *testing.T) {
	assert.NoError(t, validateProductInput(validInput()))
}

func TestValidateProductInputRejections(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*ProductInput)
	}{
		{"missing name", func(p *ProductInput) { p.NameFr = "  " }},
		{"zero price", func(p *ProductInput) { p.BasePrice = 0 }},
		{"negative price", func(p *ProductInput) { p.BasePrice = -10 }},
		{"unknown type", func(p *ProductInput) { p.Type = "GADGET" }},
		{"empty type", func(p *ProductInput) { p.Type = "" }},
		{"hasVariants without variants", func(p *ProductInput) { p.HasVariants = true }},
		{"variants without hasVariants", func(p *ProductInput) {
			p.Variants = []VariantInput{{NameFr: "25cm", Price: 200}}
		}},
		{"unnamed variant", func(p *ProductInput) {
			p.HasVariants = true
			p.Variants = []VariantInput{{NameFr: " ", Price: 200}}
		}},
		{"variant without price", func(p *ProductInput) {
			p.HasVariants = true
			p.Variants = []VariantInput{{NameFr: "25cm"}}
		}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			input := validInput()
			tt.mutate(&input)
			assert.Error(t, validateProductInput(input))
		})
	}
}

func TestValidateProductInputWithVariants(t *testing.T) {
	input := validInput()
	input.HasVariants = true
	input.Variants = []VariantInput{
		{NameFr: "25cm", NameAr: "٢٥ سم", Price: 200},
		{NameFr: "30cm", Price: 280},
	}
	assert.NoError(t, validateProductInput(input))
}

func TestBuildVariants(t *testing.T) {
	variants := buildVariants([]VariantInput{
		{NameFr: " 25cm ", NameAr: " ٢٥ سم ", Price: 200},
	})
	require.Len(t, variants, 1)
	assert.Equal(t, "25cm", variants[0].NameFr)
	assert.Equal(t, "٢٥ سم", variants[0].NameAr)
	assert.Equal(t, 200.0, variants[0].Price)
}
