package formatter

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFormatCPF(t *testing.T) {
	assert.Equal(t, "123.456.789-09", FormatCPFCNPJ("12345678909"))
	assert.Equal(t, "123.456.789-09", FormatCPFCNPJ("123.456.789-09"))
}

func TestFormatCNPJ(t *testing.T) {
	assert.Equal(t, "12.345.678/0001-95", FormatCPFCNPJ("12345678000195"))
	assert.Equal(t, "12.345.678/0001-95", FormatCPFCNPJ("12.345.678/0001-95"))
}

func TestFormatCPFCNPJPartial(t *testing.T) {
	assert.Equal(t, "", FormatCPFCNPJ(""))
	assert.Equal(t, "123", FormatCPFCNPJ("123"))
	assert.Equal(t, "123.456", FormatCPFCNPJ("123456"))
}

func TestFormatPhone(t *testing.T) {
	assert.Equal(t, "(11) 98765-4321", FormatPhone("11987654321"))
	assert.Equal(t, "(11) 98765-4321", FormatPhone("(11) 98765-4321"))
	assert.Equal(t, "(11) 87654-321", FormatPhone("1187654321"))
	assert.Equal(t, "", FormatPhone(""))
}

func TestFormatCurrency(t *testing.T) {
	assert.Equal(t, "R$ 0,00", FormatCurrency(0))
	assert.Equal(t, "R$ 95,00", FormatCurrency(95))
	assert.Equal(t, "R$ 1.234,56", FormatCurrency(1234.56))
	assert.Equal(t, "R$ 1.234.567,89", FormatCurrency(1234567.89))
	assert.Equal(t, "-R$ 10,50", FormatCurrency(-10.5))
}
