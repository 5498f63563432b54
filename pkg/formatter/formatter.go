package formatter

import (
	"fmt"
	"strings"
)

// onlyDigits remove tudo que não é dígito
func onlyDigits(value string) string {
	var b strings.Builder
	for _, r := range value {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// FormatCPFCNPJ formata um documento como CPF (xxx.xxx.xxx-xx) quando tem até
// 11 dígitos, ou como CNPJ (xx.xxx.xxx/xxxx-xx) quando tem mais.
// Documentos incompletos são formatados até onde os dígitos alcançam.
func FormatCPFCNPJ(value string) string {
	digits := onlyDigits(value)
	if digits == "" {
		return ""
	}

	if len(digits) <= 11 {
		return formatGroups(digits, []int{3, 3, 3, 2}, []string{".", ".", "-"})
	}
	if len(digits) > 14 {
		digits = digits[:14]
	}
	return formatGroups(digits, []int{2, 3, 3, 4, 2}, []string{".", ".", "/", "-"})
}

// FormatPhone formata um telefone brasileiro como (xx) xxxxx-xxxx
func FormatPhone(value string) string {
	digits := onlyDigits(value)
	if digits == "" {
		return ""
	}
	if len(digits) > 11 {
		digits = digits[:11]
	}

	if len(digits) <= 2 {
		return "(" + digits
	}
	rest := digits[2:]
	if len(rest) <= 5 {
		return fmt.Sprintf("(%s) %s", digits[:2], rest)
	}
	return fmt.Sprintf("(%s) %s-%s", digits[:2], rest[:5], rest[5:])
}

// FormatCurrency formata um valor monetário no padrão pt-BR: R$ 1.234,56
func FormatCurrency(value float64) string {
	negative := value < 0
	if negative {
		value = -value
	}

	plain := fmt.Sprintf("%.2f", value)
	intPart := plain[:len(plain)-3]
	decPart := plain[len(plain)-2:]

	var b strings.Builder
	for i, r := range intPart {
		if i > 0 && (len(intPart)-i)%3 == 0 {
			b.WriteByte('.')
		}
		b.WriteRune(r)
	}

	sign := ""
	if negative {
		sign = "-"
	}
	return fmt.Sprintf("%sR$ %s,%s", sign, b.String(), decPart)
}

// formatGroups intercala grupos de dígitos com separadores, parando quando os
// dígitos acabam
func formatGroups(digits string, groups []int, seps []string) string {
	var b strings.Builder
	pos := 0
	for i, size := range groups {
		if pos >= len(digits) {
			break
		}
		end := pos + size
		if end > len(digits) {
			end = len(digits)
		}
		if i > 0 {
			b.WriteString(seps[i-1])
		}
		b.WriteString(digits[pos:end])
		pos = end
	}
	return b.String()
}
