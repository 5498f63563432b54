package product

import "strings"

// Filter filtra uma lista de produtos já carregada por nome, SKU ou código de
// barras. Nome e SKU são comparados sem diferenciar maiúsculas; o código de
// barras por substring simples. Termo vazio retorna a lista completa.
func Filter(produtos []*Product, term string) []*Product {
	term = strings.TrimSpace(term)
	if term == "" {
		return produtos
	}

	lower := strings.ToLower(term)
	matches := make([]*Product, 0, len(produtos))
	for _, p := range produtos {
		if strings.Contains(strings.ToLower(p.Name), lower) ||
			strings.Contains(strings.ToLower(p.SKU), lower) ||
			(p.Barcode != "" && strings.Contains(p.Barcode, term)) {
			matches = append(matches, p)
		}
	}
	return matches
}

// LineDescription monta a descrição de item de O.S. a partir de um produto:
// nome, depois o sufixo de SKU, depois o de código de barras, nessa ordem.
func LineDescription(p *Product) string {
	var b strings.Builder
	b.WriteString(p.Name)
	if p.SKU != "" {
		b.WriteString(" (SKU: ")
		b.WriteString(p.SKU)
		b.WriteString(")")
	}
	if p.Barcode != "" {
		b.WriteString(" (Código: ")
		b.WriteString(p.Barcode)
		b.WriteString(")")
	}
	return b.String()
}
