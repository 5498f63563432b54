package product

import (
	"math/rand"
	"strings"
)

const skuSuffixLength = 4

const skuCharset = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"

// GenerateSKU gera um SKU a partir do nome e do código de barras: os três
// primeiros caracteres do nome em maiúsculas, seguidos dos últimos quatro
// caracteres do código de barras quando presente, ou de quatro caracteres
// alfanuméricos aleatórios. Unicidade é melhor-esforço, suficiente para o
// estoque de uma única loja.
func GenerateSKU(name, barcode string) string {
	prefix := []rune(strings.ToUpper(strings.TrimSpace(name)))
	if len(prefix) > 3 {
		prefix = prefix[:3]
	}

	suffix := skuSuffixFromBarcode(barcode)
	if suffix == "" {
		suffix = randomSKUSuffix()
	}

	return string(prefix) + suffix
}

func skuSuffixFromBarcode(barcode string) string {
	barcode = strings.TrimSpace(barcode)
	if barcode == "" {
		return ""
	}
	if len(barcode) > skuSuffixLength {
		barcode = barcode[len(barcode)-skuSuffixLength:]
	}
	return strings.ToUpper(barcode)
}

func randomSKUSuffix() string {
	b := make([]byte, skuSuffixLength)
	for i := range b {
		b[i] = skuCharset[rand.Intn(len(skuCharset))]
	}
	return string(b)
}
