package entities

import (
	"strings"
	"time"
	"unicode"
)

// Client is a shop customer, identified by a unique CPF/CNPJ.
type Client struct {
	ID        string
	Name      string
	Email     string
	Phone     string
	Address   string
	TaxID     string
	CreatedAt time.Time
}

// NormalizeTaxID strips punctuation from a CPF/CNPJ so "123.456.789-01" and "12345678901" collide.
func NormalizeTaxID(raw string) string {
	var b strings.Builder
	for _, r := range raw {
		if unicode.IsDigit(r) {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// IsValidTaxID accepts 11 digit CPFs and 14 digit CNPJs.
func IsValidTaxID(raw string) bool {
	n := len(NormalizeTaxID(raw))
	return n == 11 || n == 14
}
