package customer

import "strings"

// NormalizeDocument remove a máscara do documento, mantendo apenas dígitos
func NormalizeDocument(document string) string {
	var b strings.Builder
	for _, r := range document {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// ValidateDocument valida um CPF (11 dígitos) ou CNPJ (14 dígitos),
// incluindo os dígitos verificadores
func ValidateDocument(document string) error {
	digits := NormalizeDocument(document)

	switch len(digits) {
	case 11:
		if !validCPF(digits) {
			return ErrInvalidDocument
		}
	case 14:
		if !validCNPJ(digits) {
			return ErrInvalidDocument
		}
	default:
		return ErrInvalidDocument
	}

	return nil
}

// allSameDigits rejeita sequências como 000.000.000-00, que passam
// no cálculo dos dígitos verificadores mas não são documentos válidos
func allSameDigits(digits string) bool {
	for i := 1; i < len(digits); i++ {
		if digits[i] != digits[0] {
			return false
		}
	}
	return true
}

func checkDigit(digits string, weights []int) int {
	sum := 0
	for i, w := range weights {
		sum += int(digits[i]-'0') * w
	}
	rest := sum % 11
	if rest < 2 {
		return 0
	}
	return 11 - rest
}

func validCPF(digits string) bool {
	if allSameDigits(digits) {
		return false
	}

	d1 := checkDigit(digits, []int{10, 9, 8, 7, 6, 5, 4, 3, 2})
	if d1 != int(digits[9]-'0') {
		return false
	}

	d2 := checkDigit(digits, []int{11, 10, 9, 8, 7, 6, 5, 4, 3, 2})
	return d2 == int(digits[10]-'0')
}

func validCNPJ(digits string) bool {
	if allSameDigits(digits) {
		return false
	}

	d1 := checkDigit(digits, []int{5, 4, 3, 2, 9, 8, 7, 6, 5, 4, 3, 2})
	if d1 != int(digits[12]-'0') {
		return false
	}

	d2 := checkDigit(digits, []int{6, 5, 4, 3, 2, 9, 8, 7, 6, 5, 4, 3, 2})
	return d2 == int(digits[13]-'0')
}
