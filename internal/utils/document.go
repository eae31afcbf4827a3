package utils

import "strings"

// Digits strips everything but 0-9 from s.
func Digits(s string) string {
	var b strings.Builder
	for _, r := range s {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}

func allSame(digits string) bool {
	for i := 1; i < len(digits); i++ {
		if digits[i] != digits[0] {
			return false
		}
	}
	return true
}

// IsValidCPF validates a Brazilian CPF (11 digits, two check digits).
// Input may be masked or raw; anything with the wrong digit count, or the
// same digit repeated eleven times, is invalid.
func IsValidCPF(cpf string) bool {
	d := Digits(cpf)
	if len(d) != 11 || allSame(d) {
		return false
	}

	// First check digit: weights 10 down to 2 over the first nine digits.
	sum := 0
	for i := 0; i < 9; i++ {
		sum += int(d[i]-'0') * (10 - i)
	}
	digit := 11 - sum%11
	if digit >= 10 {
		digit = 0
	}
	if digit != int(d[9]-'0') {
		return false
	}

	// Second check digit: weights 11 down to 2 over the first ten digits.
	sum = 0
	for i := 0; i < 10; i++ {
		sum += int(d[i]-'0') * (11 - i)
	}
	digit = 11 - sum%11
	if digit >= 10 {
		digit = 0
	}
	return digit == int(d[10]-'0')
}

// IsValidCNPJ validates a Brazilian CNPJ (14 digits, two check digits).
func IsValidCNPJ(cnpj string) bool {
	d := Digits(cnpj)
	if len(d) != 14 || allSame(d) {
		return false
	}
	if cnpjCheckDigit(d, 12) != int(d[12]-'0') {
		return false
	}
	return cnpjCheckDigit(d, 13) == int(d[13]-'0')
}

// cnpjCheckDigit computes the check digit over the first length digits
// using the cyclic weight sequence (starts at length-7, wraps from 2 to 9).
func cnpjCheckDigit(d string, length int) int {
	pos := length - 7
	sum := 0
	for i := 0; i < length; i++ {
		sum += int(d[i]-'0') * pos
		pos--
		if pos < 2 {
			pos = 9
		}
	}
	if sum%11 < 2 {
		return 0
	}
	return 11 - sum%11
}

// FormatCPF applies the 000.000.000-00 mask. Wrong-length input comes
// back as its bare digits.
func FormatCPF(cpf string) string {
	d := Digits(cpf)
	if len(d) != 11 {
		return d
	}
	return d[0:3] + "." + d[3:6] + "." + d[6:9] + "-" + d[9:11]
}

// FormatCNPJ applies the 00.000.000/0000-00 mask.
func FormatCNPJ(cnpj string) string {
	d := Digits(cnpj)
	if len(d) != 14 {
		return d
	}
	return d[0:2] + "." + d[2:5] + "." + d[5:8] + "/" + d[8:12] + "-" + d[12:14]
}

// FormatPhone masks fixed-line (10 digit) and mobile (11 digit) numbers.
func FormatPhone(phone string) string {
	d := Digits(phone)
	switch len(d) {
	case 10:
		return "(" + d[0:2] + ") " + d[2:6] + "-" + d[6:10]
	case 11:
		return "(" + d[0:2] + ") " + d[2:7] + "-" + d[7:11]
	default:
		return d
	}
}

// FormatCEP applies the 00000-000 postal code mask.
func FormatCEP(cep string) string {
	d := Digits(cep)
	if len(d) != 8 {
		return d
	}
	return d[0:5] + "-" + d[5:8]
}
