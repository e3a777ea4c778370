package reporting

import (
	"strconv"
	"strings"

	"github.com/vfg2006/agency-os-api/internal/domain"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// Formatter formata valores monetários com o separador de milhar do idioma configurado.
// O padrão é turco ("₺3.000"); com "en" o resultado fica "₺3,000".
type Formatter struct {
	printer *message.Printer
}

func NewFormatter(locale string) *Formatter {
	tag, err := language.Parse(locale)
	if err != nil {
		tag = language.Turkish
	}

	return &Formatter{printer: message.NewPrinter(tag)}
}

// Currency formata um valor inteiro como moeda
func (f *Formatter) Currency(amount int64) string {
	return domain.CurrencySymbol + f.Number(amount)
}

// Number formata um inteiro com separador de milhar
func (f *Formatter) Number(n int64) string {
	return f.printer.Sprintf("%d", n)
}

// Ratio formata o ROAS com duas casas decimais seguido de "x"
func Ratio(value float64) string {
	return strconv.FormatFloat(value, 'f', 2, 64) + "x"
}

// ParseAmount remove tudo que não for dígito e converte o restante.
// Valores vazios ou inválidos viram zero.
func ParseAmount(value string) int64 {
	var digits strings.Builder
	for _, r := range value {
		if r >= '0' && r <= '9' {
			digits.WriteRune(r)
		}
	}

	if digits.Len() == 0 {
		return 0
	}

	n, err := strconv.ParseInt(digits.String(), 10, 64)
	if err != nil {
		return 0
	}
	return n
}

// ParseRatio remove o primeiro "x" e lê o prefixo numérico ("3.20x" vira 3.2).
// Valores sem prefixo numérico viram zero.
func ParseRatio(value string) float64 {
	value = strings.Replace(value, "x", "", 1)
	value = strings.TrimLeft(value, " \t\r\n")

	end := 0
	if end < len(value) && (value[end] == '+' || value[end] == '-') {
		end++
	}

	seenDigit := false
	seenDot := false
scan:
	for ; end < len(value); end++ {
		c := value[end]
		switch {
		case c >= '0' && c <= '9':
			seenDigit = true
		case c == '.' && !seenDot:
			seenDot = true
		default:
			break scan
		}
	}

	if !seenDigit {
		return 0
	}

	// expoente só conta quando tem ao menos um dígito: "1e3" é 1000, "1e" é 1
	if end < len(value) && (value[end] == 'e' || value[end] == 'E') {
		exp := end + 1
		if exp < len(value) && (value[exp] == '+' || value[exp] == '-') {
			exp++
		}
		digits := exp
		for digits < len(value) && value[digits] >= '0' && value[digits] <= '9' {
			digits++
		}
		if digits > exp {
			end = digits
		}
	}

	n, err := strconv.ParseFloat(strings.TrimSuffix(value[:end], "."), 64)
	if err != nil {
		return 0
	}
	return n
}
