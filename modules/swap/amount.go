package swap

import (
	"errors"
	"fmt"
	"math"
	"regexp"
	"strings"

	"github.com/expr-lang/expr"
	"github.com/shopspring/decimal"
)

// ErrInvalidAmount indicates the amount input could not be read as a
// non-negative number.
var ErrInvalidAmount = errors.New("invalid amount")

var numberRegex = regexp.MustCompile(`[0-9]+(?:[0-9\s ,.]*[0-9])?`)

var amountEnv = map[string]interface{}{
	"abs":   func(x float64) float64 { return math.Abs(x) },
	"round": func(x float64) float64 { return math.Round(x) },
	"floor": func(x float64) float64 { return math.Floor(x) },
	"ceil":  func(x float64) float64 { return math.Ceil(x) },
	"min":   func(x, y float64) float64 { return math.Min(x, y) },
	"max":   func(x, y float64) float64 { return math.Max(x, y) },
}

// NormalizeNumberString strips spacing and resolves mixed thousand/decimal
// separators, so "1 234,56" and "1,234.56" both become "1234.56".
func NormalizeNumberString(s string) string {
	s = strings.ReplaceAll(s, " ", "")
	s = strings.ReplaceAll(s, " ", "")

	dotIdx := strings.LastIndex(s, ".")
	commaIdx := strings.LastIndex(s, ",")

	if dotIdx != -1 && commaIdx != -1 {
		if commaIdx > dotIdx {
			s = strings.ReplaceAll(s, ".", "")
			s = strings.Replace(s, ",", ".", 1)
		} else {
			s = strings.ReplaceAll(s, ",", "")
		}
	} else if commaIdx != -1 {
		parts := strings.Split(s, ",")
		if len(parts) > 1 {
			lastPart := parts[len(parts)-1]
			if len(lastPart) >= 1 && len(lastPart) <= 3 && regexp.MustCompile(`^\d+$`).MatchString(lastPart) {
				if strings.Count(s, ",") == 1 {
					s = strings.Join(parts[:len(parts)-1], "") + "." + lastPart
				} else {
					s = strings.ReplaceAll(s, ",", "")
				}
			} else {
				s = strings.ReplaceAll(s, ",", "")
			}
		}
	}
	return s
}

// ParseAmount reads user amount input into a non-negative decimal. Plain
// numbers are parsed directly after separator normalization; anything else
// is tried as an arithmetic expression, so "100*1.5" quotes as 150.
func ParseAmount(raw string) (decimal.Decimal, error) {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return decimal.Zero, fmt.Errorf("empty input: %w", ErrInvalidAmount)
	}

	normalized := numberRegex.ReplaceAllStringFunc(trimmed, NormalizeNumberString)

	if d, err := decimal.NewFromString(normalized); err == nil {
		if d.IsNegative() {
			return decimal.Zero, fmt.Errorf("negative amount %q: %w", raw, ErrInvalidAmount)
		}
		return d, nil
	}

	return evalAmountExpression(raw, normalized)
}

func evalAmountExpression(raw, normalized string) (decimal.Decimal, error) {
	program, err := expr.Compile(normalized, expr.Env(amountEnv))
	if err != nil {
		return decimal.Zero, fmt.Errorf("parsing amount %q: %w", raw, ErrInvalidAmount)
	}

	output, err := expr.Run(program, amountEnv)
	if err != nil {
		return decimal.Zero, fmt.Errorf("evaluating amount %q: %w", raw, ErrInvalidAmount)
	}

	var d decimal.Decimal
	switch v := output.(type) {
	case float64:
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return decimal.Zero, fmt.Errorf("amount %q is not finite: %w", raw, ErrInvalidAmount)
		}
		d = decimal.NewFromFloat(v)
	case int:
		d = decimal.NewFromInt(int64(v))
	case int64:
		d = decimal.NewFromInt(v)
	default:
		return decimal.Zero, fmt.Errorf("amount %q is not numeric: %w", raw, ErrInvalidAmount)
	}

	if d.IsNegative() {
		return decimal.Zero, fmt.Errorf("negative amount %q: %w", raw, ErrInvalidAmount)
	}
	return d, nil
}
