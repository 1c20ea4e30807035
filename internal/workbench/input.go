package workbench

import (
	"fmt"
	"strconv"
	"strings"
	"unicode"

	"textkit/internal/calc"
	"textkit/internal/cipher"
	"textkit/internal/model"
	"textkit/internal/seq"
	"textkit/internal/textops"
)

// evalTool runs one tool over raw user input and returns the rendered
// output together with the shift that was applied (caesar only).
func evalTool(tool, input, shiftRaw string) (string, int, error) {
	switch tool {
	case model.ToolCapitalize:
		return textops.Capitalize(input), 0, nil
	case model.ToolReverse:
		return textops.Reverse(input), 0, nil
	case model.ToolCaesar:
		shift, err := parseShift(shiftRaw)
		if err != nil {
			return "", 0, err
		}
		return cipher.Encode(input, shift), shift, nil
	case model.ToolCalc:
		out, err := evalExpression(input)
		return out, 0, err
	case model.ToolAnalyze:
		values, err := parseNumbers(input)
		if err != nil {
			return "", 0, err
		}
		return formatSummary(seq.Analyze(values)), 0, nil
	}
	return "", 0, fmt.Errorf("unknown tool %q", tool)
}

func parseShift(raw string) (int, error) {
	raw = strings.TrimSpace(raw)
	shift, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("invalid shift %q (use an integer)", raw)
	}
	return shift, nil
}

func evalExpression(input string) (string, error) {
	fields := strings.Fields(input)
	if len(fields) != 3 {
		return "", fmt.Errorf("invalid expression (use: <a> <op> <b>)")
	}
	a, err := strconv.ParseFloat(fields[0], 64)
	if err != nil {
		return "", fmt.Errorf("invalid number %q", fields[0])
	}
	b, err := strconv.ParseFloat(fields[2], 64)
	if err != nil {
		return "", fmt.Errorf("invalid number %q", fields[2])
	}
	var result float64
	switch fields[1] {
	case "+", "add":
		result, err = calc.Add(a, b)
	case "-", "sub":
		result, err = calc.Subtract(a, b)
	case "*", "x", "mul":
		result, err = calc.Multiply(a, b)
	case "/", "div":
		result, err = calc.Divide(a, b)
	default:
		return "", fmt.Errorf("unknown operator %q (use + - * /)", fields[1])
	}
	if err != nil {
		return "", err
	}
	return formatNumber(result), nil
}

func parseNumbers(input string) ([]float64, error) {
	fields := strings.FieldsFunc(input, func(r rune) bool {
		return r == ',' || unicode.IsSpace(r)
	})
	values := make([]float64, 0, len(fields))
	for _, field := range fields {
		v, err := strconv.ParseFloat(field, 64)
		if err != nil {
			return nil, fmt.Errorf("invalid number %q", field)
		}
		values = append(values, v)
	}
	return values, nil
}

func formatSummary(s seq.Summary) string {
	return fmt.Sprintf("average=%s min=%s max=%s length=%d",
		formatOptional(s.Average), formatOptional(s.Min), formatOptional(s.Max), s.Length)
}

func formatOptional(v *float64) string {
	if v == nil {
		return "-"
	}
	return formatNumber(*v)
}

func formatNumber(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}
