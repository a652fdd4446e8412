package render

import (
	"regexp"
	"strings"
)

// PrettyMath rewrites a LaTeX fragment into plain unicode for the terminal.
// It covers the constructs the science prompts actually elicit: fractions,
// sub/superscripts, greek letters, and comparison operators. Anything it does
// not recognize survives with braces and backslashes stripped.
func PrettyMath(latex string) string {
	s := strings.TrimSpace(latex)

	s = rewriteFractions(s)
	s = textCmdRe.ReplaceAllString(s, "$1")
	s = symbolReplacer.Replace(s)

	s = rewriteScripts(s, subScriptRe, subDigits)
	s = rewriteScripts(s, superScriptRe, superDigits)

	s = strings.NewReplacer("{", "", "}", "", "\\", "").Replace(s)
	return strings.TrimSpace(s)
}

var (
	fracRe        = regexp.MustCompile(`\\d?frac\{([^{}]*)\}\{([^{}]*)\}`)
	textCmdRe     = regexp.MustCompile(`\\(?:text|mathrm|mathbf)\{([^{}]*)\}`)
	subScriptRe   = regexp.MustCompile(`_\{([^{}]*)\}|_([0-9])`)
	superScriptRe = regexp.MustCompile(`\^\{([^{}]*)\}|\^([0-9])`)
)

// Longer commands come before their prefixes (\leq before \le) so the
// replacer matches them first.
var symbolReplacer = strings.NewReplacer(
	`\times`, "×",
	`\cdot`, "·",
	`\div`, "÷",
	`\pm`, "±",
	`\approx`, "≈",
	`\leq`, "≤",
	`\geq`, "≥",
	`\neq`, "≠",
	`\le`, "≤",
	`\ge`, "≥",
	`\ne`, "≠",
	`\rightarrow`, "→",
	`\to`, "→",
	`\infty`, "∞",
	`\sqrt`, "√",
	`\alpha`, "α",
	`\beta`, "β",
	`\gamma`, "γ",
	`\delta`, "δ",
	`\Delta`, "Δ",
	`\lambda`, "λ",
	`\mu`, "µ",
	`\pi`, "π",
	`\rho`, "ρ",
	`\omega`, "ω",
	`\Omega`, "Ω",
	`\theta`, "θ",
	`^\circ`, "°",
	`\degree`, "°",
	`\%`, "%",
)

var subDigits = map[rune]rune{
	'0': '₀', '1': '₁', '2': '₂', '3': '₃', '4': '₄',
	'5': '₅', '6': '₆', '7': '₇', '8': '₈', '9': '₉',
}

var superDigits = map[rune]rune{
	'0': '⁰', '1': '¹', '2': '²', '3': '³', '4': '⁴',
	'5': '⁵', '6': '⁶', '7': '⁷', '8': '⁸', '9': '⁹',
	'-': '⁻', '+': '⁺',
}

func rewriteFractions(s string) string {
	// Nested fractions resolve innermost-first across passes.
	for i := 0; i < 3 && fracRe.MatchString(s); i++ {
		s = fracRe.ReplaceAllString(s, "$1/$2")
	}
	return s
}

func rewriteScripts(s string, re *regexp.Regexp, table map[rune]rune) string {
	return re.ReplaceAllStringFunc(s, func(m string) string {
		inner := m
		if strings.HasPrefix(inner, "_") {
			inner = inner[1:]
		} else if strings.HasPrefix(inner, "^") {
			inner = inner[1:]
		}
		inner = strings.Trim(inner, "{}")

		var b strings.Builder
		for _, r := range inner {
			if mapped, ok := table[r]; ok {
				b.WriteRune(mapped)
			} else {
				// Mixed content stays inline as-is.
				return inner
			}
		}
		return b.String()
	})
}
