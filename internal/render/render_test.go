package render

import (
	"testing"
)

func TestParse_BoldAndItalic(t *testing.T) {
	nodes := Parse("**Tốc độ** là *đại lượng* vật lý")
	if len(nodes) != 4 {
		t.Fatalf("expected 4 nodes, got %d: %+v", len(nodes), nodes)
	}
	if nodes[0].Kind != KindBold || nodes[0].Content != "Tốc độ" {
		t.Fatalf("unexpected first node: %+v", nodes[0])
	}
	if nodes[2].Kind != KindItalic || nodes[2].Content != "đại lượng" {
		t.Fatalf("unexpected italic node: %+v", nodes[2])
	}
}

func TestParse_MathSpans(t *testing.T) {
	nodes := Parse("Công thức: $v = s/t$ và $$F = ma$$")
	var inline, block int
	for _, n := range nodes {
		switch n.Kind {
		case KindInlineMath:
			inline++
			if n.Content != "v = s/t" {
				t.Fatalf("unexpected inline math: %q", n.Content)
			}
		case KindBlockMath:
			block++
			if n.Content != "F = ma" {
				t.Fatalf("unexpected block math: %q", n.Content)
			}
		}
	}
	if inline != 1 || block != 1 {
		t.Fatalf("expected 1 inline and 1 block span, got %d/%d", inline, block)
	}
}

func TestParse_BlockMathNotSplitAsInline(t *testing.T) {
	nodes := Parse("$$a\nb$$")
	if len(nodes) != 1 || nodes[0].Kind != KindBlockMath {
		t.Fatalf("multiline block math mishandled: %+v", nodes)
	}
}

func TestParse_Bullets(t *testing.T) {
	nodes := Parse("Các ý chính:\n* Định nghĩa\n- Công thức")
	bullets := 0
	for _, n := range nodes {
		if n.Kind == KindBullet {
			bullets++
		}
	}
	if bullets != 2 {
		t.Fatalf("expected 2 bullets, got %d: %+v", bullets, nodes)
	}
}

func TestPrettyMath(t *testing.T) {
	cases := map[string]string{
		`v = \frac{s}{t}`:      "v = s/t",
		`H_2O`:                 "H₂O",
		`x^2 + y^2`:            "x² + y²",
		`a \times b \approx c`: "a × b ≈ c",
		`\Delta t \geq 0`:      "Δ t ≥ 0",
		`CO_2`:                 "CO₂",
		`10^{-3}`:              "10⁻³",
	}
	for in, want := range cases {
		if got := PrettyMath(in); got != want {
			t.Errorf("PrettyMath(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestPlain(t *testing.T) {
	got := Plain("**Lực** là gì?\n* Ví dụ: $F = ma$")
	want := "Lực là gì?\n• Ví dụ: F = ma"
	if got != want {
		t.Fatalf("Plain = %q, want %q", got, want)
	}
}
