package renderer

import (
	"strings"
	"testing"

	"github.com/etnz/finmath"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/extension"
	east "github.com/yuin/goldmark/extension/ast"
	"github.com/yuin/goldmark/text"
)

// tableRows parses md and returns the number of body rows of its tables and
// the number of headings.
func tableRows(t *testing.T, md string) (rows, headings int) {
	t.Helper()
	source := []byte(md)
	parser := goldmark.New(goldmark.WithExtensions(extension.Table)).Parser()
	root := parser.Parse(text.NewReader(source))
	err := ast.Walk(root, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
		if !entering {
			return ast.WalkContinue, nil
		}
		switch n.(type) {
		case *east.TableRow:
			rows++
		case *ast.Heading:
			headings++
		}
		return ast.WalkContinue, nil
	})
	if err != nil {
		t.Fatal(err)
	}
	return rows, headings
}

func TestRenderIRR(t *testing.T) {
	flows := []finmath.Amount{
		finmath.A(-100, "EUR"),
		finmath.A(39, "EUR"),
		finmath.A(59, "EUR"),
		finmath.A(55, "EUR"),
		finmath.A(20, "EUR"),
	}
	res := finmath.Solver{}.IRRResult(finmath.Floats(flows))
	md := RenderIRR(NewIRR(flows, res))

	if strings.HasPrefix(md, "error") {
		t.Fatalf("RenderIRR() = %s", md)
	}
	if !strings.Contains(md, "**IRR**: 28.09% per period, over 4 period(s).") {
		t.Errorf("RenderIRR() summary missing in:\n%s", md)
	}
	if !strings.Contains(md, "Net present value at this rate: 0.00") {
		t.Errorf("RenderIRR() residual missing in:\n%s", md)
	}
	rows, headings := tableRows(t, md)
	if rows != len(flows) {
		t.Errorf("RenderIRR() table has %d rows, want %d", rows, len(flows))
	}
	if headings != 1 {
		t.Errorf("RenderIRR() has %d headings, want 1", headings)
	}
}

func TestRenderIRR_NoSolution(t *testing.T) {
	flows := []finmath.Amount{finmath.A(100, ""), finmath.A(110, "")}
	res := finmath.Solver{}.IRRResult(finmath.Floats(flows))
	md := RenderIRR(NewIRR(flows, res))

	if !strings.Contains(md, "**IRR**: no solution (no positive real root).") {
		t.Errorf("RenderIRR() summary missing in:\n%s", md)
	}
	if strings.Contains(md, "Net present value") {
		t.Errorf("RenderIRR() shows a residual without a rate:\n%s", md)
	}
	if rows, _ := tableRows(t, md); rows != 2 {
		t.Errorf("RenderIRR() table has %d rows, want 2", rows)
	}
}

func TestRenderTWRR(t *testing.T) {
	vs := finmath.Valuations{
		{Begin: finmath.A(100, ""), End: finmath.A(120, ""), Flow: finmath.A(2, "")},
		{Begin: finmath.A(240, ""), End: finmath.A(260, ""), Flow: finmath.A(4, "")},
	}
	md := RenderTWRR(NewTWRR(vs, finmath.TWRRResult(vs)))

	if !strings.Contains(md, "**TWRR**: 15.84% per period, over 2 period(s).") {
		t.Errorf("RenderTWRR() summary missing in:\n%s", md)
	}
	if !strings.Contains(md, "| 1 | 100 | 120 | 2 | 22.00% |") {
		t.Errorf("RenderTWRR() first period missing in:\n%s", md)
	}
	if rows, _ := tableRows(t, md); rows != len(vs) {
		t.Errorf("RenderTWRR() table has %d rows, want %d", rows, len(vs))
	}
}
