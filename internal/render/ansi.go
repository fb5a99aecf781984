// Package render 把画板网格输出为带边框的字符画。
package render

import (
	"bufio"
	"io"
	"strings"

	"text-blackboard/internal/domain"
)

// Options 控制输出格式
type Options struct {
	// Color 为 false 时不输出任何 ANSI 转义序列
	Color bool
}

type painter struct {
	w     *bufio.Writer
	color bool
}

func (p painter) ansi(seq string) {
	if p.color && seq != "" {
		p.w.WriteString(seq)
	}
}

func (p painter) framed(s string) {
	p.ansi(domain.ANSIFrame)
	p.w.WriteString(s)
	p.ansi(domain.ANSIReset)
}

// Draw 逐行输出网格：上下两条虚线边框，每行两侧为竖线，空格子输出空格。
func Draw(w io.Writer, g *domain.Grid, opts Options) error {
	p := painter{w: bufio.NewWriter(w), color: opts.Color}
	border := " " + strings.Repeat("-", g.Width()+1)

	p.framed(border)
	p.w.WriteByte('\n')
	for row := 0; row < g.Height(); row++ {
		p.framed("|")
		for col := 0; col < g.Width(); col++ {
			cell := g.Cell(domain.Position{Row: row, Col: col})
			if cell == nil {
				p.w.WriteByte(' ')
				continue
			}
			if ansi := cell.Color().ANSI; ansi != "" {
				p.ansi(ansi)
			} else {
				// 未定义颜色不能沿用前一个格子的颜色
				p.ansi(domain.ANSIReset)
			}
			p.w.WriteByte(cell.Glyph())
		}
		p.framed(" |")
		p.w.WriteByte('\n')
	}
	p.framed(border)
	p.w.WriteByte('\n')
	return p.w.Flush()
}

// Shapes 输出每种图形的参数说明。
func Shapes(w io.Writer, opts Options) error {
	p := painter{w: bufio.NewWriter(w), color: opts.Color}
	magenta, _ := domain.LookupColor("magenta")
	yellow, _ := domain.LookupColor("yellow")
	blue, _ := domain.LookupColor("blue")

	for _, shape := range domain.Shapes() {
		p.ansi(magenta.ANSI)
		p.w.WriteString(shape.Kind.Label() + ":")
		p.ansi(yellow.ANSI)
		p.w.WriteString(" " + shape.Usage)
		p.ansi(blue.ANSI)
		p.w.WriteString("[x,y]")
		p.ansi(domain.ANSIReset)
		p.w.WriteString(" " + shape.Anchor + "\n")
	}
	return p.w.Flush()
}
