package domain

import "sort"

// ANSI 前景色转义序列
const (
	ansiRed     = "\033[31m"
	ansiGreen   = "\033[32m"
	ansiBlue    = "\033[34m"
	ansiYellow  = "\033[33m"
	ansiBlack   = "\033[30m"
	ansiWhite   = "\033[37m"
	ansiCyan    = "\033[36m"
	ansiMagenta = "\033[35m"

	// ANSIReset 恢复终端默认颜色
	ANSIReset = "\033[0m"
	// ANSIFrame 画板边框使用的颜色
	ANSIFrame = ansiRed
)

// UndefinedTag 是未知颜色名对应的显示字符
const UndefinedTag byte = '?'

// Color 描述图形的显示颜色：一个字符标记 (同时作为格子中绘制的字符) 和终端转义序列。
type Color struct {
	Name string // 调色板中的颜色名，未知颜色为用户输入的原始名称
	Tag  byte   // 单字符标记，例如 'r'
	ANSI string // 终端转义序列，未知颜色为空
}

// Defined 报告该颜色是否来自调色板。
func (c Color) Defined() bool {
	return c.ANSI != ""
}

// palette 固定的颜色表，名称 -> 颜色
var palette = map[string]Color{
	"red":     {Name: "red", Tag: 'r', ANSI: ansiRed},
	"green":   {Name: "green", Tag: 'g', ANSI: ansiGreen},
	"blue":    {Name: "blue", Tag: 'b', ANSI: ansiBlue},
	"yellow":  {Name: "yellow", Tag: 'y', ANSI: ansiYellow},
	"black":   {Name: "black", Tag: 'k', ANSI: ansiBlack},
	"white":   {Name: "white", Tag: 'w', ANSI: ansiWhite},
	"cyan":    {Name: "cyan", Tag: 'c', ANSI: ansiCyan},
	"magenta": {Name: "magenta", Tag: 'm', ANSI: ansiMagenta},
	"purple":  {Name: "purple", Tag: 'p', ANSI: ansiMagenta},
}

// LookupColor 按名称查找颜色。
// 未知名称不会报错：返回标记为 UndefinedTag 的未定义颜色，ok 为 false。
func LookupColor(name string) (Color, bool) {
	if c, ok := palette[name]; ok {
		return c, true
	}
	return Color{Name: name, Tag: UndefinedTag}, false
}

// ColorByTag 按单字符标记反查颜色，用于从存档恢复。
func ColorByTag(tag byte) (Color, bool) {
	for _, c := range palette {
		if c.Tag == tag {
			return c, true
		}
	}
	return Color{Tag: UndefinedTag}, false
}

// ColorNames 返回调色板中所有颜色名 (已排序)。
func ColorNames() []string {
	names := make([]string, 0, len(palette))
	for name := range palette {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
