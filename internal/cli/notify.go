package cli

import (
	"fmt"
	"io"

	fcolor "github.com/fatih/color"
)

type noticeStyle struct {
	symbol string
	color  *fcolor.Color
}

var (
	successStyle = noticeStyle{"✔ ", fcolor.New(fcolor.FgGreen)}
	errorStyle   = noticeStyle{"✗ ", fcolor.New(fcolor.FgRed, fcolor.Bold)}
	warningStyle = noticeStyle{"⚠ ", fcolor.New(fcolor.FgYellow)}
	infoStyle    = noticeStyle{"ℹ ", fcolor.New(fcolor.FgBlue)}
)

func writeNotice(w io.Writer, s noticeStyle, format string, args ...any) {
	_, _ = s.color.Fprintf(w, "%s%s\n", s.symbol, fmt.Sprintf(format, args...))
}

func Successf(w io.Writer, format string, args ...any) { writeNotice(w, successStyle, format, args...) }
func Errorf(w io.Writer, format string, args ...any)   { writeNotice(w, errorStyle, format, args...) }
func Warningf(w io.Writer, format string, args ...any) { writeNotice(w, warningStyle, format, args...) }
func Infof(w io.Writer, format string, args ...any)    { writeNotice(w, infoStyle, format, args...) }
