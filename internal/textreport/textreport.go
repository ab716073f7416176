// Package textreport prints an analysis for a terminal.
package textreport

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"golang.org/x/text/width"

	"github.com/godilite/score-report/internal/service"
)

var (
	aboveAdvice = []string{
		"維持現有的學習方法和態度",
		"可以考慮參加進階課程或競賽",
	}
	belowAdvice = []string{
		"建議尋求教師額外指導",
		"增加練習題目的數量",
		"考慮參加補救教學或補習課程",
	}
)

const footer = "本分析工具僅供參考，請結合老師建議做為學習改進依據。"

// cellPadding separates right-aligned table columns.
const cellPadding = 2

// Write prints the summary, the analysis table and the study advice.
func Write(w io.Writer, a service.Analysis) error {
	ew := &errWriter{w: w}

	if a.Summary != nil {
		ew.printf("平均分數: %.1f\t最高分數: %s\t最低分數: %s\n\n",
			a.Summary.Mean, formatScore(a.Summary.Max), formatScore(a.Summary.Min))
	}

	table := [][]string{{"科目", "個人分數", "班級平均", "差異", "百分位數"}}
	for _, row := range a.Report.Rows {
		table = append(table, []string{
			row.Subject,
			strconv.FormatFloat(row.StudentScore, 'f', 2, 64),
			formatOptional(row.ClassAverage, 2),
			formatOptional(row.Difference, 2),
			formatOptional(row.PercentileRank, 1),
		})
	}
	writeTable(ew, table)

	if len(a.Recommendation.Above) > 0 {
		ew.printf("\n表現優異的科目：%s\n建議：\n", strings.Join(a.Recommendation.Above, ", "))
		for _, line := range aboveAdvice {
			ew.printf("- %s\n", line)
		}
	}
	if len(a.Recommendation.Below) > 0 {
		ew.printf("\n需要加強的科目：%s\n建議：\n", strings.Join(a.Recommendation.Below, ", "))
		for _, line := range belowAdvice {
			ew.printf("- %s\n", line)
		}
	}

	ew.printf("\n%s\n", footer)
	return ew.err
}

// writeTable right-aligns every column by terminal width, so CJK cells
// take two columns per rune.
func writeTable(ew *errWriter, rows [][]string) {
	widths := make([]int, len(rows[0]))
	for _, row := range rows {
		for i, cell := range row {
			widths[i] = max(widths[i], displayWidth(cell))
		}
	}

	var b strings.Builder
	for _, row := range rows {
		b.Reset()
		for i, cell := range row {
			b.WriteString(strings.Repeat(" ", widths[i]-displayWidth(cell)+cellPadding))
			b.WriteString(cell)
		}
		b.WriteByte('\n')
		ew.printf("%s", b.String())
	}
}

func displayWidth(s string) int {
	n := 0
	for _, r := range s {
		switch width.LookupRune(r).Kind() {
		case width.EastAsianWide, width.EastAsianFullwidth:
			n += 2
		default:
			n++
		}
	}
	return n
}

func formatOptional(v *float64, decimals int) string {
	if v == nil {
		return "-"
	}
	return strconv.FormatFloat(*v, 'f', decimals, 64)
}

// formatScore drops a trailing ".0" so whole scores print as integers.
func formatScore(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

type errWriter struct {
	w   io.Writer
	err error
}

func (e *errWriter) Write(p []byte) (int, error) {
	if e.err != nil {
		return 0, e.err
	}
	n, err := e.w.Write(p)
	e.err = err
	return n, err
}

func (e *errWriter) printf(format string, args ...any) {
	fmt.Fprintf(e, format, args...)
}
