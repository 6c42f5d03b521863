package checks

import (
	"fmt"
	"strings"
)

const (
	renderUnderlineRuneConstant = "-"
	renderCellTemplateConstant  = "%-*s"
	renderLineSeparatorConstant = "\n"
)

// Render formats a check result as an aligned text table. Results without
// rows render to the empty string. Column widths are the longest of the
// header label and every cell in that column, plus two trailing spaces; rows
// shorter than the header list render only the cells they carry.
func Render(checkResult Result) string {
	if len(checkResult.Rows) == 0 {
		return ""
	}

	var outputLines []string
	outputLines = append(outputLines, checkResult.Title)
	outputLines = append(outputLines, strings.Repeat(renderUnderlineRuneConstant, len(checkResult.Title))+renderLineSeparatorConstant)
	outputLines = append(outputLines, checkResult.Description+renderLineSeparatorConstant)

	columnWidths := make([]int, len(checkResult.Headers))
	for headerIndex, headerLabel := range checkResult.Headers {
		columnWidths[headerIndex] = len(headerLabel)
	}
	for _, tableRow := range checkResult.Rows {
		for cellIndex, cellValue := range tableRow {
			if len(cellValue) > columnWidths[cellIndex] {
				columnWidths[cellIndex] = len(cellValue)
			}
		}
	}
	separatorWidth := 0
	for widthIndex := range columnWidths {
		columnWidths[widthIndex] += 2
		separatorWidth += columnWidths[widthIndex]
	}

	var headerBuilder strings.Builder
	for headerIndex, headerLabel := range checkResult.Headers {
		fmt.Fprintf(&headerBuilder, renderCellTemplateConstant, columnWidths[headerIndex], headerLabel)
	}
	outputLines = append(outputLines, headerBuilder.String())
	outputLines = append(outputLines, strings.Repeat(renderUnderlineRuneConstant, separatorWidth))

	for _, tableRow := range checkResult.Rows {
		var rowBuilder strings.Builder
		for cellIndex, cellValue := range tableRow {
			fmt.Fprintf(&rowBuilder, renderCellTemplateConstant, columnWidths[cellIndex], cellValue)
		}
		outputLines = append(outputLines, rowBuilder.String())
	}
	outputLines = append(outputLines, renderLineSeparatorConstant)

	return strings.Join(outputLines, renderLineSeparatorConstant)
}
