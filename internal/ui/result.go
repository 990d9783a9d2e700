package ui

// FormatResult renders a confirmed board for printing. Empty cells are
// given as nil and drawn with SymbolEmpty.
func FormatResult(values [][]*string, rowLabels, columnLabels []string, o TableOptions) string {
	headers := make([]string, 0, len(columnLabels)+1)
	if len(columnLabels) > 0 {
		if len(rowLabels) > 0 {
			headers = append(headers, "")
		}
		for _, l := range columnLabels {
			headers = append(headers, LabelStyle.Render(l))
		}
	}

	rows := make([][]string, 0, len(values))
	for r, cells := range values {
		row := make([]string, 0, len(cells)+1)
		if len(rowLabels) > 0 {
			label := ""
			if r < len(rowLabels) {
				label = rowLabels[r]
			}
			row = append(row, LabelStyle.Render(label))
		}
		for _, v := range cells {
			if v == nil {
				row = append(row, EmptyStyle.Render(SymbolEmpty))
				continue
			}
			row = append(row, ValueStyle.Render(*v))
		}
		rows = append(rows, row)
	}

	if o.Padding == 0 {
		o.Padding = 1
	}
	return FormatTable(headers, rows, o)
}
