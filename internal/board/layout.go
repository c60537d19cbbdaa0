package board

const (
	minCardWidth  = 28
	cardBodyLines = 5
	// cardHeight is the rendered card height including its border.
	cardHeight = cardBodyLines + 2

	formBodyLines = 1 + 1 + contentLines + 1
	// formHeight is the rendered height of the form row including borders.
	formHeight = formBodyLines + 2

	// panelChrome is the horizontal space taken by a border and padding.
	panelChrome   = 4
	labelColWidth = 9
)

func columnsFor(width int) int {
	return max(1, width/minCardWidth)
}

func cardWidth(width, columns int) int {
	return max(minCardWidth, width/max(columns, 1))
}

func formWidth(width int) int {
	return width * 2 / 3
}

func gridHeight(height int) int {
	return max(0, height-formHeight)
}

func visibleRows(height int) int {
	return max(1, gridHeight(height)/cardHeight)
}
