package roster

// Spreadsheet cell values used by the roster export, matching the sheets the
// operations team fills by hand: T for a worked day, F for a day off.
const (
	ExportWorkCell = "T"
	ExportOffCell  = "F"
)

// ExportCells renders a projected grid as one spreadsheet row, one cell per
// day in grid order.
func ExportCells(grid []DayStatus) []string {
	cells := make([]string, 0, len(grid))
	for _, day := range grid {
		if day.Status == StatusWork {
			cells = append(cells, ExportWorkCell)
		} else {
			cells = append(cells, ExportOffCell)
		}
	}
	return cells
}
