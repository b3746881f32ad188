package render

//default options
const (
	DefCellSize = 10
	DefOnColor  = "#000"
)

//Options represents the configurable rendering options
type Options struct {
	CellSize int    //side of one cell in SVG units, must be positive
	OnColor  string //fill color of "on" cells, DefOnColor when empty
	OffColor string //background color, no background rect is emitted when empty
	Rounded  bool   //round the cell corners by the neighborhood rule
	Workers  int    //emit rows with this many goroutines, <= 1 means serial
}

var DefaultOptions = Options{
	CellSize: DefCellSize,
	OnColor:  DefOnColor,
}
