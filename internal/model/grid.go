package model

// ColumnGroup selects one of the two mirrored halves of the month grid.
type ColumnGroup string

// Column groups. Days 1-15 occupy the first half, days 16-31 the second.
const (
	FirstHalf  ColumnGroup = "FIRST_HALF"
	SecondHalf ColumnGroup = "SECOND_HALF"
)

// GridField identifies which cell of a grid row a value belongs to.
type GridField string

// Grid fields within a row.
const (
	FieldOutboundMark   GridField = "OUTBOUND_MARK"
	FieldOutboundAmount GridField = "OUTBOUND_AMOUNT"
	FieldReturnMark     GridField = "RETURN_MARK"
	FieldReturnAmount   GridField = "RETURN_AMOUNT"
)

// GridCell is one value placed at a fixed position of the ledger layout.
// The report renderer writes cells verbatim; Value is a Mark for the mark
// fields and an int (yen) for the amount fields.
type GridCell struct {
	Group ColumnGroup
	Row   int
	Field GridField
	Value any
}

// Identity is the header metadata printed at the top of the ledger.
type Identity struct {
	Organization string
	Position     string
	Name         string
}

// Report is everything the report renderer needs to produce one monthly
// ledger: the aggregated day buckets and grid cells plus header metadata.
type Report struct {
	Year        int
	Month       int
	MonthLength int
	Route       RouteConfig
	Identity    Identity
	Buckets     map[int]DayBucket
	Cells       []GridCell
	Details     []Detail
}

// Detail is one row of the ledger's per-transaction table.
type Detail struct {
	Date          string // YYYY/MM/DD
	Origin        string
	Destination   string
	DepartureTime string
	Fare          int
	Relation      RouteRelation
	Remark        string
}
