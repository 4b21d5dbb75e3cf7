package models

// CalendarCell is one cell of a month grid. Day is 0 for the leading blank
// cells that pad the first week; rendering consumes the sequence row-by-row,
// seven cells at a time.
type CalendarCell struct {
	Day                int  `json:"day,omitempty"`
	IsPast             bool `json:"isPast"`
	IsToday            bool `json:"isToday"`
	IsSelected         bool `json:"isSelected"`
	IsPrimarySelection bool `json:"isPrimarySelection"`
}

// CalendarSelection carries the dates to highlight when building a grid.
type CalendarSelection struct {
	Preferred   string `json:"preferred,omitempty"`
	Alternative string `json:"alternative,omitempty"`
}
