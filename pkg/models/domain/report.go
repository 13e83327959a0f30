package domain

// Report represents a formatted analysis ready for the terminal
type Report struct {
	Title    string
	Mode     RunMode
	Sections []ReportSection
	Notes    []string
}

// ReportSection represents a logical section in the report
type ReportSection struct {
	Title   string
	Summary map[string]string
	Details []ReportDetail
}

// ReportDetail represents a single line within a section
type ReportDetail struct {
	Name        string
	Value       string
	Unit        string
	Description string
}
