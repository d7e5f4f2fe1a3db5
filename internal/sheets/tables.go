package sheets

// Table describes one sheet of the remote store. HeaderRow is the 0-based
// index of the header row inside the fetched snapshot; it differs per sheet
// and is a fixed constant, never auto-detected (sequence allocation is the
// one exception, see LegacyHeaderStrategy).
type Table struct {
	Name      string
	HeaderRow int
}

var (
	TableIndent = Table{Name: "Indent", HeaderRow: 5}

	TableEnquiry = Table{Name: "Enquiry", HeaderRow: 5}

	TableCallTracker = Table{Name: "CallTracker", HeaderRow: 0}

	TableJoining = Table{Name: "Joining", HeaderRow: 0}

	TableLeaving = Table{Name: "Leaving", HeaderRow: 0}

	TableLeaveRequests = Table{Name: "LeaveRequests", HeaderRow: 0}

	TablePayroll = Table{Name: "Payroll", HeaderRow: 0}
)
