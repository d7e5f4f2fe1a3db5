package enquiry

// Enquiry is one candidate application raised against an indent. Once a
// terminal disposition lands in Status the record is treated as immutable.
type Enquiry struct {
	EnquiryNo     string
	IndentNo      string
	CandidateName string
	Phone         string
	Email         string
	Address       string
	PhotoURL      string
	ResumeURL     string
	EnquiryDate   string
	Status        string // empty while in progress; Joining / Reject terminal
}

// FollowUp is one append-only CallTracker row. Follow-ups are never updated
// in place; the latest terminal one determines the enquiry disposition.
type FollowUp struct {
	EnquiryNo    string
	CallDate     string
	Status       string
	Remarks      string
	NextCallDate string
}

const (
	PrefixEnquiry = "ENQ"

	DispositionInProgress = "In Progress"
	DispositionJoining    = "Joining"
	DispositionReject     = "Reject"
)

func isTerminal(status string) bool {
	return status == DispositionJoining || status == DispositionReject
}
