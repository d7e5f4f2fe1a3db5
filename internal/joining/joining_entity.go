package joining

// Checklist is the fixed set of onboarding tasks. All booleans are written on
// every submission; the completion stamp is gated on all of them being true.
type Checklist struct {
	SalarySlip       bool
	OfferLetter      bool
	BiometricAccess  bool
	OfficialEmail    bool
	AssetsAssigned   bool
	PFESIC           bool
	DirectoryListing bool
}

func (c Checklist) AllDone() bool {
	return c.SalarySlip &&
		c.OfferLetter &&
		c.BiometricAccess &&
		c.OfficialEmail &&
		c.AssetsAssigned &&
		c.PFESIC &&
		c.DirectoryListing
}

// Joining is the onboarding record keyed 1:1 to a promoted enquiry by
// Employee ID.
type Joining struct {
	EmployeeID    string
	EnquiryNo     string
	CandidateName string
	Post          string
	Department    string
	JoiningDate   string
	PhotoURL      string
	ResumeURL     string
	Checklist     Checklist
	PlannedDate   string
	CompletedDate string
	Status        string
}

const (
	PrefixEmployee = "EMP"

	StatusActive   = "Active"
	StatusInactive = "Inactive"
)
