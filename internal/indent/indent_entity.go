package indent

// Indent is one requisition row projected out of the sheet. Date cells stay
// raw strings; presence, not validity, is what drives stage decisions.
type Indent struct {
	IndentNo        string
	Post            string
	Gender          string
	NoOfPost        int
	ArrangementDate string // planned
	CompletedDate   string // actual
	SocialSite      bool
	Status          string
}

const (
	// Requisitions raised through the social-site channel get their own
	// identifier namespace.
	PrefixRequisition = "REC"
	PrefixSocial      = "AAP"

	StatusNeedMore = "Need More"
	StatusComplete = "Complete"
)
