package joining

type ChecklistRequest struct {
	SalarySlip       bool `json:"salary_slip"`
	OfferLetter      bool `json:"offer_letter"`
	BiometricAccess  bool `json:"biometric_access"`
	OfficialEmail    bool `json:"official_email"`
	AssetsAssigned   bool `json:"assets_assigned"`
	PFESIC           bool `json:"pf_esic"`
	DirectoryListing bool `json:"directory_listing"`
}

type ChecklistResponse struct {
	EmployeeID    string `json:"employee_id"`
	Completed     bool   `json:"completed"`
	CompletedDate string `json:"completed_date,omitempty"`
}

type JoiningResponse struct {
	EmployeeID    string           `json:"employee_id"`
	EnquiryNo     string           `json:"enquiry_no,omitempty"`
	CandidateName string           `json:"candidate_name"`
	Post          string           `json:"post,omitempty"`
	Department    string           `json:"department,omitempty"`
	JoiningDate   string           `json:"joining_date"`
	PhotoURL      string           `json:"photo_url,omitempty"`
	ResumeURL     string           `json:"resume_url,omitempty"`
	Checklist     ChecklistRequest `json:"checklist"`
	PlannedDate   string           `json:"planned_date,omitempty"`
	CompletedDate string           `json:"completed_date,omitempty"`
	Status        string           `json:"status"`
}
