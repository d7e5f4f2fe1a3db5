package enquiry

// Document is a base64-encoded attachment handed to the external upload
// collaborator. Kind distinguishes the photo from the resume.
type Document struct {
	Kind       string `json:"kind" binding:"required,oneof=photo resume"`
	FileName   string `json:"file_name" binding:"required"`
	MimeType   string `json:"mime_type" binding:"required"`
	Base64Data string `json:"base64_data" binding:"required"`
}

type CreateEnquiryRequest struct {
	IndentNo      string     `json:"indent_no" binding:"required"`
	CandidateName string     `json:"candidate_name" binding:"required"`
	Phone         string     `json:"phone"`
	Email         string     `json:"email"`
	Address       string     `json:"address"`
	EnquiryDate   string     `json:"enquiry_date" binding:"required"`
	Documents     []Document `json:"documents" binding:"omitempty,dive"`
}

type AddFollowUpRequest struct {
	Status       string `json:"status" binding:"required"`
	Remarks      string `json:"remarks"`
	NextCallDate string `json:"next_call_date"`
}

type PromoteRequest struct {
	Remarks     string     `json:"remarks"`
	EmployeeID  string     `json:"employee_id"`
	Post        string     `json:"post"`
	Department  string     `json:"department"`
	JoiningDate string     `json:"joining_date" binding:"required"`
	Documents   []Document `json:"documents" binding:"omitempty,dive"`
}

type EnquiryResponse struct {
	EnquiryNo     string `json:"enquiry_no"`
	IndentNo      string `json:"indent_no"`
	CandidateName string `json:"candidate_name"`
	Phone         string `json:"phone,omitempty"`
	Email         string `json:"email,omitempty"`
	Address       string `json:"address,omitempty"`
	PhotoURL      string `json:"photo_url,omitempty"`
	ResumeURL     string `json:"resume_url,omitempty"`
	EnquiryDate   string `json:"enquiry_date"`
	Status        string `json:"status,omitempty"`
}

type FollowUpResponse struct {
	EnquiryNo    string `json:"enquiry_no"`
	CallDate     string `json:"call_date"`
	Status       string `json:"status"`
	Remarks      string `json:"remarks,omitempty"`
	NextCallDate string `json:"next_call_date,omitempty"`
}

type PromoteResponse struct {
	EnquiryNo  string `json:"enquiry_no"`
	EmployeeID string `json:"employee_id"`
}
