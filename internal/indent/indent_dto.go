package indent

type CreateIndentRequest struct {
	Post            string `json:"post" binding:"required"`
	Gender          string `json:"gender"`
	NoOfPost        int    `json:"no_of_post" binding:"required"`
	ArrangementDate string `json:"arrangement_date" binding:"required"`
	SocialSite      bool   `json:"social_site"`
}

type UpdateIndentStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

type IndentResponse struct {
	IndentNo        string `json:"indent_no"`
	Post            string `json:"post"`
	Gender          string `json:"gender"`
	NoOfPost        int    `json:"no_of_post"`
	ArrangementDate string `json:"arrangement_date"`
	CompletedDate   string `json:"completed_date,omitempty"`
	SocialSite      bool   `json:"social_site"`
	Status          string `json:"status"`
	EnquiryCount    int    `json:"enquiry_count"`
}
