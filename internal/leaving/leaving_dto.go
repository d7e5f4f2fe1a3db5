package leaving

type CreateLeavingRequest struct {
	EmployeeID    string `json:"employee_id" binding:"required"`
	DateOfLeaving string `json:"date_of_leaving" binding:"required"`
}

type CompleteLeavingRequest struct {
	ResignationLetter bool   `json:"resignation_letter"`
	AssetHandover     bool   `json:"asset_handover"`
	IDCardReturn      bool   `json:"id_card_return"`
	EmailCancelled    bool   `json:"email_cancelled"`
	BiometricRevoked  bool   `json:"biometric_revoked"`
	BenefitsRemoved   bool   `json:"benefits_removed"`
	FinalReleaseDate  string `json:"final_release_date"`
}

type LeavingResponse struct {
	EmployeeID    string `json:"employee_id"`
	EmployeeName  string `json:"employee_name,omitempty"`
	DateOfLeaving string `json:"date_of_leaving"`
	Checklist     struct {
		ResignationLetter bool   `json:"resignation_letter"`
		AssetHandover     bool   `json:"asset_handover"`
		IDCardReturn      bool   `json:"id_card_return"`
		EmailCancelled    bool   `json:"email_cancelled"`
		BiometricRevoked  bool   `json:"biometric_revoked"`
		BenefitsRemoved   bool   `json:"benefits_removed"`
		FinalReleaseDate  string `json:"final_release_date,omitempty"`
	} `json:"checklist"`
	PlannedDate   string `json:"planned_date,omitempty"`
	CompletedDate string `json:"completed_date,omitempty"`
}
