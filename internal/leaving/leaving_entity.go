package leaving

// Checklist is the fixed set of separation tasks.
type Checklist struct {
	ResignationLetter bool
	AssetHandover     bool
	IDCardReturn      bool
	EmailCancelled    bool
	BiometricRevoked  bool
	BenefitsRemoved   bool
	FinalReleaseDate  string
}

// Leaving is the separation record, keyed by Employee ID and referencing the
// joining record it closes out.
type Leaving struct {
	EmployeeID    string
	EmployeeName  string
	DateOfLeaving string
	Checklist     Checklist
	PlannedDate   string
	CompletedDate string
}
