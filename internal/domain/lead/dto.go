package lead

// SubmitInput is the parsed capture payload: the target form plus the
// field_<id> values that survived trimming.
type SubmitInput struct {
	FormID          uint
	CreatedByUserID *uint
	// Values is keyed by FormField ID; every value is already trimmed and
	// non-empty.
	Values map[uint]string
}

type StatusUpdateInput struct {
	LeadID     uint    `form:"leadId" binding:"required"`
	FormID     uint    `form:"formId"`
	Status     string  `form:"status" binding:"required"`
	Notes      *string `form:"notes"`
	RedirectTo string  `form:"redirectTo"`
}
