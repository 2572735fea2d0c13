package form

type CreateFormInput struct {
	Name        string  `form:"name" json:"name" binding:"required"`
	Description *string `form:"description" json:"description"`
	EventID     *uint   `form:"eventId" json:"eventId"`
	RedirectTo  string  `form:"redirectTo" json:"redirectTo"`
}

type UpdateFormInput struct {
	Name        *string `form:"name" json:"name"`
	Description *string `form:"description" json:"description"`
	EventID     *uint   `form:"eventId" json:"eventId"`
	IsActive    *bool   `form:"isActive" json:"isActive"`
}

// AddFieldInput carries the x-www-form-urlencoded capture-admin payload.
// Required arrives as an HTML checkbox ("on" when ticked), options as a
// comma-separated string.
type AddFieldInput struct {
	FormID      uint   `form:"formId" binding:"required"`
	Label       string `form:"label" binding:"required"`
	Type        string `form:"type" binding:"required"`
	Order       int    `form:"order"`
	Required    string `form:"required"`
	Placeholder string `form:"placeholder"`
	Options     string `form:"options"`
}

type UpdateFieldInput struct {
	Label       *string `form:"label" json:"label"`
	Type        *string `form:"type" json:"type"`
	Required    *bool   `form:"required" json:"required"`
	Placeholder *string `form:"placeholder" json:"placeholder"`
	Options     *string `form:"options" json:"options"`
}

type ReorderFieldInput struct {
	FieldID   uint   `form:"fieldId" binding:"required"`
	FormID    uint   `form:"formId" binding:"required"`
	Direction string `form:"direction" binding:"required"`
}

type DuplicateFieldInput struct {
	FieldID uint `form:"fieldId" binding:"required"`
	FormID  uint `form:"formId" binding:"required"`
}

type DeleteFieldInput struct {
	FieldID uint `form:"fieldId" binding:"required"`
	FormID  uint `form:"formId" binding:"required"`
}
