package event

type CreateEventInput struct {
	Name      string  `form:"name" json:"name" binding:"required"`
	Location  *string `form:"location" json:"location"`
	StartDate string  `form:"startDate" json:"startDate" binding:"required"`
	EndDate   string  `form:"endDate" json:"endDate" binding:"required"`
}

type UpdateEventInput struct {
	Name      *string `form:"name" json:"name"`
	Location  *string `form:"location" json:"location"`
	StartDate *string `form:"startDate" json:"startDate"`
	EndDate   *string `form:"endDate" json:"endDate"`
	IsActive  *bool   `form:"isActive" json:"isActive"`
}
