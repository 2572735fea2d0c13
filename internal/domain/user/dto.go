package user

type LoginInput struct {
	Email      string `form:"email" binding:"required"`
	Password   string `form:"password" binding:"required"`
	RedirectTo string `form:"redirectTo"`
}

type RegisterInput struct {
	AccountName string `form:"accountName" json:"accountName" binding:"required"`
	Email       string `form:"email" json:"email" binding:"required,email"`
	Name        string `form:"name" json:"name" binding:"required"`
	Password    string `form:"password" json:"password" binding:"required,min=8"`
}
