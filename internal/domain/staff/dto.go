package staff

type AddRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Position string `json:"position"`
}
