package maintenance

type CreateRequest struct {
	Category    string `json:"category" binding:"required"`
	Title       string `json:"title" binding:"required"`
	Description string `json:"description"`
	Priority    string `json:"priority"`
}

type UpdateStatusRequest struct {
	Status string `json:"status" binding:"required,oneof=in_progress resolved cancelled"`
}
