package dto

type CreateColumnRequest struct {
	BoardID     int    `json:"board_id" binding:"required"`
	Title       string `json:"title" binding:"required"`
	Description string `json:"description"`
}

type UpdateColumnRequest struct {
	Title       *string `json:"title"`
	Description *string `json:"description"`
}

type DeleteColumnRequest struct {
	BoardID int `json:"board_id" binding:"required"`
}
