package dto

type CreateBoardRequest struct {
	Title       string `json:"title" binding:"required"`
	Description string `json:"description"`
}

type ColumnInput struct {
	Title       string `json:"title" binding:"required"`
	Description string `json:"description"`
}

type CreateBoardWithColumnsRequest struct {
	Title       string        `json:"title" binding:"required"`
	Description string        `json:"description"`
	Columns     []ColumnInput `json:"columns" binding:"required,dive"`
}

type UpdateBoardRequest struct {
	Title       *string `json:"title"`
	Description *string `json:"description"`
}

type ShareBoardRequest struct {
	Email string `json:"email" binding:"required,email"`
}

type JoinBoardRequest struct {
	Token string `json:"token" binding:"required"`
}
