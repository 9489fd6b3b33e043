package dto

type CreateSubtaskRequest struct {
	TaskID      int    `json:"task_id" binding:"required"`
	Title       string `json:"title" binding:"required"`
	Description string `json:"description"`
	IsDone      bool   `json:"is_done"`
}

// UpdateSubtaskRequest accepts is_done as a JSON boolean or the strings "true"
// and "false" (case-insensitive); clients have historically sent both.
type UpdateSubtaskRequest struct {
	Title  *string     `json:"title"`
	IsDone interface{} `json:"is_done"`
}

type DeleteSubtaskRequest struct {
	TaskID int `json:"task_id" binding:"required"`
}
