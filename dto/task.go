package dto

type CreateTaskRequest struct {
	ColumnID    int    `json:"column_id" binding:"required"`
	Title       string `json:"title" binding:"required"`
	Description string `json:"description"`
	Status      string `json:"status"`
}

type SubtaskInput struct {
	Title       string `json:"title" binding:"required"`
	Description string `json:"description"`
	IsDone      bool   `json:"is_done"`
}

type CreateTaskWithSubtasksRequest struct {
	ColumnID    int            `json:"column_id" binding:"required"`
	Title       string         `json:"title" binding:"required"`
	Description string         `json:"description"`
	Status      string         `json:"status"`
	Subtasks    []SubtaskInput `json:"subtasks" binding:"dive"`
}

type UpdateTaskRequest struct {
	Title       *string `json:"title"`
	Description *string `json:"description"`
	Status      *string `json:"status"`
}

type MoveTaskRequest struct {
	NewColumnID int `json:"new_column_id" binding:"required"`
}

// SubtaskItem is one entry of an update-with-subtasks reconciliation. Entries
// without a subtask_id are created; entries with one are updated in place.
type SubtaskItem struct {
	SubtaskID   *int   `json:"subtask_id"`
	Title       string `json:"title" binding:"required"`
	Description string `json:"description"`
	IsDone      bool   `json:"is_done"`
}

type UpdateTaskWithSubtasksRequest struct {
	Title       *string       `json:"title"`
	Description *string       `json:"description"`
	Status      *string       `json:"status"`
	NewColumnID *int          `json:"new_column_id"`
	Subtasks    []SubtaskItem `json:"subtasks" binding:"dive"`
}

type DeleteTaskRequest struct {
	ColumnID int `json:"column_id" binding:"required"`
}
