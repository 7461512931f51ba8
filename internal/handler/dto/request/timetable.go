package request

// TimetableQuery binds ?days=N. Zero means the configured default horizon.
type TimetableQuery struct {
	Days int `form:"days" binding:"omitempty,min=1"`
}
