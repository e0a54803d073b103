package entity

type User struct {
	ID           int    `json:"id"`
	Name         string `json:"name"`
	PasswordHash string `json:"password_hash"`
}

type Habit struct {
	ID          int    `json:"id"`
	UserID      int    `json:"uid"`
	Name        string `json:"name"`
	Description string `json:"desc"`
	CreatedDate Date   `json:"created_date"`
	// Streak is 0 exactly when LastCompleted is nil
	Streak        int   `json:"streak"`
	LastCompleted *Date `json:"last_completed,omitempty"`
}

type UserStats struct {
	TotalHabits    int `json:"total_habits"`
	TotalStreak    int `json:"total_streak"`
	CompletedToday int `json:"completed_today"`
	SuccessRate    int `json:"success_rate"`
}
