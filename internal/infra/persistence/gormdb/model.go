package gormdb

import (
	"time"
)

// UserModel mirrors the 'users' table. Seq keeps insertion order, which is
// the collection order leaderboard ties fall back to.
type UserModel struct {
	Seq           uint   `gorm:"primaryKey;autoIncrement"`
	UserID        string `gorm:"type:varchar(64);uniqueIndex;not null"`
	Username      string `gorm:"type:varchar(100);not null"`
	UsernameKey   string `gorm:"type:varchar(100);uniqueIndex;not null"`
	Credential    string `gorm:"type:varchar(255)"`
	Approved      bool
	CalorieGoal   float64
	ProteinGoal   float64
	CarbGoal      float64
	SatFatGoal    float64
	UnsatFatGoal  float64
	FiberGoal     float64
	SugarGoal     float64
	SodiumGoal    float64
	PotassiumGoal float64
	IronGoal      float64
	RankPoints    int
	Tier          string `gorm:"type:varchar(32)"`
	Streak        int
	LastLogDate   string `gorm:"type:varchar(10)"`
	Age           int
	Gender        string `gorm:"type:varchar(32)"`
	HeightCm      float64
	WeightKg      float64
	ActivityLevel string `gorm:"type:varchar(32)"`
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// TableName explicitly sets the table name for GORM.
func (UserModel) TableName() string {
	return "users"
}

// FoodLogModel mirrors the 'food_logs' table.
type FoodLogModel struct {
	Seq       uint    `gorm:"primaryKey;autoIncrement"`
	LogID     string  `gorm:"type:varchar(64);uniqueIndex;not null"`
	UserID    string  `gorm:"type:varchar(64);not null;index:idx_food_logs_user_date,priority:1"`
	DateRef   string  `gorm:"type:varchar(10);not null;index:idx_food_logs_user_date,priority:2"`
	Timestamp int64   `gorm:"not null"`
	MealName  string  `gorm:"type:varchar(255)"`
	Calories  float64
	Protein   float64
	Carbs     float64
	SatFat    float64
	UnsatFat  float64
	Fiber     float64
	Sugar     float64
	Sodium    float64
	Potassium float64
	Iron      float64
}

// TableName explicitly sets the table name for GORM.
func (FoodLogModel) TableName() string {
	return "food_logs"
}
