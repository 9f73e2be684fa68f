package handler

import (
	"nutriledger/internal/domain/entity"
	"nutriledger/internal/domain/progression"
	"nutriledger/internal/usecase"
)

type registerRequest struct {
	Username      string  `json:"username" form:"username" validate:"required,min=3,max=64"`
	Password      string  `json:"password" form:"password" validate:"required,min=4,max=128"`
	Age           int     `json:"age" form:"age" validate:"gte=0,lte=150"`
	Gender        string  `json:"gender" form:"gender" validate:"max=32"`
	HeightCm      float64 `json:"height_cm" form:"height_cm" validate:"gte=0,lte=300"`
	WeightKg      float64 `json:"weight_kg" form:"weight_kg" validate:"gte=0,lte=700"`
	ActivityLevel string  `json:"activity_level" form:"activity_level" validate:"max=32"`
}

type loginRequest struct {
	Username string `json:"username" form:"username" validate:"required"`
	Password string `json:"password" form:"password" validate:"required"`
}

// logMealRequest accepts the photo as base64 in JSON or as a multipart file.
type logMealRequest struct {
	Description string `json:"description" form:"description" validate:"max=2000"`
	Image       []byte `json:"image" form:"-"`
	ImageType   string `json:"image_type" form:"-"`
}

type updateTargetsRequest struct {
	Goals map[string]float64 `json:"goals" validate:"required,min=1"`
}

// userView is the public projection of a user row; the credential never leaves the server.
type userView struct {
	ID           string                `json:"id"`
	Username     string                `json:"username"`
	Approved     bool                  `json:"approved"`
	Goals        entity.NutrientValues `json:"goals"`
	RankPoints   int                   `json:"rank_points"`
	Tier         string                `json:"tier"`
	Streak       int                   `json:"streak"`
	LastLogDate  string                `json:"last_log_date,omitempty"`
	Demographics entity.Demographics   `json:"demographics"`
}

func newUserView(u *entity.User) *userView {
	if u == nil {
		return nil
	}

	return &userView{
		ID:           u.ID,
		Username:     u.Username,
		Approved:     u.Approved,
		Goals:        u.Goals,
		RankPoints:   u.RankPoints,
		Tier:         u.Tier,
		Streak:       u.Streak,
		LastLogDate:  u.LastLogDate,
		Demographics: u.Demographics,
	}
}

type loginResponse struct {
	AccessToken string    `json:"access_token"`
	TokenType   string    `json:"token_type"`
	ExpiresIn   int64     `json:"expires_in"`
	Roles       []string  `json:"roles"`
	User        *userView `json:"user"`
}

type foodLogView struct {
	ID        string                `json:"id"`
	Timestamp int64                 `json:"timestamp"`
	DateRef   string                `json:"date"`
	MealName  string                `json:"meal_name"`
	Nutrients entity.NutrientValues `json:"nutrients"`
}

func newFoodLogViews(entries []*entity.FoodLogEntry) []*foodLogView {
	views := make([]*foodLogView, 0, len(entries))
	for _, e := range entries {
		views = append(views, newFoodLogView(e))
	}

	return views
}

func newFoodLogView(e *entity.FoodLogEntry) *foodLogView {
	return &foodLogView{
		ID:        e.ID,
		Timestamp: e.Timestamp,
		DateRef:   e.DateRef,
		MealName:  e.MealName,
		Nutrients: e.Nutrients,
	}
}

type logMealResponse struct {
	Entry         *foodLogView         `json:"entry"`
	PointsAwarded int                  `json:"points_awarded"`
	Streak        int                  `json:"streak"`
	Rank          progression.Progress `json:"rank"`
}

type nutrientProgressView struct {
	Nutrient entity.Nutrient `json:"nutrient"`
	Unit     string          `json:"unit"`
	Consumed float64         `json:"consumed"`
	Target   float64         `json:"target"`
	Progress float64         `json:"progress"`
}

type progressResponse struct {
	Date      string                 `json:"date"`
	Totals    entity.NutrientValues  `json:"totals"`
	Targets   entity.NutrientValues  `json:"targets"`
	Nutrients []nutrientProgressView `json:"nutrients"`
	Entries   []*foodLogView         `json:"entries"`
	Rank      progression.Progress   `json:"rank"`
}

func newProgressResponse(out *usecase.ProgressOutput) *progressResponse {
	nutrients := make([]nutrientProgressView, 0, len(out.Nutrients))
	for _, n := range out.Nutrients {
		nutrients = append(nutrients, nutrientProgressView{
			Nutrient: n.Nutrient,
			Unit:     n.Unit,
			Consumed: n.Consumed,
			Target:   n.Target,
			Progress: n.Fraction,
		})
	}

	return &progressResponse{
		Date:      out.DateRef,
		Totals:    out.Totals,
		Targets:   out.Targets,
		Nutrients: nutrients,
		Entries:   newFoodLogViews(out.Entries),
		Rank:      out.Rank,
	}
}

type profileResponse struct {
	User    *userView             `json:"user"`
	Targets entity.NutrientValues `json:"targets"`
	Rank    progression.Progress  `json:"rank"`
}

type leaderboardEntryView struct {
	Position   int              `json:"position"`
	UserID     string           `json:"user_id"`
	Username   string           `json:"username"`
	RankPoints int              `json:"rank_points"`
	Tier       progression.Tier `json:"tier"`
}
