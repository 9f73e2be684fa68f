package impl

import (
	"context"
	"log/slog"
	"sort"
	"strconv"
	"strings"
	"time"

	"nutriledger/config"
	deliverycontext "nutriledger/internal/delivery/context"
	"nutriledger/internal/domain/entity"
	domainerrors "nutriledger/internal/domain/errors"
	"nutriledger/internal/domain/nutrition"
	"nutriledger/internal/domain/progression"
	"nutriledger/internal/domain/repository"
	"nutriledger/internal/domain/service"
	"nutriledger/internal/usecase"
	"nutriledger/internal/util"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// ledgerService implements the LedgerUsecase interface.
type ledgerService struct {
	userRepo         repository.UserRepository
	logRepo          repository.FoodLogRepository
	estimator        service.Estimator
	photos           service.PhotoStore
	location         *time.Location
	pointsPerLog     int
	leaderboardLimit int
	now              func() time.Time
	newID            func() string
	logger           *slog.Logger
}

// LedgerServiceParams holds dependencies for LedgerService, injected by Fx.
type LedgerServiceParams struct {
	fx.In

	UserRepo  repository.UserRepository
	LogRepo   repository.FoodLogRepository
	Estimator service.Estimator
	Photos    service.PhotoStore
	Config    *config.Config
	Logger    *slog.Logger
}

// NewLedgerService is the constructor for ledgerService.
func NewLedgerService(params LedgerServiceParams) (usecase.LedgerUsecase, error) {
	loc, err := util.LoadLocation(params.Config.Ledger.Timezone)
	if err != nil {
		return nil, errors.Wrap(err, "ledger.timezone")
	}

	return &ledgerService{
		userRepo:         params.UserRepo,
		logRepo:          params.LogRepo,
		estimator:        params.Estimator,
		photos:           params.Photos,
		location:         loc,
		pointsPerLog:     params.Config.Ledger.PointsPerLog,
		leaderboardLimit: params.Config.Ledger.LeaderboardLimit,
		now:              time.Now,
		newID:            util.ShortID,
		logger:           params.Logger,
	}, nil
}

func (srv *ledgerService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// LogMeal runs estimate, validate, stamp and append. Nothing is written when
// validation fails; the returned EstimateError keeps the raw estimator text.
func (srv *ledgerService) LogMeal(ctx context.Context, session *entity.Session, input *usecase.LogMealInput) (*usecase.LogMealOutput, error) {
	userID := session.UserID()
	if userID == "" {
		return nil, domainerrors.ErrForbidden
	}
	description := strings.TrimSpace(input.Description)
	if description == "" && len(input.Image) == 0 {
		return nil, domainerrors.ErrValidationFailed.WithDetails("a meal description or photo is required")
	}

	raw, err := srv.estimator.Estimate(ctx, &service.EstimateRequest{
		Description: description,
		Image:       input.Image,
		ImageType:   input.ImageType,
		StrictJSON:  true,
	})
	if err != nil {
		return nil, domainerrors.NewEstimateError(domainerrors.KindEstimatorUnavailable, "", err.Error(), raw)
	}

	estimate, err := nutrition.ParseEstimate(raw)
	if err != nil {
		srv.log(ctx).Warn("Estimate rejected", slog.String("user_id", userID), slog.Any("error", err))

		return nil, err
	}

	now := srv.now()
	entry := &entity.FoodLogEntry{
		ID:        srv.newID(),
		UserID:    userID,
		Timestamp: now.Unix(),
		DateRef:   util.DateRef(now, srv.location),
		MealName:  estimate.MealName,
		Nutrients: estimate.Nutrients,
	}
	if err := srv.logRepo.Append(ctx, entry); err != nil {
		srv.log(ctx).Error("Failed to append food log", slog.String("log_id", entry.ID), slog.Any("error", err))

		return nil, errors.WithMessage(err, "append food log")
	}

	if len(input.Image) > 0 {
		srv.archivePhoto(ctx, entry.ID, input.ImageType, input.Image)
	}

	output := &usecase.LogMealOutput{Entry: entry}
	srv.awardPoints(ctx, session, entry.DateRef, output)

	srv.log(ctx).Info("Meal logged",
		slog.String("user_id", userID),
		slog.String("log_id", entry.ID),
		slog.String("date_ref", entry.DateRef),
		slog.Int("points_awarded", output.PointsAwarded),
	)

	return output, nil
}

// awardPoints adds pointsPerLog and advances the streak. The log is already
// saved, so failures here are logged and the standing is left unchanged.
func (srv *ledgerService) awardPoints(ctx context.Context, session *entity.Session, dateRef string, output *usecase.LogMealOutput) {
	userID := session.UserID()

	current, err := srv.userRepo.FindByID(ctx, userID)
	if err != nil {
		srv.log(ctx).Warn("Skipping point award", slog.String("user_id", userID), slog.Any("error", err))
		output.Streak = session.User.Streak
		output.Rank = progression.TierOf(session.User.RankPoints)

		return
	}

	points := nutrition.SaturatingAdd(max(current.RankPoints, 0), srv.pointsPerLog)
	streak := nextStreak(current.Streak, current.LastLogDate, dateRef)
	rank := progression.TierOf(points)

	err = srv.userRepo.UpdateFields(ctx, session, userID, map[string]string{
		repository.FieldRankPoints:  strconv.Itoa(points),
		repository.FieldTier:        rank.Tier.String(),
		repository.FieldStreak:      strconv.Itoa(streak),
		repository.FieldLastLogDate: dateRef,
	})
	if err != nil {
		srv.log(ctx).Warn("Failed to award points", slog.String("user_id", userID), slog.Any("error", err))
		output.Streak = current.Streak
		output.Rank = progression.TierOf(current.RankPoints)

		return
	}

	output.PointsAwarded = srv.pointsPerLog
	output.Streak = streak
	output.Rank = rank
}

func (srv *ledgerService) archivePhoto(ctx context.Context, logID, contentType string, data []byte) {
	if srv.photos == nil {
		return
	}
	if err := srv.photos.Save(ctx, logID, contentType, data); err != nil {
		srv.log(ctx).Warn("Failed to archive meal photo", slog.String("log_id", logID), slog.Any("error", err))

		return
	}

	srv.log(ctx).Debug("Meal photo archived", slog.String("log_id", logID), slog.String("size", util.FormatBytes(int64(len(data)))))
}

// nextStreak counts consecutive logging days. A second meal on the same day
// keeps the streak; a gap restarts it at one.
func nextStreak(streak int, lastLogDate, dateRef string) int {
	switch lastLogDate {
	case dateRef:
		return max(streak, 1)
	case util.PreviousDateRef(dateRef):
		return max(streak, 0) + 1
	default:
		return 1
	}
}

// GetProgress is a pure read over the day's logs.
func (srv *ledgerService) GetProgress(ctx context.Context, session *entity.Session, dateRef string) (*usecase.ProgressOutput, error) {
	if session.UserID() == "" {
		return nil, domainerrors.ErrForbidden
	}

	dateRef, err := srv.resolveDate(dateRef)
	if err != nil {
		return nil, err
	}

	entries, err := srv.logRepo.FindByUserAndDate(ctx, session.UserID(), dateRef)
	if err != nil {
		return nil, errors.WithMessage(err, "query food logs")
	}

	totals := nutrition.Sum(entries)
	targets := nutrition.ResolveTargets(session.User.Goals)

	nutrients := make([]usecase.NutrientProgress, 0, len(entity.AllNutrients))
	for _, n := range entity.AllNutrients {
		nutrients = append(nutrients, usecase.NutrientProgress{
			Nutrient: n,
			Unit:     n.Unit(),
			Consumed: totals.Get(n),
			Target:   targets.Get(n),
			Fraction: nutrition.Fraction(totals.Get(n), targets.Get(n)),
		})
	}

	return &usecase.ProgressOutput{
		DateRef:   dateRef,
		Totals:    totals,
		Targets:   targets,
		Nutrients: nutrients,
		Entries:   entries,
		Rank:      progression.TierOf(session.User.RankPoints),
	}, nil
}

// Aggregate implements usecase.LedgerUsecase.
func (srv *ledgerService) Aggregate(ctx context.Context, userID, dateRef string) (entity.NutrientValues, error) {
	entries, err := srv.logRepo.FindByUserAndDate(ctx, userID, dateRef)
	if err != nil {
		return entity.NutrientValues{}, errors.WithMessage(err, "query food logs")
	}

	return nutrition.Sum(entries), nil
}

// Leaderboard implements usecase.LedgerUsecase.
func (srv *ledgerService) Leaderboard(ctx context.Context, limit int) ([]*usecase.LeaderboardEntry, error) {
	users, err := srv.userRepo.FindAll(ctx)
	if err != nil {
		return nil, errors.WithMessage(err, "list users")
	}

	ranked := make([]*usecase.LeaderboardEntry, 0, len(users))
	for _, u := range users {
		points := max(u.RankPoints, 0)
		ranked = append(ranked, &usecase.LeaderboardEntry{
			UserID:     u.ID,
			Username:   u.Username,
			RankPoints: points,
			Tier:       progression.TierOf(points).Tier,
		})
	}

	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].RankPoints > ranked[j].RankPoints
	})

	if limit <= 0 {
		limit = srv.leaderboardLimit
	}
	if limit > 0 && len(ranked) > limit {
		ranked = ranked[:limit]
	}
	for i, entry := range ranked {
		entry.Position = i + 1
	}

	return ranked, nil
}

func (srv *ledgerService) resolveDate(dateRef string) (string, error) {
	if strings.TrimSpace(dateRef) == "" {
		return util.DateRef(srv.now(), srv.location), nil
	}

	parsed, err := util.ParseDateRef(dateRef)
	if err != nil {
		return "", domainerrors.ErrValidationFailed.WithDetails("date must be YYYY-MM-DD")
	}

	return parsed, nil
}
