package store

import (
	"context"
	"fmt"
	"strings"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	errx "github.com/giftgenie-teelab/server/internal/core/error"
	"github.com/giftgenie-teelab/server/internal/model"
	logx "github.com/giftgenie-teelab/server/pkg/logger"
)

// Gateway persists designs and signups. Every operation is a single statement.
type Gateway struct {
	db *gorm.DB
}

func NewGateway(db *gorm.DB) *Gateway {
	return &Gateway{db: db}
}

// Migrate creates or updates the designs and signups tables.
func (g *Gateway) Migrate(ctx context.Context) error {
	if err := g.db.WithContext(ctx).AutoMigrate(&model.Design{}, &model.Signup{}); err != nil {
		return fmt.Errorf("migrate: %w", err)
	}
	return nil
}

// Ping checks that the store is reachable.
func (g *Gateway) Ping(ctx context.Context) error {
	sqlDB, err := g.db.DB()
	if err != nil {
		return errx.WrapStorage(err)
	}
	return errx.WrapStorage(sqlDB.PingContext(ctx))
}

func (g *Gateway) CreateDesign(ctx context.Context, in model.NewDesign) (*model.Design, error) {
	var missing []string
	if strings.TrimSpace(in.Title) == "" {
		missing = append(missing, "title")
	}
	if strings.TrimSpace(in.Description) == "" {
		missing = append(missing, "desc")
	}
	if strings.TrimSpace(in.ImageURL) == "" {
		missing = append(missing, "design")
	}
	if len(missing) > 0 {
		return nil, errx.Validationf("missing required fields: %s", strings.Join(missing, ", "))
	}

	d := &model.Design{
		Title:       in.Title,
		Description: in.Description,
		ImageURL:    in.ImageURL,
		UserID:      in.UserID,
	}
	if err := g.db.WithContext(ctx).Create(d).Error; err != nil {
		logx.Error().Err(err).Str("title", in.Title).Msg("failed to insert design")
		return nil, errx.WrapStorage(err)
	}
	return d, nil
}

func (g *Gateway) IncrementVote(ctx context.Context, id uint) error {
	res := g.db.WithContext(ctx).
		Model(&model.Design{}).
		Where("id = ?", id).
		UpdateColumn("votes", gorm.Expr("votes + ?", 1))
	if res.Error != nil {
		logx.Error().Err(res.Error).Uint("design_id", id).Msg("failed to increment vote")
		return errx.WrapStorage(res.Error)
	}
	if res.RowsAffected == 0 {
		logx.Debug().Uint("design_id", id).Msg("vote for unknown design ignored")
	}
	return nil
}

func (g *Gateway) ListDesigns(ctx context.Context) ([]model.Design, error) {
	designs := []model.Design{}
	err := g.db.WithContext(ctx).
		Order("votes DESC").
		Order("id ASC").
		Find(&designs).Error
	if err != nil {
		logx.Error().Err(err).Msg("failed to list designs")
		return nil, errx.WrapStorage(err)
	}
	return designs, nil
}

func (g *Gateway) CreateSignup(ctx context.Context, email string) error {
	email = strings.ToLower(strings.TrimSpace(email))
	if email == "" {
		return errx.Validation("missing required fields: email")
	}

	res := g.db.WithContext(ctx).
		Clauses(clause.OnConflict{Columns: []clause.Column{{Name: "email"}}, DoNothing: true}).
		Create(&model.Signup{Email: email})
	if res.Error != nil {
		logx.Error().Err(res.Error).Msg("failed to insert signup")
		return errx.WrapStorage(res.Error)
	}
	if res.RowsAffected == 0 {
		logx.Debug().Msg("duplicate signup ignored")
	}
	return nil
}

var (
	_ model.DesignRepository = (*Gateway)(nil)
	_ model.SignupRepository = (*Gateway)(nil)
)
