package model

import (
	"context"
	"time"
)

// Design is a user submitted artwork with a running vote count.
type Design struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	Title       string    `gorm:"not null" json:"title"`
	Description string    `gorm:"type:text;not null" json:"description"`
	ImageURL    string    `gorm:"not null" json:"image_url"`
	UserID      *int64    `gorm:"index" json:"user_id"`
	Votes       int       `gorm:"not null;default:0" json:"votes"`
	CreatedAt   time.Time `json:"created_at"`
}

// Signup is a captured marketing email address.
type Signup struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Email     string    `gorm:"uniqueIndex;not null" json:"email"`
	CreatedAt time.Time `json:"created_at"`
}

type NewDesign struct {
	Title       string
	Description string
	ImageURL    string
	UserID      *int64
}

type DesignRepository interface {
	// CreateDesign stores a new design with zero votes.
	CreateDesign(ctx context.Context, in NewDesign) (*Design, error)

	// IncrementVote adds one vote; an unknown id is not an error.
	IncrementVote(ctx context.Context, id uint) error

	// ListDesigns returns every design, most voted first.
	ListDesigns(ctx context.Context) ([]Design, error)
}

type SignupRepository interface {
	// CreateSignup records an email; repeating an email is a successful no-op.
	CreateSignup(ctx context.Context, email string) error
}
