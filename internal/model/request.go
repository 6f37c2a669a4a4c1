package model

import (
	"bytes"
	"strings"

	"github.com/goccy/go-json"
)

// FlexString accepts either a JSON string or a JSON number.
type FlexString string

func (f *FlexString) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	if bytes.Equal(b, []byte("null")) {
		*f = ""
		return nil
	}
	if len(b) > 0 && b[0] == '"' {
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return err
		}
		*f = FlexString(strings.TrimSpace(s))
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(b, &n); err != nil {
		return err
	}
	*f = FlexString(n.String())
	return nil
}

type GiftRequest struct {
	Relationship string     `json:"relationship" form:"relationship" binding:"required"`
	Vibe         string     `json:"vibe" form:"vibe" binding:"required"`
	Budget       FlexString `json:"budget" form:"budget" binding:"required"`
	Message      string     `json:"message" form:"message"`
}

type GiftResponse struct {
	Suggestions []Suggestion `json:"suggestions"`
	Message     string       `json:"message"`
}

type StyleRequest struct {
	Gender   string `json:"gender" form:"gender" binding:"required"`
	SkinTone string `json:"skin_tone" form:"skin_tone" binding:"required"`
	BodyType string `json:"body_type" form:"body_type"`
}

type StyleResponse struct {
	Suggestions []Suggestion `json:"suggestions"`
}

type SignupRequest struct {
	Email string `json:"email" form:"email" binding:"required,email"`
}

type DesignForm struct {
	Title       string `form:"title" binding:"required"`
	Description string `form:"desc" binding:"required"`
	UserID      string `form:"user_id" binding:"required"`
}
