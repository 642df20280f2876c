package api

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/go-playground/validator/v10"

	"github.com/uongozi/uongozi/internal/domain"
)

// Package-level validator instance for boundary validation.
// Uses go-playground/validator v10 for struct tag-based validation.
var validate = validator.New()

// The backend's payloads are loosely shaped (Mongo-style identifiers,
// camelCase fields, occasionally populated references). Every ingress
// payload is decoded into a tagged DTO and schema-checked here before
// conversion, so the rest of the client operates on trusted domain
// values.

type manifestoItemDTO struct {
	Title string `json:"title" validate:"required"`
}

type leaderDTO struct {
	ID            string             `json:"_id" validate:"required"`
	Name          string             `json:"name" validate:"required"`
	Position      string             `json:"position" validate:"required,oneof=president governor mp mca"`
	Level         string             `json:"level" validate:"required,oneof=country county constituency ward"`
	County        string             `json:"county"`
	Constituency  string             `json:"constituency"`
	Ward          string             `json:"ward"`
	Manifesto     []manifestoItemDTO `json:"manifesto" validate:"dive"`
	AverageRating float64            `json:"averageRating" validate:"min=0,max=4"`
	TotalReviews  int                `json:"totalReviews" validate:"min=0"`
}

func (d leaderDTO) toDomain() domain.Leader {
	manifesto := make([]domain.ManifestoItem, len(d.Manifesto))
	for i, m := range d.Manifesto {
		manifesto[i] = domain.ManifestoItem{Title: m.Title}
	}
	return domain.Leader{
		ID:            d.ID,
		Name:          d.Name,
		Position:      domain.Position(d.Position),
		Level:         domain.Level(d.Level),
		County:        d.County,
		Constituency:  d.Constituency,
		Ward:          d.Ward,
		Manifesto:     manifesto,
		AverageRating: d.AverageRating,
		TotalReviews:  d.TotalReviews,
	}
}

// userRef tolerates the backend's two encodings of a user reference:
// a plain identifier string, or a populated object carrying "_id".
type userRef struct {
	ID string
}

// UnmarshalJSON implements json.Unmarshaler.
func (u *userRef) UnmarshalJSON(data []byte) error {
	var id string
	if err := json.Unmarshal(data, &id); err == nil {
		u.ID = id
		return nil
	}

	var populated struct {
		ID string `json:"_id"`
	}
	if err := json.Unmarshal(data, &populated); err != nil {
		return fmt.Errorf("user reference is neither id nor object: %w", err)
	}
	u.ID = populated.ID
	return nil
}

type reviewDTO struct {
	ID        string         `json:"_id" validate:"required"`
	LeaderID  string         `json:"leaderId" validate:"required"`
	UserID    userRef        `json:"userId"`
	Ratings   map[string]int `json:"ratings" validate:"required"`
	CreatedAt time.Time      `json:"createdAt"`
}

func (d reviewDTO) toDomain() domain.Review {
	return domain.Review{
		ID:        d.ID,
		LeaderID:  d.LeaderID,
		UserID:    d.UserID.ID,
		Ratings:   d.Ratings,
		CreatedAt: d.CreatedAt,
	}
}

type userDTO struct {
	ID           string `json:"_id" validate:"required"`
	FirstName    string `json:"firstName" validate:"required"`
	LastName     string `json:"lastName"`
	Email        string `json:"email" validate:"required,email"`
	County       string `json:"county"`
	Constituency string `json:"constituency"`
	Ward         string `json:"ward"`
	Role         string `json:"role" validate:"omitempty,oneof=admin citizen"`
}

func (d userDTO) toDomain() domain.UserProfile {
	role := domain.Role(d.Role)
	if role == "" {
		role = domain.RoleCitizen
	}
	return domain.UserProfile{
		ID:        d.ID,
		FirstName: d.FirstName,
		LastName:  d.LastName,
		Email:     d.Email,
		Geography: domain.Geography{
			County:       d.County,
			Constituency: d.Constituency,
			Ward:         d.Ward,
		},
		Role: role,
	}
}

type sessionDTO struct {
	User  userDTO `json:"user" validate:"required"`
	Token string  `json:"token" validate:"required"`
}

func (d sessionDTO) toDomain() domain.Session {
	return domain.Session{User: d.User.toDomain(), Token: d.Token}
}

// checkDTO validates one decoded record and wraps failures in the
// client's validation error type.
func checkDTO(entity string, dto any) error {
	if err := validate.Struct(dto); err != nil {
		return &APIError{
			Type:         ErrorTypeValidation,
			Message:      fmt.Sprintf("backend returned a malformed %s record", entity),
			WrappedError: err,
		}
	}
	return nil
}

func leadersToDomain(dtos []leaderDTO) ([]domain.Leader, error) {
	leaders := make([]domain.Leader, 0, len(dtos))
	for _, d := range dtos {
		if err := checkDTO("leader", d); err != nil {
			return nil, err
		}
		leaders = append(leaders, d.toDomain())
	}
	return leaders, nil
}

func reviewsToDomain(dtos []reviewDTO) ([]domain.Review, error) {
	reviews := make([]domain.Review, 0, len(dtos))
	for _, d := range dtos {
		if err := checkDTO("review", d); err != nil {
			return nil, err
		}
		reviews = append(reviews, d.toDomain())
	}
	return reviews, nil
}
