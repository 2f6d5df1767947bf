package entities

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/volatiletech/null/v8"
)

// NormalizePhoneNumber strips the separators callers may include so phone
// uniqueness holds regardless of formatting.
func NormalizePhoneNumber(s string) string {
	return strings.NewReplacer("-", "", " ", "").Replace(s)
}

// Gender represents a user's gender
type Gender string

const (
	GenderMale   Gender = "MALE"
	GenderFemale Gender = "FEMALE"
)

// Level represents a user's training level
type Level string

const (
	LevelBeginner     Level = "BEGINNER"
	LevelIntermediate Level = "INTERMEDIATE"
	LevelAdvanced     Level = "ADVANCED"
	LevelElite        Level = "ELITE"
)

// The store keeps the original Korean level labels; the API speaks the
// English enum. Conversion happens at the persistence boundary.
var levelToStorage = map[Level]string{
	LevelBeginner:     "초급",
	LevelIntermediate: "중급",
	LevelAdvanced:     "고급",
	LevelElite:        "엘리트",
}

var levelFromStorage = map[string]Level{
	"초급":  LevelBeginner,
	"중급":  LevelIntermediate,
	"고급":  LevelAdvanced,
	"엘리트": LevelElite,
}

// StorageValue returns the persisted representation of a level
func (l Level) StorageValue() string {
	if v, ok := levelToStorage[l]; ok {
		return v
	}
	return string(l)
}

// LevelFromStorage decodes a persisted level value
func LevelFromStorage(s string) (Level, error) {
	if l, ok := levelFromStorage[s]; ok {
		return l, nil
	}
	// rows written before the Korean labels were introduced
	if _, ok := levelToStorage[Level(s)]; ok {
		return Level(s), nil
	}
	return "", fmt.Errorf("unknown level value %q", s)
}

// User represents a user entity
type User struct {
	ID           uuid.UUID `json:"id"`
	PhoneNumber  string    `json:"phone_number"`
	Nickname     string    `json:"nickname"`
	Gender       Gender    `json:"gender"`
	Age          int       `json:"age"`
	Weight       float64   `json:"weight"`
	Height       float64   `json:"height"`
	PasswordHash string    `json:"-"`
	Level        Level     `json:"level"`
	IsActive     bool      `json:"is_active"`
	IsVerified   bool      `json:"is_verified"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// CreateUserInput represents input for user registration
type CreateUserInput struct {
	PhoneNumber string  `json:"phone_number" binding:"required,krmobile"`
	Nickname    string  `json:"nickname" binding:"required,min=2,max=10,nickname"`
	Gender      Gender  `json:"gender" binding:"required,oneof=MALE FEMALE"`
	Age         int     `json:"age" binding:"required,gte=10,lte=100"`
	Weight      float64 `json:"weight" binding:"required,gte=30,lte=200"`
	Height      float64 `json:"height" binding:"required,gte=100,lte=250"`
	Password    string  `json:"password" binding:"required,userpassword"`
	Level       Level   `json:"level" binding:"required,oneof=BEGINNER INTERMEDIATE ADVANCED ELITE"`
}

// LoginInput represents input for user login
type LoginInput struct {
	PhoneNumber string `json:"phone_number" binding:"required"`
	Password    string `json:"password" binding:"required"`
}

// UpdateUserInput represents a partial profile update. Absent fields are left
// untouched; the phone number has no update path.
type UpdateUserInput struct {
	Nickname *string  `json:"nickname" binding:"omitempty,min=2,max=10,nickname"`
	Age      *int     `json:"age" binding:"omitempty,gte=10,lte=100"`
	Weight   *float64 `json:"weight" binding:"omitempty,gte=30,lte=200"`
	Height   *float64 `json:"height" binding:"omitempty,gte=100,lte=250"`
	Level    *Level   `json:"level" binding:"omitempty,oneof=BEGINNER INTERMEDIATE ADVANCED ELITE"`
}

// UserPatch is the repository-facing form of a partial update
type UserPatch struct {
	Nickname null.String
	Age      null.Int
	Weight   null.Float64
	Height   null.Float64
	Level    null.String
}

// Patch converts the update input into a repository patch
func (in *UpdateUserInput) Patch() UserPatch {
	p := UserPatch{
		Nickname: null.StringFromPtr(in.Nickname),
		Age:      null.IntFromPtr(in.Age),
		Weight:   null.Float64FromPtr(in.Weight),
		Height:   null.Float64FromPtr(in.Height),
	}
	if in.Level != nil {
		p.Level = null.StringFrom(string(*in.Level))
	}
	return p
}

// IsEmpty reports whether the patch carries no fields
func (p UserPatch) IsEmpty() bool {
	return !p.Nickname.Valid && !p.Age.Valid && !p.Weight.Valid && !p.Height.Valid && !p.Level.Valid
}

// TokenResponse is the token pair returned to a client
type TokenResponse struct {
	AccessToken  string `json:"access_token"`
	TokenType    string `json:"token_type"`
	RefreshToken string `json:"refresh_token"`
}
