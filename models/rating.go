package models

import (
	"bytes"
	"encoding/json"
	"errors"
	"strconv"
	"strings"
)

// Rating is a single user's score for a movie. (UserID, MovieID) is unique.
type Rating struct {
	ID      int64   `json:"id"`
	UserID  int64   `json:"user"`
	MovieID int64   `json:"movie"`
	Rating  int     `json:"rating"`
	Comment *string `json:"comment"`
}

// RatingInput is the body of rating create and update. Both fields are
// optional on update; Rating is required on create.
type RatingInput struct {
	Rating  *RatingScore `json:"rating"`
	Comment *string      `json:"comment"`
}

// RatingScore accepts a JSON number or a numeric string. A string that does
// not parse leaves Valid false so that the validator can reject it with a
// domain error rather than a decoding error.
type RatingScore struct {
	Value float64
	Valid bool
}

var errRatingScoreType = errors.New("rating must be a number or a numeric string")

// UnmarshalJSON implements [json.Unmarshaler].
func (s *RatingScore) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	if len(b) == 0 || bytes.Equal(b, []byte("null")) {
		*s = RatingScore{}
		return nil
	}

	switch b[0] {
	case '"':
		var raw string
		if err := json.Unmarshal(b, &raw); err != nil {
			return err
		}
		v, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
		*s = RatingScore{Value: v, Valid: err == nil}
		return nil
	case '{', '[', 't', 'f':
		return errRatingScoreType
	default:
		var v float64
		if err := json.Unmarshal(b, &v); err != nil {
			return err
		}
		*s = RatingScore{Value: v, Valid: true}
		return nil
	}
}

// MarshalJSON implements [json.Marshaler].
func (s RatingScore) MarshalJSON() ([]byte, error) {
	if !s.Valid {
		return []byte("null"), nil
	}
	return json.Marshal(s.Value)
}

// NewRatingScore builds a valid score, mainly for tests and clients.
func NewRatingScore(v float64) *RatingScore {
	return &RatingScore{Value: v, Valid: true}
}

// RatingView is a rating in the public per-movie listing; the rater is shown
// by email.
type RatingView struct {
	ID      int64   `json:"id"`
	User    string  `json:"user"`
	Rating  int     `json:"rating"`
	Comment *string `json:"comment"`
}

// UserRating is an entry of the authenticated user's own ratings, with the
// movie denormalized for display.
type UserRating struct {
	ID         int64   `json:"id"`
	MovieID    int64   `json:"movie"`
	MovieTitle string  `json:"movie_title"`
	Poster     string  `json:"poster"`
	Rating     int     `json:"rating"`
	Comment    *string `json:"comment"`
}
