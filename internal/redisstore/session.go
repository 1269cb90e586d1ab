package redisstore

import (
	"time"

	"github.com/verte-zerg/speedtyper/internal/model"
)

type session struct {
	ID            int64     `json:"id"`
	Difficulty    string    `json:"difficulty"`
	Mode          string    `json:"mode"`
	Score         int       `json:"score"`
	WrongAttempts int       `json:"wrongAttempts"`
	WPM           int       `json:"wpm"`
	Accuracy      float64   `json:"accuracy"`
	StartedAt     time.Time `json:"startedAt"`
	EndedAt       time.Time `json:"endedAt"`
}

func sessionFrom(id int64, o model.SessionOutcome) session {
	return session{
		ID:            id,
		Difficulty:    string(o.Difficulty),
		Mode:          string(o.Mode),
		Score:         o.Score,
		WrongAttempts: o.WrongAttempts,
		WPM:           o.WPM,
		Accuracy:      o.Accuracy,
		StartedAt:     o.StartedAt,
		EndedAt:       o.EndedAt,
	}
}

func (s session) record() model.SessionRecord {
	return model.SessionRecord{
		ID:            s.ID,
		Difficulty:    model.Difficulty(s.Difficulty),
		Mode:          model.GameMode(s.Mode),
		Score:         s.Score,
		WrongAttempts: s.WrongAttempts,
		WPM:           s.WPM,
		Accuracy:      s.Accuracy,
		StartedAt:     s.StartedAt,
		EndedAt:       s.EndedAt,
	}
}
