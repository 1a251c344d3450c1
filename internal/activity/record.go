package activity

import (
	"fmt"
	"time"
)

// Record is a snapshot of one activity from the athlete's activity list.
// Heart rate values are nil unless the activity was recorded with heart rate.
type Record struct {
	Name             string
	Type             string
	ElapsedTime      float64
	MovingTime       float64
	HasHeartRate     bool
	AverageHeartRate *float64
	MaxHeartRate     *float64
	AverageSpeed     float64
	MaxSpeed         float64
	PRCount          float64
}

func (r Record) ElapsedDuration() time.Duration {
	return seconds(r.ElapsedTime)
}

func (r Record) MovingDuration() time.Duration {
	return seconds(r.MovingTime)
}

func seconds(s float64) time.Duration {
	return time.Duration(s * float64(time.Second))
}

type wireRecord struct {
	ElapsedTime      *float64 `json:"elapsed_time"`
	Type             *string  `json:"type"`
	AverageHeartRate *float64 `json:"average_heartrate"`
	MaxHeartRate     *float64 `json:"max_heartrate"`
	HasHeartRate     *bool    `json:"has_heartrate"`
	AverageSpeed     *float64 `json:"average_speed"`
	MaxSpeed         *float64 `json:"max_speed"`
	MovingTime       *float64 `json:"moving_time"`
	Name             *string  `json:"name"`
	PRCount          *float64 `json:"pr_count"`
}

func (w wireRecord) record() (Record, error) {
	switch {
	case w.ElapsedTime == nil:
		return Record{}, missingField("elapsed_time")
	case w.MovingTime == nil:
		return Record{}, missingField("moving_time")
	case w.Type == nil:
		return Record{}, missingField("type")
	case w.Name == nil:
		return Record{}, missingField("name")
	case w.HasHeartRate == nil:
		return Record{}, missingField("has_heartrate")
	case w.AverageSpeed == nil:
		return Record{}, missingField("average_speed")
	case w.MaxSpeed == nil:
		return Record{}, missingField("max_speed")
	case w.PRCount == nil:
		return Record{}, missingField("pr_count")
	}

	rec := Record{
		Name:         *w.Name,
		Type:         *w.Type,
		ElapsedTime:  *w.ElapsedTime,
		MovingTime:   *w.MovingTime,
		HasHeartRate: *w.HasHeartRate,
		AverageSpeed: *w.AverageSpeed,
		MaxSpeed:     *w.MaxSpeed,
		PRCount:      *w.PRCount,
	}
	if rec.HasHeartRate {
		rec.AverageHeartRate = w.AverageHeartRate
		rec.MaxHeartRate = w.MaxHeartRate
	}
	return rec, nil
}

func missingField(name string) error {
	return fmt.Errorf("missing field %s", name)
}
