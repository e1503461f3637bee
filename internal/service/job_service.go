package service

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"studiobooking/internal/utils"
)

// JobService holds the periodic maintenance work the cron scheduler runs.
type JobService struct {
	Availability *AvailabilityService
	Rooms        RoomRepository
}

func NewJobService(availability *AvailabilityService, rooms RoomRepository) *JobService {
	return &JobService{Availability: availability, Rooms: rooms}
}

// WarmTodaySnapshots recomputes today's schedule for every room, which pulls
// fresh booking snapshots into the cache. One room failing does not stop the
// sweep.
func (s *JobService) WarmTodaySnapshots(ctx context.Context) error {
	today := time.Now().UTC().Format(dateLayout)

	rooms, err := s.Rooms.ListRooms(ctx)
	if err != nil {
		return fmt.Errorf("cron job: failed to list rooms: %w", err)
	}

	warmed := 0
	for _, room := range rooms {
		if _, err := s.Availability.DaySchedule(ctx, room.ID, today); err != nil {
			utils.GetLogger().Warn("Cron job: snapshot warm failed for room",
				zap.Int64("room_id", room.ID), zap.String("date", today), zap.Error(err))
			continue
		}
		warmed++
	}

	utils.GetLogger().Info("Cron job: warmed booking snapshots",
		zap.Int("rooms", warmed), zap.Int("total", len(rooms)), zap.String("date", today))
	return nil
}
