package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	"studiobooking/internal/entities"
)

var ErrRoomNotFound = errors.New("room not found")

// RoomAPIRepository reads the studio/room catalog (names, working hours, slot
// granularity) from the booking backend.
type RoomAPIRepository struct {
	BaseURL string
	Client  *http.Client
}

func NewRoomAPIRepository(baseURL string, client *http.Client) *RoomAPIRepository {
	if client == nil {
		client = &http.Client{Timeout: 10 * time.Second}
	}
	return &RoomAPIRepository{BaseURL: baseURL, Client: client}
}

func (r *RoomAPIRepository) ListRooms(ctx context.Context) ([]entities.Room, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, r.BaseURL+"/api/rooms", nil)
	if err != nil {
		return nil, err
	}

	resp, err := r.Client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUpstream, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("%w: listing rooms returned status %d", ErrUpstream, resp.StatusCode)
	}

	var rooms []entities.Room
	if err := json.NewDecoder(resp.Body).Decode(&rooms); err != nil {
		return nil, fmt.Errorf("%w: decoding room list: %v", ErrUpstream, err)
	}
	return rooms, nil
}

func (r *RoomAPIRepository) GetRoom(ctx context.Context, roomID int64) (*entities.Room, error) {
	url := fmt.Sprintf("%s/api/rooms/%d", r.BaseURL, roomID)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}

	resp, err := r.Client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUpstream, err)
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusNotFound:
		return nil, ErrRoomNotFound
	case resp.StatusCode != http.StatusOK:
		return nil, fmt.Errorf("%w: fetching room %d returned status %d", ErrUpstream, roomID, resp.StatusCode)
	}

	var room entities.Room
	if err := json.NewDecoder(resp.Body).Decode(&room); err != nil {
		return nil, fmt.Errorf("%w: decoding room %d: %v", ErrUpstream, roomID, err)
	}
	return &room, nil
}
