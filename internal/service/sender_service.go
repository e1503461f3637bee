package service

import (
	"fmt"
	"time"

	"go.uber.org/zap"

	"studiobooking/internal/entities"
	"studiobooking/internal/utils"
)

// SenderService composes and sends the booking email and SMS. Delivery runs
// in goroutines: a notification failure must never fail the booking.
type SenderService struct {
}

func NewSenderService() *SenderService {
	return &SenderService{}
}

func (s *SenderService) NotifyBooking(booking *entities.Booking, roomName, userName, userEmail, userPhone, status string) {
	start := booking.Interval.Start.UTC().Format("02 Jan 2006 15:04 MST")
	end := booking.Interval.End.UTC().Format("02 Jan 2006 15:04 MST")

	subject := fmt.Sprintf("Your studio booking is %s - Booking #%d", status, booking.ID)
	body := fmt.Sprintf(
		"Hello %s,\n\nYour booking at StudioBooking is %s.\n\n"+
			"Booking Details:\n"+
			"Booking ID: %d\n"+
			"Room: %s\n"+
			"Start: %s\n"+
			"End: %s\n\n"+
			"Thank you for choosing StudioBooking.\n\n"+
			"StudioBooking. All rights reserved. %d",
		userName, status, booking.ID, roomName, start, end, time.Now().UTC().Year(),
	)

	smsMessage := fmt.Sprintf("StudioBooking: Booking #%d (%s) is %s!\nStart: %s.\nMore details in your email.",
		booking.ID, roomName, status,
		booking.Interval.Start.UTC().Format("02/01 15:04"),
	)

	go func() {
		if err := SendEmailWithSendGrid(userEmail, userName, subject, body, body); err != nil {
			utils.GetLogger().Warn("Booking email delivery failed",
				zap.Int64("booking_id", booking.ID), zap.Error(err))
		}
	}()

	if userPhone == "" {
		return
	}
	go func() {
		if err := SendSMS(userPhone, smsMessage); err != nil {
			utils.GetLogger().Warn("Booking SMS delivery failed",
				zap.Int64("booking_id", booking.ID), zap.Error(err))
		}
	}()
}
