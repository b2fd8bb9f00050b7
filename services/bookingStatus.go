package services

import "WellnessHub/models"

// bookingTransitions lists where each status may move next.
var bookingTransitions = map[models.BookingStatus][]models.BookingStatus{
	models.StatusPending:  {models.StatusAccepted, models.StatusRejected},
	models.StatusAccepted: {models.StatusRejected},
	models.StatusRejected: {},
}

func CanTransition(from, to models.BookingStatus) bool {
	for _, next := range bookingTransitions[from] {
		if next == to {
			return true
		}
	}
	return false
}
