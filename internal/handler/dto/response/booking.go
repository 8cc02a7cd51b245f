package response

import (
	"time"

	"tutorlink/internal/usecase/readmodel"

	"github.com/google/uuid"
	"github.com/jinzhu/copier"
)

type BookingResponse struct {
	ID          uuid.UUID `json:"id"`
	TutorID     uuid.UUID `json:"tutorId"`
	TutorName   string    `json:"tutorName"`
	StudentID   uuid.UUID `json:"studentId"`
	StudentName string    `json:"studentName"`
	Date        string    `json:"date"`
	Time        string    `json:"time"`
	Notes       *string   `json:"notes,omitempty"`
	Status      string    `json:"status"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

type BookingListResponse struct {
	ID        uuid.UUID `json:"id"`
	TutorID   uuid.UUID `json:"tutorId"`
	TutorName string    `json:"tutorName"`
	StudentID uuid.UUID `json:"studentId"`
	Date      string    `json:"date"`
	Time      string    `json:"time"`
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"createdAt"`
}

type AvailabilityResponse struct {
	TutorID        uuid.UUID `json:"tutorId"`
	Date           string    `json:"date"`
	AvailableSlots []string  `json:"availableSlots"`
}

func FromBookingView(rm *readmodel.BookingView) *BookingResponse {
	var resp BookingResponse
	// Field names line up with the read model; copier does the mapping.
	if err := copier.Copy(&resp, rm); err != nil {
		return &BookingResponse{}
	}
	return &resp
}

func FromBookingListItems(items []*readmodel.BookingListItem) []*BookingListResponse {
	resps := make([]*BookingListResponse, 0, len(items))
	for _, item := range items {
		var resp BookingListResponse
		if err := copier.Copy(&resp, item); err != nil {
			continue
		}
		resps = append(resps, &resp)
	}
	return resps
}

func NewAvailabilityResponse(tutorID uuid.UUID, date string, slots []string) *AvailabilityResponse {
	if slots == nil {
		slots = []string{}
	}
	return &AvailabilityResponse{
		TutorID:        tutorID,
		Date:           date,
		AvailableSlots: slots,
	}
}
