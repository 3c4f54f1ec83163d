package services

import "github.com/harentsoaR/doctors-portal-api/internal/models"

// AvailableSlots returns a copy of the service catalog with each service's
// slot template reduced to the slots not yet booked on the queried date.
// Bookings are matched to services by treatment name; each booking consumes
// exactly one instance of its slot label, so a label that appears twice in a
// template and is booked once keeps one available instance. Template order is
// preserved and the inputs are never mutated.
//
// O(services x bookings) on the day's data. Fine at this scale; a grouped
// aggregation in the store is the fix if catalogs or daily volume ever grow.
func AvailableSlots(catalog []models.Service, bookings []models.Booking) []models.Service {
	result := make([]models.Service, len(catalog))
	for i, service := range catalog {
		booked := make(map[string]int)
		for _, b := range bookings {
			if b.Treatment == service.Name {
				booked[b.Slot]++
			}
		}

		available := make([]string, 0, len(service.Slots))
		for _, slot := range service.Slots {
			if booked[slot] > 0 {
				booked[slot]--
				continue
			}
			available = append(available, slot)
		}

		service.Slots = available
		result[i] = service
	}
	return result
}
