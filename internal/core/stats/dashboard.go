package stats

import (
	"time"

	"github.com/aqarcrm/aqarcrm/internal/core/client"
	"github.com/aqarcrm/aqarcrm/internal/core/listing"
	"github.com/aqarcrm/aqarcrm/internal/core/maintenance"
	"github.com/aqarcrm/aqarcrm/internal/core/rental"
	"github.com/aqarcrm/aqarcrm/internal/core/visit"
)

type Dashboard struct {
	Properties         int                `json:"properties"`
	PropertiesByStatus map[string]int     `json:"properties_by_status"`
	PropertyStatusPct  map[string]float64 `json:"property_status_pct"`
	PropertiesByType   map[string]int     `json:"properties_by_type"`
	Clients            int                `json:"clients"`
	ClientsByRole      map[string]int     `json:"clients_by_role"`
	ClientsByStatus    map[string]int     `json:"clients_by_status"`
	ActiveContracts    int                `json:"active_contracts"`
	MonthRevenue       float64            `json:"month_revenue"`
	Outstanding        float64            `json:"outstanding"`
	OpenMaintenance    int                `json:"open_maintenance"`
	UpcomingVisits     int                `json:"upcoming_visits"`
	OpenAlerts         int                `json:"open_alerts"`
}

type Service struct {
	properties  *listing.Repository
	clients     *client.Repository
	rentals     *rental.Service
	maintenance *maintenance.Repository
	visits      *visit.Repository
}

func NewService(
	properties *listing.Repository,
	clients *client.Repository,
	rentals *rental.Service,
	maint *maintenance.Repository,
	visits *visit.Repository,
) *Service {
	return &Service{
		properties:  properties,
		clients:     clients,
		rentals:     rentals,
		maintenance: maint,
		visits:      visits,
	}
}

func (s *Service) Dashboard(now time.Time) *Dashboard {
	properties := s.properties.All()
	clients := s.clients.All()

	monthStart := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())
	nextMonth := monthStart.AddDate(0, 1, 0)

	activeContracts := len(s.rentals.ListContracts(rental.ContractFilter{Status: rental.ContractActive}))

	openMaintenance := 0
	for _, m := range s.maintenance.All() {
		switch m.Status {
		case maintenance.StatusReported, maintenance.StatusScheduled, maintenance.StatusInProgress:
			openMaintenance++
		}
	}

	upcomingVisits := 0
	weekAhead := now.Add(7 * 24 * time.Hour)
	for _, v := range s.visits.All() {
		if v.ScheduledAt.After(now) && v.ScheduledAt.Before(weekAhead) {
			switch v.Status {
			case visit.StatusScheduled, visit.StatusConfirmed, visit.StatusRescheduled:
				upcomingVisits++
			}
		}
	}

	return &Dashboard{
		Properties:         len(properties),
		PropertiesByStatus: CountBy(properties, func(p listing.Property) string { return string(p.Status) }),
		PropertyStatusPct:  PercentBy(properties, func(p listing.Property) string { return string(p.Status) }),
		PropertiesByType:   CountBy(properties, func(p listing.Property) string { return string(p.Type) }),
		Clients:            len(clients),
		ClientsByRole:      CountBy(clients, func(c client.Client) string { return string(c.Role) }),
		ClientsByStatus:    CountBy(clients, func(c client.Client) string { return string(c.Status) }),
		ActiveContracts:    activeContracts,
		MonthRevenue:       s.rentals.PaidTotalBetween(monthStart, nextMonth),
		Outstanding:        s.rentals.OutstandingTotal(),
		OpenMaintenance:    openMaintenance,
		UpcomingVisits:     upcomingVisits,
		OpenAlerts:         len(s.rentals.ListAlerts(false)),
	}
}
