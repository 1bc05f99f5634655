package databases

import (
	"context"
	"sync"

	"github.com/linesmerrill/report-nui/models"
)

type memoryTicketDatabase struct {
	mu      sync.RWMutex
	tickets []models.Ticket
	seq     int64
}

// NewMemoryTicketDatabase returns a TicketDatabase kept in process memory,
// used by the development host when no DB_URI is configured
func NewMemoryTicketDatabase() TicketDatabase {
	return &memoryTicketDatabase{}
}

func (m *memoryTicketDatabase) FindByTicketID(_ context.Context, ticketID string) (*models.Ticket, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	for _, t := range m.tickets {
		if t.TicketID == ticketID {
			found := t
			return &found, nil
		}
	}
	return nil, ErrTicketNotFound
}

func (m *memoryTicketDatabase) InsertOne(_ context.Context, ticket models.Ticket) (interface{}, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.tickets = append(m.tickets, ticket)
	return ticket.TicketID, nil
}

func (m *memoryTicketDatabase) NextTicketNumber(context.Context) (int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.seq++
	return m.seq, nil
}

func (m *memoryTicketDatabase) CountByReporter(_ context.Context, fivemID int) (int64, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	var n int64
	for _, t := range m.tickets {
		if t.Report.Reporter.FivemID == fivemID {
			n++
		}
	}
	return n, nil
}
