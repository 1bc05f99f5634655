package databases

// go generate: mockery --name TicketDatabase

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/linesmerrill/report-nui/models"
)

const (
	ticketName  = "tickets"
	counterName = "counters"
	ticketSeqID = "ticketNumber"
)

// ErrTicketNotFound is returned when no ticket has the requested id
var ErrTicketNotFound = errors.New("ticket not found")

// TicketDatabase contains the methods to use with the ticket database
type TicketDatabase interface {
	FindByTicketID(ctx context.Context, ticketID string) (*models.Ticket, error)
	InsertOne(ctx context.Context, ticket models.Ticket) (interface{}, error)
	NextTicketNumber(ctx context.Context) (int64, error)
	CountByReporter(ctx context.Context, fivemID int) (int64, error)
}

type ticketDatabase struct {
	db DatabaseHelper
}

// NewTicketDatabase initializes a new instance of ticket database with the provided db connection
func NewTicketDatabase(db DatabaseHelper) TicketDatabase {
	return &ticketDatabase{
		db: db,
	}
}

func (t *ticketDatabase) FindByTicketID(ctx context.Context, ticketID string) (*models.Ticket, error) {
	ticket := &models.Ticket{}
	err := t.db.Collection(ticketName).FindOne(ctx, bson.M{"ticketId": ticketID}).Decode(&ticket)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, ErrTicketNotFound
	}
	if err != nil {
		return nil, err
	}
	return ticket, nil
}

func (t *ticketDatabase) InsertOne(ctx context.Context, ticket models.Ticket) (interface{}, error) {
	res, err := t.db.Collection(ticketName).InsertOne(ctx, ticket)
	if err != nil {
		return nil, err
	}
	return res.Decode(), nil
}

// NextTicketNumber increments the ticket counter document, creating it on
// first use, and returns the new value
func (t *ticketDatabase) NextTicketNumber(ctx context.Context) (int64, error) {
	opts := options.FindOneAndUpdate().
		SetUpsert(true).
		SetReturnDocument(options.After)

	c := &models.Counter{}
	err := t.db.Collection(counterName).FindOneAndUpdate(ctx,
		bson.M{"_id": ticketSeqID},
		bson.M{"$inc": bson.M{"seq": 1}},
		opts,
	).Decode(&c)
	if err != nil {
		return 0, err
	}
	return c.Seq, nil
}

func (t *ticketDatabase) CountByReporter(ctx context.Context, fivemID int) (int64, error) {
	return t.db.Collection(ticketName).CountDocuments(ctx, bson.M{"report.reporter.fivemId": fivemID})
}
