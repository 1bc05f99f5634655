package databases_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/linesmerrill/report-nui/config"
	"github.com/linesmerrill/report-nui/databases"
	"github.com/linesmerrill/report-nui/databases/mocks"
	"github.com/linesmerrill/report-nui/models"
)

func TestNewTicketDatabase(t *testing.T) {
	t.Setenv("DB_URI", "mongodb://127.0.0.1:27017")
	t.Setenv("DB_NAME", "test")
	conf := config.New()

	dbClient, err := databases.NewClient(conf)
	assert.NoError(t, err)

	db := databases.NewDatabase(conf, dbClient)

	ticketDB := databases.NewTicketDatabase(db)

	assert.NotEmpty(t, ticketDB)
}

func TestTicketDatabase_FindByTicketID(t *testing.T) {
	dbHelper := &mocks.DatabaseHelper{}
	collectionHelper := &mocks.CollectionHelper{}
	srHelperErr := &mocks.SingleResultHelper{}
	srHelperMissing := &mocks.SingleResultHelper{}
	srHelperCorrect := &mocks.SingleResultHelper{}

	srHelperErr.On("Decode", mock.Anything).Return(errors.New("mocked-error"))
	srHelperMissing.On("Decode", mock.Anything).Return(mongo.ErrNoDocuments)
	srHelperCorrect.On("Decode", mock.Anything).Return(nil).Run(func(args mock.Arguments) {
		arg := args.Get(0).(**models.Ticket)
		(*arg).TicketID = "mocked-ticket"
		(*arg).TicketNumber = 7
	})

	collectionHelper.On("FindOne", context.Background(), bson.M{"ticketId": "broken"}).Return(srHelperErr)
	collectionHelper.On("FindOne", context.Background(), bson.M{"ticketId": "missing"}).Return(srHelperMissing)
	collectionHelper.On("FindOne", context.Background(), bson.M{"ticketId": "mocked-ticket"}).Return(srHelperCorrect)
	dbHelper.On("Collection", "tickets").Return(collectionHelper)

	ticketDB := databases.NewTicketDatabase(dbHelper)

	ticket, err := ticketDB.FindByTicketID(context.Background(), "broken")
	assert.Nil(t, ticket)
	assert.EqualError(t, err, "mocked-error")

	ticket, err = ticketDB.FindByTicketID(context.Background(), "missing")
	assert.Nil(t, ticket)
	assert.ErrorIs(t, err, databases.ErrTicketNotFound)

	ticket, err = ticketDB.FindByTicketID(context.Background(), "mocked-ticket")
	assert.NoError(t, err)
	assert.Equal(t, int64(7), ticket.TicketNumber)
}

func TestTicketDatabase_InsertOne(t *testing.T) {
	dbHelper := &mocks.DatabaseHelper{}
	collectionHelper := &mocks.CollectionHelper{}
	insertResult := &mocks.InsertOneResultHelper{}

	ticket := models.Ticket{TicketID: "t-1", TicketNumber: 1}
	insertResult.On("Decode").Return("inserted-id")
	collectionHelper.On("InsertOne", context.Background(), ticket).Return(insertResult, nil)
	collectionHelper.On("InsertOne", context.Background(), models.Ticket{TicketID: "dup"}).Return(nil, errors.New("duplicate key"))
	dbHelper.On("Collection", "tickets").Return(collectionHelper)

	ticketDB := databases.NewTicketDatabase(dbHelper)

	id, err := ticketDB.InsertOne(context.Background(), ticket)
	assert.NoError(t, err)
	assert.Equal(t, "inserted-id", id)

	_, err = ticketDB.InsertOne(context.Background(), models.Ticket{TicketID: "dup"})
	assert.EqualError(t, err, "duplicate key")
}

func TestTicketDatabase_NextTicketNumber(t *testing.T) {
	dbHelper := &mocks.DatabaseHelper{}
	collectionHelper := &mocks.CollectionHelper{}
	srHelper := &mocks.SingleResultHelper{}

	srHelper.On("Decode", mock.Anything).Return(nil).Run(func(args mock.Arguments) {
		arg := args.Get(0).(**models.Counter)
		(*arg).Seq = 42
	})
	collectionHelper.On("FindOneAndUpdate",
		context.Background(),
		bson.M{"_id": "ticketNumber"},
		bson.M{"$inc": bson.M{"seq": 1}},
		mock.Anything,
	).Return(srHelper)
	dbHelper.On("Collection", "counters").Return(collectionHelper)

	n, err := databases.NewTicketDatabase(dbHelper).NextTicketNumber(context.Background())
	assert.NoError(t, err)
	assert.Equal(t, int64(42), n)
}

func TestTicketDatabase_CountByReporter(t *testing.T) {
	dbHelper := &mocks.DatabaseHelper{}
	collectionHelper := &mocks.CollectionHelper{}
	collectionHelper.On("CountDocuments", context.Background(), bson.M{"report.reporter.fivemId": 9}).Return(int64(3), nil)
	dbHelper.On("Collection", "tickets").Return(collectionHelper)

	n, err := databases.NewTicketDatabase(dbHelper).CountByReporter(context.Background(), 9)
	assert.NoError(t, err)
	assert.Equal(t, int64(3), n)
}

func TestMemoryTicketDatabase(t *testing.T) {
	ctx := context.Background()
	db := databases.NewMemoryTicketDatabase()

	first, _ := db.NextTicketNumber(ctx)
	second, _ := db.NextTicketNumber(ctx)
	assert.Equal(t, int64(1), first)
	assert.Equal(t, int64(2), second)

	ticket := models.Ticket{TicketID: "abc", TicketNumber: first}
	ticket.Report.Reporter.FivemID = 5
	id, err := db.InsertOne(ctx, ticket)
	assert.NoError(t, err)
	assert.Equal(t, "abc", id)

	found, err := db.FindByTicketID(ctx, "abc")
	assert.NoError(t, err)
	assert.Equal(t, int64(1), found.TicketNumber)

	_, err = db.FindByTicketID(ctx, "nope")
	assert.ErrorIs(t, err, databases.ErrTicketNotFound)

	n, _ := db.CountByReporter(ctx, 5)
	assert.Equal(t, int64(1), n)
}
