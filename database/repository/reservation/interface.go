package reservationRepo

import (
	"context"

	"tablebot/database"
	"tablebot/models"

	"go.mongodb.org/mongo-driver/mongo"
)

// ReservationRepository persists confirmed bookings.
type ReservationRepository interface {
	Create(ctx context.Context, reservation models.Reservation) error
	GetByID(ctx context.Context, reservationID string) (*models.Reservation, error)
	GetByUserID(ctx context.Context, userID string) ([]models.Reservation, error)
	GetByDate(ctx context.Context, date string) ([]models.Reservation, error)
	Search(ctx context.Context, filter models.ReservationSearch) ([]models.Reservation, error)
	UpdateStatus(ctx context.Context, reservationID, userID, status string) (bool, error)
	All(ctx context.Context) ([]models.Reservation, error)
}

type mongoReservationRepo struct {
	coll *mongo.Collection
}

// NewMongoReservationRepo returns a ReservationRepository backed by MongoDB.
func NewMongoReservationRepo(dbName string) ReservationRepository {
	db := database.MongoClient.Database(dbName)
	return &mongoReservationRepo{
		coll: db.Collection("reservations"),
	}
}
