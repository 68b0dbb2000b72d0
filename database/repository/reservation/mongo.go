package reservationRepo

import (
	"context"

	"tablebot/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// Create inserts a confirmed reservation.
func (r *mongoReservationRepo) Create(ctx context.Context, reservation models.Reservation) error {
	_, err := r.coll.InsertOne(ctx, reservation)
	return err
}

// GetByID returns one reservation by its public id.
func (r *mongoReservationRepo) GetByID(ctx context.Context, reservationID string) (*models.Reservation, error) {
	var res models.Reservation
	err := r.coll.FindOne(ctx, bson.M{"reservationId": reservationID}).Decode(&res)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &res, nil
}

// GetByUserID fetches every reservation made by a user, newest first.
func (r *mongoReservationRepo) GetByUserID(ctx context.Context, userID string) ([]models.Reservation, error) {
	return r.find(ctx, bson.M{"userId": userID})
}

// GetByDate fetches reservations for a DD-MM-YYYY date.
func (r *mongoReservationRepo) GetByDate(ctx context.Context, date string) ([]models.Reservation, error) {
	return r.find(ctx, bson.M{"date": date})
}

// Search filters reservations by any combination of name, date, and status.
func (r *mongoReservationRepo) Search(ctx context.Context, filter models.ReservationSearch) ([]models.Reservation, error) {
	query := bson.M{}
	if filter.Name != "" {
		query["name"] = bson.M{"$regex": filter.Name, "$options": "i"}
	}
	if filter.Date != "" {
		query["date"] = filter.Date
	}
	if filter.Status != "" {
		query["status"] = filter.Status
	}
	return r.find(ctx, query)
}

// UpdateStatus changes a reservation's status when it belongs to the user.
// Reports whether a matching reservation was found.
func (r *mongoReservationRepo) UpdateStatus(ctx context.Context, reservationID, userID, status string) (bool, error) {
	res, err := r.coll.UpdateOne(ctx,
		bson.M{"reservationId": reservationID, "userId": userID},
		bson.M{"$set": bson.M{"status": status}},
	)
	if err != nil {
		return false, err
	}
	return res.MatchedCount > 0, nil
}

// All returns every reservation, newest first.
func (r *mongoReservationRepo) All(ctx context.Context) ([]models.Reservation, error) {
	return r.find(ctx, bson.M{})
}

func (r *mongoReservationRepo) find(ctx context.Context, query bson.M) ([]models.Reservation, error) {
	opts := options.Find().SetSort(bson.M{"createdAt": -1})
	cursor, err := r.coll.Find(ctx, query, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var out []models.Reservation
	if err := cursor.All(ctx, &out); err != nil {
		return nil, err
	}
	return out, nil
}
