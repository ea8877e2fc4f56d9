package repositories

import (
	"context"
	"errors"
	"fmt"

	"bookstore/models"

	"github.com/rs/zerolog"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

type CustomerDetailsRepository interface {
	Add(ctx context.Context, userID int, req models.CustomerDetailsRequest) models.APIResponse[*models.CustomerDetails]
	ListByUser(ctx context.Context, userID int) models.APIResponse[[]models.CustomerDetails]
	Delete(ctx context.Context, addressID string, userID int) models.APIResponse[*models.CustomerDetails]
	Update(ctx context.Context, addressID string, userID int, req models.CustomerDetailsRequest) models.APIResponse[*models.CustomerDetails]
	FindByID(ctx context.Context, addressID string, userID int) models.APIResponse[*models.CustomerDetails]
}

type CustomerDetailsRepo struct {
	coll *mongo.Collection
}

var _ CustomerDetailsRepository = (*CustomerDetailsRepo)(nil)

func NewCustomerDetailsRepo(coll *mongo.Collection) *CustomerDetailsRepo {
	return &CustomerDetailsRepo{coll: coll}
}

func (r *CustomerDetailsRepo) Add(ctx context.Context, userID int, req models.CustomerDetailsRequest) models.APIResponse[*models.CustomerDetails] {
	ctx, cancel := context.WithTimeout(ctx, singleTimeout)
	defer cancel()

	details := models.NewCustomerDetails(userID, req)
	if _, err := r.coll.InsertOne(ctx, details); err != nil {
		zerolog.Ctx(ctx).Error().Err(err).Int("user_id", userID).Msg("insert customer details failed")
		return models.Fail[*models.CustomerDetails](fmt.Sprintf("An error occurred while adding customer details: %s", err))
	}
	return models.OK("Added customer details successfully", &details)
}

func (r *CustomerDetailsRepo) ListByUser(ctx context.Context, userID int) models.APIResponse[[]models.CustomerDetails] {
	ctx, cancel := context.WithTimeout(ctx, listTimeout)
	defer cancel()

	cursor, err := r.coll.Find(ctx, bson.M{"userId": userID})
	if err != nil {
		return models.Fail[[]models.CustomerDetails](fmt.Sprintf("An error occurred while retrieving customer details: %s", err))
	}

	var list []models.CustomerDetails
	if err := cursor.All(ctx, &list); err != nil {
		return models.Fail[[]models.CustomerDetails](fmt.Sprintf("An error occurred while retrieving customer details: %s", err))
	}

	if len(list) == 0 {
		return models.Fail[[]models.CustomerDetails]("No customer details found for the given user.")
	}
	return models.OK("Customer details fetched successfully.", list)
}

func (r *CustomerDetailsRepo) Delete(ctx context.Context, addressID string, userID int) models.APIResponse[*models.CustomerDetails] {
	filter, ok := ownedAddress(ctx, addressID, userID)
	if !ok {
		return models.Fail[*models.CustomerDetails]("Address not found")
	}

	if _, err := r.findOne(ctx, filter); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return models.Fail[*models.CustomerDetails]("Address not found")
		}
		return models.Fail[*models.CustomerDetails](fmt.Sprintf("An error occurred while deleting the address: %s", err))
	}

	ctx, cancel := context.WithTimeout(ctx, singleTimeout)
	defer cancel()

	res, err := r.coll.DeleteOne(ctx, filter)
	if err != nil {
		return models.Fail[*models.CustomerDetails](fmt.Sprintf("An error occurred while deleting the address: %s", err))
	}
	if res.DeletedCount == 0 {
		return models.Fail[*models.CustomerDetails]("Failed to delete the address.")
	}
	return models.OK[*models.CustomerDetails]("Deleted address successfully.", nil)
}

// Update merges the non-empty request fields into the stored document and
// replaces it. A replace that changes nothing is reported as a failure.
func (r *CustomerDetailsRepo) Update(ctx context.Context, addressID string, userID int, req models.CustomerDetailsRequest) models.APIResponse[*models.CustomerDetails] {
	filter, ok := ownedAddress(ctx, addressID, userID)
	if !ok {
		return models.Fail[*models.CustomerDetails]("Customer details not found.")
	}

	existing, err := r.findOne(ctx, filter)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return models.Fail[*models.CustomerDetails]("Customer details not found.")
		}
		return models.Fail[*models.CustomerDetails](fmt.Sprintf("An error occurred while updating customer details: %s", err))
	}

	existing.Apply(req)

	ctx, cancel := context.WithTimeout(ctx, singleTimeout)
	defer cancel()

	res, err := r.coll.ReplaceOne(ctx, filter, existing)
	if err != nil {
		return models.Fail[*models.CustomerDetails](fmt.Sprintf("An error occurred while updating customer details: %s", err))
	}
	if res.ModifiedCount == 0 {
		return models.Fail[*models.CustomerDetails]("No changes were made to the customer details.")
	}
	return models.OK("Customer details updated successfully.", existing)
}

func (r *CustomerDetailsRepo) FindByID(ctx context.Context, addressID string, userID int) models.APIResponse[*models.CustomerDetails] {
	filter, ok := ownedAddress(ctx, addressID, userID)
	if !ok {
		return models.Fail[*models.CustomerDetails]("Customer details not found.")
	}

	details, err := r.findOne(ctx, filter)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return models.Fail[*models.CustomerDetails]("Customer details not found.")
		}
		return models.Fail[*models.CustomerDetails](fmt.Sprintf("An error occurred while retrieving customer details: %s", err))
	}
	return models.OK("Customer details retrieved successfully.", details)
}

func (r *CustomerDetailsRepo) findOne(ctx context.Context, filter bson.M) (*models.CustomerDetails, error) {
	ctx, cancel := context.WithTimeout(ctx, singleTimeout)
	defer cancel()

	var details models.CustomerDetails
	if err := r.coll.FindOne(ctx, filter).Decode(&details); err != nil {
		return nil, err
	}
	return &details, nil
}

// ownedAddress builds the (id, owner) filter. A malformed id cannot match
// any document, so it is reported as not found.
func ownedAddress(ctx context.Context, addressID string, userID int) (bson.M, bool) {
	oid, err := primitive.ObjectIDFromHex(addressID)
	if err != nil {
		zerolog.Ctx(ctx).Debug().Str("address_id", addressID).Msg("malformed address id")
		return nil, false
	}
	return ownedBy(oid, userID), true
}
