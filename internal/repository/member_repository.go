package repository

import (
	"context"
	"errors"
	"regexp"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/spec-kit/membership-service/internal/domain"
	"github.com/spec-kit/membership-service/pkg/util"
)

// MemberRepository is the sole boundary to member persistence.
type MemberRepository interface {
	Create(ctx context.Context, record domain.NewMember) (*domain.Member, error)
	GetByID(ctx context.Context, id string) (*domain.Member, error)
	List(ctx context.Context, query domain.MemberQuery) ([]domain.Member, int64, error)
}

type memberRepository struct {
	collection *mongo.Collection
}

// NewMemberRepository returns a MongoDB-backed implementation.
func NewMemberRepository(collection *mongo.Collection) MemberRepository {
	return &memberRepository{collection: collection}
}

func (r *memberRepository) Create(ctx context.Context, record domain.NewMember) (*domain.Member, error) {
	member := domain.Member{
		FirstName:              record.FirstName,
		LastName:               record.LastName,
		Email:                  record.Email,
		PhoneNumber:            record.PhoneNumber,
		AcceptedTerms:          record.AcceptedTerms,
		NewsletterSubscription: record.NewsletterSubscription,
		CreatedAt:              time.Now().UTC(),
	}

	result, err := r.collection.InsertOne(ctx, member)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return nil, util.NewDuplicateKey("email already registered", map[string]any{"email": member.Email})
		}
		return nil, util.NewStoreError(err)
	}

	oid, ok := result.InsertedID.(primitive.ObjectID)
	if !ok {
		return nil, util.NewStoreError(errors.New("unexpected inserted id type"))
	}
	member.ID = oid
	return &member, nil
}

func (r *memberRepository) GetByID(ctx context.Context, id string) (*domain.Member, error) {
	// Malformed ids fail fast without reaching the store.
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, util.NewValidationError("invalid member id", map[string]any{"id": id})
	}

	var member domain.Member
	if err := r.collection.FindOne(ctx, bson.M{"_id": oid}).Decode(&member); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, util.NewNotFound("member", map[string]any{"id": id})
		}
		return nil, util.NewStoreError(err)
	}
	return &member, nil
}

func (r *memberRepository) List(ctx context.Context, query domain.MemberQuery) ([]domain.Member, int64, error) {
	filter := buildFilter(query)

	// The count and the page are separate queries; they need not be
	// mutually consistent under concurrent writes.
	totalCount, err := r.collection.CountDocuments(ctx, filter)
	if err != nil {
		return nil, 0, util.NewStoreError(err)
	}

	opts := options.Find().
		SetSort(buildSort(query)).
		SetSkip(query.Skip()).
		SetLimit(int64(query.Limit))

	cursor, err := r.collection.Find(ctx, filter, opts)
	if err != nil {
		return nil, 0, util.NewStoreError(err)
	}
	defer cursor.Close(ctx)

	members := []domain.Member{}
	if err := cursor.All(ctx, &members); err != nil {
		return nil, 0, util.NewStoreError(err)
	}
	return members, totalCount, nil
}

// buildFilter translates a query descriptor into a store filter
// document. Search terms are quoted so user input can never act as a
// pattern or operator.
func buildFilter(query domain.MemberQuery) bson.M {
	filter := bson.M{}

	if query.Search != "" {
		pattern := primitive.Regex{Pattern: regexp.QuoteMeta(query.Search), Options: "i"}
		filter["$or"] = bson.A{
			bson.M{"firstName": pattern},
			bson.M{"lastName": pattern},
			bson.M{"email": pattern},
		}
	}

	if query.CreatedFrom != nil && query.CreatedTo != nil {
		filter["createdAt"] = bson.M{
			"$gte": *query.CreatedFrom,
			"$lte": *query.CreatedTo,
		}
	}

	return filter
}

func buildSort(query domain.MemberQuery) bson.D {
	return bson.D{{Key: query.SortField, Value: int(query.SortOrder)}}
}
