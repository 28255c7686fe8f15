package services

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.uber.org/zap"

	"github.com/freight-parser/app/models"
)

// ReviewService persists low-confidence extractions for human review.
type ReviewService struct {
	collection *mongo.Collection
	logger     *zap.Logger
}

// reviewConfidenceThreshold is the origin confidence below which an
// automatic result is queued for review.
const reviewConfidenceThreshold = 0.7

// NewReviewService prepares the parse_reviews collection and its indexes.
// Index creation failure is logged, not fatal: the collection still works,
// only slower.
func NewReviewService(db *mongo.Database, logger *zap.Logger) *ReviewService {
	collection := db.Collection("parse_reviews")

	indexModels := []mongo.IndexModel{
		{Keys: bson.D{bson.E{Key: "status", Value: 1}}},
		{Keys: bson.D{bson.E{Key: "created_at", Value: -1}}},
		{Keys: bson.D{bson.E{Key: "confidence", Value: 1}}},
	}
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if _, err := collection.Indexes().CreateMany(ctx, indexModels); err != nil {
		logger.Warn("could not create parse_reviews indexes", zap.Error(err))
	}

	return &ReviewService{collection: collection, logger: logger}
}

// ShouldReview reports whether an automatic result is weak enough to
// queue: an ambiguous or low-confidence origin, or foul language.
func (rs *ReviewService) ShouldReview(result *models.ParseResult) bool {
	if result.FoulLanguage {
		return true
	}
	o := result.Locations.Origin
	if o == nil {
		return false
	}
	return o.IsAmbiguous || o.Confidence < reviewConfidenceThreshold
}

// Enqueue stores a new pending review.
func (rs *ReviewService) Enqueue(ctx context.Context, result *models.ParseResult) (*models.ParseReview, error) {
	review := models.NewParseReview(result)
	res, err := rs.collection.InsertOne(ctx, review)
	if err != nil {
		return nil, fmt.Errorf("insert review: %w", err)
	}
	if oid, ok := res.InsertedID.(primitive.ObjectID); ok {
		review.ID = oid
	}
	rs.logger.Debug("queued parse review",
		zap.String("id", review.ID.Hex()),
		zap.Float64("confidence", review.Confidence))
	return review, nil
}

// Get fetches one review by hex id.
func (rs *ReviewService) Get(ctx context.Context, id string) (*models.ParseReview, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, fmt.Errorf("invalid review id %q: %w", id, err)
	}
	var review models.ParseReview
	if err := rs.collection.FindOne(ctx, bson.M{"_id": oid}).Decode(&review); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, fmt.Errorf("find review: %w", err)
	}
	return &review, nil
}

// List returns reviews filtered by status (empty means all), newest
// first.
func (rs *ReviewService) List(ctx context.Context, status string, limit, offset int) ([]models.ParseReview, error) {
	filter := bson.M{}
	if status != "" {
		filter["status"] = status
	}
	if limit <= 0 || limit > 200 {
		limit = 50
	}

	opts := options.Find().
		SetSort(bson.D{bson.E{Key: "created_at", Value: -1}}).
		SetLimit(int64(limit)).
		SetSkip(int64(offset))

	cursor, err := rs.collection.Find(ctx, filter, opts)
	if err != nil {
		return nil, fmt.Errorf("list reviews: %w", err)
	}
	defer cursor.Close(ctx)

	var reviews []models.ParseReview
	if err := cursor.All(ctx, &reviews); err != nil {
		return nil, fmt.Errorf("decode reviews: %w", err)
	}
	return reviews, nil
}

// Approve accepts the automatic result.
func (rs *ReviewService) Approve(ctx context.Context, id, reviewerID string) (*models.ParseReview, error) {
	review, err := rs.Get(ctx, id)
	if err != nil || review == nil {
		return nil, err
	}
	review.Approve(reviewerID)
	return review, rs.save(ctx, review)
}

// Reject discards the automatic result.
func (rs *ReviewService) Reject(ctx context.Context, id, reviewerID string) (*models.ParseReview, error) {
	review, err := rs.Get(ctx, id)
	if err != nil || review == nil {
		return nil, err
	}
	review.Reject(reviewerID)
	return review, rs.save(ctx, review)
}

// Correct stores a manually fixed result and approves the review.
func (rs *ReviewService) Correct(ctx context.Context, id, reviewerID string, manual models.ParseResult) (*models.ParseReview, error) {
	review, err := rs.Get(ctx, id)
	if err != nil || review == nil {
		return nil, err
	}
	review.SetManualResult(manual, reviewerID)
	return review, rs.save(ctx, review)
}

// Counts returns total and per-status review counts.
func (rs *ReviewService) Counts(ctx context.Context) (total, pending, inReview, completed int64, err error) {
	total, err = rs.collection.CountDocuments(ctx, bson.M{})
	if err != nil {
		return 0, 0, 0, 0, fmt.Errorf("count reviews: %w", err)
	}
	pending, _ = rs.collection.CountDocuments(ctx, bson.M{"status": models.ReviewStatusPending})
	inReview, _ = rs.collection.CountDocuments(ctx, bson.M{"status": models.ReviewStatusInReview})
	completed, _ = rs.collection.CountDocuments(ctx, bson.M{"status": bson.M{
		"$in": []string{models.ReviewStatusApproved, models.ReviewStatusRejected},
	}})
	return total, pending, inReview, completed, nil
}

func (rs *ReviewService) save(ctx context.Context, review *models.ParseReview) error {
	_, err := rs.collection.ReplaceOne(ctx, bson.M{"_id": review.ID}, review)
	if err != nil {
		return fmt.Errorf("update review %s: %w", review.ID.Hex(), err)
	}
	return nil
}
