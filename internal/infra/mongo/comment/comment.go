package infra_mongo_comment

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/cinetalk/backend/internal/model"
	usecase_comment "github.com/cinetalk/backend/internal/usecase/comment"
)

const collectionName = "comments"

type Driver struct {
	collection *mongo.Collection
}

func New(db *mongo.Database) *Driver {
	return &Driver{collection: db.Collection(collectionName)}
}

func (d *Driver) Insert(ctx context.Context, comment model.Comment) (model.Comment, error) {
	now := time.Now().UTC()
	comment.ID = primitive.NewObjectID()
	comment.Likes = 0
	comment.CreatedAt = now
	comment.UpdatedAt = now

	if _, err := d.collection.InsertOne(ctx, comment); err != nil {
		return model.Comment{}, err
	}
	return comment, nil
}

func (d *Driver) FindByContent(ctx context.Context, contentType model.ContentType, contentID string) ([]model.Comment, error) {
	filter := bson.M{
		"contentId":   contentID,
		"contentType": contentType,
	}
	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})

	cursor, err := d.collection.Find(ctx, filter, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	comments := make([]model.Comment, 0)
	if err := cursor.All(ctx, &comments); err != nil {
		return nil, err
	}
	return comments, nil
}

// IncrementLikes is a single atomic update. Concurrent likes each land
// their own increment.
func (d *Driver) IncrementLikes(ctx context.Context, commentID string) (model.Comment, error) {
	id, err := primitive.ObjectIDFromHex(commentID)
	if err != nil {
		return model.Comment{}, usecase_comment.ErrResourceNotFound
	}

	update := bson.M{
		"$inc": bson.M{"likes": 1},
		"$set": bson.M{"updatedAt": time.Now().UTC()},
	}
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var updated model.Comment
	err = d.collection.FindOneAndUpdate(ctx, bson.M{"_id": id}, update, opts).Decode(&updated)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return model.Comment{}, usecase_comment.ErrResourceNotFound
		}
		return model.Comment{}, err
	}
	return updated, nil
}
