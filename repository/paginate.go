package repository

import (
	"context"

	"WellnessHub/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"golang.org/x/sync/errgroup"
)

/*
* Run the page read and the count concurrently against the same filter
* The two reads are not a snapshot: writes landing in between can make
* totalDocs disagree with the page by that many documents
 */
func findPage[T any](ctx context.Context, coll *mongo.Collection, filter bson.M, sort bson.D, page models.PageRequest, projection bson.M) ([]T, int64, error) {
	var (
		items []T
		total int64
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		opts := options.Find().
			SetSort(sort).
			SetSkip(page.Skip()).
			SetLimit(int64(page.Limit))
		if projection != nil {
			opts.SetProjection(projection)
		}
		cursor, err := coll.Find(gctx, filter, opts)
		if err != nil {
			return err
		}
		return cursor.All(gctx, &items)
	})
	g.Go(func() error {
		n, err := coll.CountDocuments(gctx, filter)
		if err != nil {
			return err
		}
		total = n
		return nil
	})
	if err := g.Wait(); err != nil {
		return nil, 0, err
	}
	if items == nil {
		items = []T{}
	}
	return items, total, nil
}
