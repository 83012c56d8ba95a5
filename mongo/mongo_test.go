package mongo

import (
	"testing"

	"github.com/fiatjaf/bookstore"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
)

func TestFilterDocument(t *testing.T) {
	require.Equal(t, bson.D{}, filterDocument(bookstore.Filter{}))

	require.Equal(t,
		bson.D{{Key: "genre", Value: "Fiction"}},
		filterDocument(bookstore.Filter{Genre: "Fiction"}))

	require.Equal(t,
		bson.D{
			{Key: "in_stock", Value: true},
			{Key: "published_year", Value: bson.D{{Key: "$gt", Value: 2010}}},
		},
		filterDocument(bookstore.Filter{InStock: bookstore.BoolPtr(true), PublishedAfter: bookstore.IntPtr(2010)}))
}

func TestIndexModel(t *testing.T) {
	model := indexModel(bookstore.Index{Keys: []string{"author", "published_year"}})
	require.Equal(t, bson.D{{Key: "author", Value: 1}, {Key: "published_year", Value: 1}}, model.Keys)
	require.NotNil(t, model.Options)
}

func TestTopAuthorsPipeline(t *testing.T) {
	require.Len(t, topAuthors(1), 3)
	require.Len(t, topAuthors(0), 2, "no limit stage when every author is wanted")
}

func TestAveragePriceByGenrePipeline(t *testing.T) {
	require.Equal(t, mongo.Pipeline{
		{{Key: "$group", Value: bson.D{
			{Key: "_id", Value: "$genre"},
			{Key: "avgPrice", Value: bson.D{{Key: "$avg", Value: "$price"}}},
		}}},
		{{Key: "$sort", Value: bson.D{{Key: "_id", Value: 1}}}},
	}, averagePriceByGenre)

	// the group fields are what GenreAverage decodes
	raw, err := bson.Marshal(bson.D{{Key: "_id", Value: "Fiction"}, {Key: "avgPrice", Value: 11.792}})
	require.NoError(t, err)
	var avg bookstore.GenreAverage
	require.NoError(t, bson.Unmarshal(raw, &avg))
	require.Equal(t, bookstore.GenreAverage{Genre: "Fiction", AvgPrice: 11.792}, avg)
}

func TestCountByDecadePipeline(t *testing.T) {
	require.Len(t, countByDecade, 2)

	group := countByDecade[0]
	require.Equal(t, "$group", group[0].Key)
	fields := group[0].Value.(bson.D)
	require.Equal(t, bson.D{{Key: "$multiply", Value: bson.A{
		bson.D{{Key: "$floor", Value: bson.D{{Key: "$divide", Value: bson.A{"$published_year", 10}}}}},
		10,
	}}}, fields[0].Value, "decade is floor(year / 10) * 10")
	require.Equal(t, bson.E{Key: "count", Value: bson.D{{Key: "$sum", Value: 1}}}, fields[1])
	require.Equal(t, bson.D{{Key: "$sort", Value: bson.D{{Key: "_id", Value: 1}}}}, countByDecade[1])

	// $floor and $multiply yield doubles, which must still land in an int decade
	raw, err := bson.Marshal(bson.D{{Key: "_id", Value: 1980.0}, {Key: "count", Value: int32(1)}})
	require.NoError(t, err)
	var dc bookstore.DecadeCount
	require.NoError(t, bson.Unmarshal(raw, &dc))
	require.Equal(t, bookstore.DecadeCount{Decade: 1980, Count: 1}, dc)
}

func TestTopAuthorsStages(t *testing.T) {
	pipeline := topAuthors(1)
	require.Equal(t, "$group", pipeline[0][0].Key)
	require.Equal(t, bson.D{{Key: "$sort", Value: bson.D{{Key: "count", Value: -1}, {Key: "_id", Value: 1}}}}, pipeline[1])
	require.Equal(t, bson.D{{Key: "$limit", Value: 1}}, pipeline[2])
}

func TestUpdateDocuments(t *testing.T) {
	require.Equal(t, bson.D{{Key: "$set", Value: bson.D{{Key: "price", Value: 14.99}}}}, priceUpdate(14.99))
	require.Equal(t, bson.D{{Key: "title", Value: "The Great Gatsby"}}, byTitle("The Great Gatsby"))
}

func TestExplainDecoding(t *testing.T) {
	raw, err := bson.Marshal(bson.D{
		{Key: "queryPlanner", Value: bson.D{
			{Key: "winningPlan", Value: bson.D{
				{Key: "queryPlan", Value: bson.D{
					{Key: "stage", Value: "FETCH"},
					{Key: "inputStage", Value: bson.D{
						{Key: "stage", Value: "IXSCAN"},
						{Key: "indexName", Value: "title_1"},
					}},
				}},
			}},
		}},
		{Key: "executionStats", Value: bson.D{
			{Key: "nReturned", Value: int32(1)},
			{Key: "totalKeysExamined", Value: int32(1)},
			{Key: "totalDocsExamined", Value: int32(1)},
		}},
	})
	require.NoError(t, err)

	var out explainOutput
	require.NoError(t, bson.Unmarshal(raw, &out))

	plan := out.queryPlan()
	require.True(t, plan.UsesIndex())
	require.Equal(t, "title_1", plan.Index)
	require.Equal(t, []string{"FETCH", "IXSCAN title_1"}, plan.Details)
	require.EqualValues(t, 1, plan.Returned)

	raw, err = bson.Marshal(bson.D{
		{Key: "queryPlanner", Value: bson.D{
			{Key: "winningPlan", Value: bson.D{{Key: "stage", Value: "COLLSCAN"}}},
		}},
		{Key: "executionStats", Value: bson.D{
			{Key: "nReturned", Value: int32(1)},
			{Key: "totalDocsExamined", Value: int32(15)},
		}},
	})
	require.NoError(t, err)

	out = explainOutput{}
	require.NoError(t, bson.Unmarshal(raw, &out))
	plan = out.queryPlan()
	require.False(t, plan.UsesIndex())
	require.EqualValues(t, 15, plan.DocsExamined)
	require.Equal(t, []string{"COLLSCAN"}, plan.Details)
}
