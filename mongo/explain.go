package mongo

import (
	"context"
	"fmt"

	"github.com/fiatjaf/bookstore"
	"go.mongodb.org/mongo-driver/v2/bson"
)

type explainOutput struct {
	QueryPlanner struct {
		WinningPlan planStage `bson:"winningPlan"`
	} `bson:"queryPlanner"`
	ExecutionStats struct {
		NReturned         int64 `bson:"nReturned"`
		TotalKeysExamined int64 `bson:"totalKeysExamined"`
		TotalDocsExamined int64 `bson:"totalDocsExamined"`
	} `bson:"executionStats"`
}

// planStage is one node of a winning plan. Servers using the slot based engine wrap
// the classic tree under "queryPlan".
type planStage struct {
	Stage      string     `bson:"stage"`
	IndexName  string     `bson:"indexName"`
	InputStage *planStage `bson:"inputStage"`
	QueryPlan  *planStage `bson:"queryPlan"`
}

func (b *MongoDBBackend) Explain(ctx context.Context, filter bookstore.Filter) (bookstore.QueryPlan, error) {
	command := bson.D{
		{Key: "explain", Value: bson.D{
			{Key: "find", Value: b.CollectionName},
			{Key: "filter", Value: filterDocument(filter)},
		}},
		{Key: "verbosity", Value: "executionStats"},
	}

	var out explainOutput
	if err := b.Client.Database(b.DatabaseName).RunCommand(ctx, command).Decode(&out); err != nil {
		return bookstore.QueryPlan{}, fmt.Errorf("failed to explain %s: %w", filter, err)
	}

	return out.queryPlan(), nil
}

func (out explainOutput) queryPlan() bookstore.QueryPlan {
	plan := bookstore.QueryPlan{
		Stage:        bookstore.StageCollectionScan,
		KeysExamined: out.ExecutionStats.TotalKeysExamined,
		DocsExamined: out.ExecutionStats.TotalDocsExamined,
		Returned:     out.ExecutionStats.NReturned,
	}

	stage := &out.QueryPlanner.WinningPlan
	if stage.QueryPlan != nil {
		stage = stage.QueryPlan
	}
	for ; stage != nil; stage = stage.InputStage {
		detail := stage.Stage
		if stage.IndexName != "" {
			detail += " " + stage.IndexName
		}
		plan.Details = append(plan.Details, detail)

		if stage.Stage == bookstore.StageIndexScan && plan.Index == "" {
			plan.Stage = bookstore.StageIndexScan
			plan.Index = stage.IndexName
		}
	}

	return plan
}
