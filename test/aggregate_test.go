package test

import (
	"testing"

	"github.com/fiatjaf/bookstore"
	"github.com/stretchr/testify/require"
)

func runAggregateTestOn(t *testing.T, db bookstore.Store, allBooks []bookstore.Book) {
	{
		averages, err := db.AveragePriceByGenre(ctx)
		require.NoError(t, err)

		genres := make(map[string]float64, len(averages))
		for _, avg := range averages {
			genres[avg.Genre] = avg.AvgPrice
		}
		require.Len(t, genres, 9)
		require.InDelta(t, 11.792, genres["Fiction"], 0.0001)
		require.InDelta(t, 11.245, genres["Dystopian"], 0.0001)
		require.InDelta(t, 15.99, genres["Science Fiction"], 0.0001)
	}

	{
		top, err := db.TopAuthors(ctx, 1)
		require.NoError(t, err)
		require.Equal(t, []bookstore.AuthorCount{{Author: "George Orwell", Count: 3}}, top)

		all, err := db.TopAuthors(ctx, 0)
		require.NoError(t, err)
		var total int64
		for i, ac := range all {
			require.LessOrEqual(t, ac.Count, top[0].Count)
			if i > 0 {
				require.LessOrEqual(t, ac.Count, all[i-1].Count)
			}
			total += ac.Count
		}
		require.Equal(t, int64(len(allBooks)), total)
	}

	{
		decades, err := db.CountByDecade(ctx)
		require.NoError(t, err)

		counts := make(map[int]int64, len(decades))
		var total int64
		for i, dc := range decades {
			require.Zero(t, dc.Decade%10)
			if i > 0 {
				require.Greater(t, dc.Decade, decades[i-1].Decade)
			}
			counts[dc.Decade] = dc.Count
			total += dc.Count
		}
		require.Equal(t, int64(len(allBooks)), total)
		require.Equal(t, int64(1), counts[1980])
		require.Equal(t, int64(2), counts[1950])
		require.Equal(t, int64(2), counts[2010])
		require.Equal(t, int64(3), counts[1930])
		require.NotContains(t, counts, 1988)
	}
}
