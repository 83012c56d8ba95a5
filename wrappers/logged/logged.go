package logged

import (
	"context"
	"time"

	"github.com/fiatjaf/bookstore"
	"github.com/rs/zerolog"
)

// Wrapper logs every call that goes to the underlying store, with its duration.
type Wrapper struct {
	bookstore.Store

	Logger zerolog.Logger
}

var _ bookstore.Store = (*Wrapper)(nil)

func (w Wrapper) done(op string, start time.Time, err error) *zerolog.Event {
	var evt *zerolog.Event
	if err != nil {
		evt = w.Logger.Warn().Err(err)
	} else {
		evt = w.Logger.Debug()
	}
	return evt.Str("op", op).Dur("took", time.Since(start))
}

func (w Wrapper) SaveBook(ctx context.Context, book *bookstore.Book) error {
	start := time.Now()
	err := w.Store.SaveBook(ctx, book)
	w.done("save", start, err).Str("title", book.Title).Msg("")
	return err
}

func (w Wrapper) FindBooks(ctx context.Context, filter bookstore.Filter, opts bookstore.FindOptions) ([]bookstore.Book, error) {
	start := time.Now()
	books, err := w.Store.FindBooks(ctx, filter, opts)
	w.done("find", start, err).Stringer("filter", filter).Int("results", len(books)).Msg("")
	return books, err
}

func (w Wrapper) UpdatePrice(ctx context.Context, title string, price float64) (bookstore.UpdateResult, error) {
	start := time.Now()
	res, err := w.Store.UpdatePrice(ctx, title, price)
	w.done("update", start, err).Str("title", title).Float64("price", price).
		Int64("matched", res.Matched).Int64("modified", res.Modified).Msg("")
	return res, err
}

func (w Wrapper) DeleteBook(ctx context.Context, title string) (bookstore.DeleteResult, error) {
	start := time.Now()
	res, err := w.Store.DeleteBook(ctx, title)
	w.done("delete", start, err).Str("title", title).Int64("deleted", res.Deleted).Msg("")
	return res, err
}

func (w Wrapper) AveragePriceByGenre(ctx context.Context) ([]bookstore.GenreAverage, error) {
	start := time.Now()
	res, err := w.Store.AveragePriceByGenre(ctx)
	w.done("avg-price", start, err).Int("groups", len(res)).Msg("")
	return res, err
}

func (w Wrapper) TopAuthors(ctx context.Context, n int) ([]bookstore.AuthorCount, error) {
	start := time.Now()
	res, err := w.Store.TopAuthors(ctx, n)
	w.done("top-authors", start, err).Int("n", n).Int("groups", len(res)).Msg("")
	return res, err
}

func (w Wrapper) CountByDecade(ctx context.Context) ([]bookstore.DecadeCount, error) {
	start := time.Now()
	res, err := w.Store.CountByDecade(ctx)
	w.done("decades", start, err).Int("groups", len(res)).Msg("")
	return res, err
}

func (w Wrapper) CreateIndex(ctx context.Context, idx bookstore.Index) (string, error) {
	start := time.Now()
	name, err := w.Store.CreateIndex(ctx, idx)
	w.done("create-index", start, err).Strs("keys", idx.Keys).Str("name", name).Msg("")
	return name, err
}

func (w Wrapper) Explain(ctx context.Context, filter bookstore.Filter) (bookstore.QueryPlan, error) {
	start := time.Now()
	plan, err := w.Store.Explain(ctx, filter)
	w.done("explain", start, err).Stringer("filter", filter).Str("stage", plan.Stage).Msg("")
	return plan, err
}
