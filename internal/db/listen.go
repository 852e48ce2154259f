package db

import (
	"context"
	"errors"

	"cloud.google.com/go/firestore"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"wastesync-backend-go/internal/result"
)

// listenQuery attaches a Firestore snapshot listener to query and republishes
// each snapshot as a tri-state emission: Loading first, then one Success per
// backend change carrying the full decoded document set, or a single Error on
// listener failure (no automatic retry; the caller restarts by subscribing
// again). Stopping the subscription cancels the listener context, which
// releases the backend listener.
//
// Documents that fail to decode are skipped rather than failing the whole
// snapshot; a malformed document must not take down a live list read.
func listenQuery[T any](parent context.Context, query firestore.Query, decode func(*firestore.DocumentSnapshot) (T, error)) *result.Subscription[[]T] {
	return result.Start(parent, func(ctx context.Context, emit func(result.Result[[]T]) bool) {
		emit(result.Loading[[]T]())

		it := query.Snapshots(ctx)
		defer it.Stop()

		for {
			snap, err := it.Next()
			if err != nil {
				if listenerClosed(err) {
					return
				}
				emit(result.Failure[[]T](err.Error()))
				return
			}

			docs, err := snap.Documents.GetAll()
			if err != nil {
				if listenerClosed(err) {
					return
				}
				emit(result.Failure[[]T](err.Error()))
				return
			}

			items := make([]T, 0, len(docs))
			for _, doc := range docs {
				item, err := decode(doc)
				if err != nil {
					continue
				}
				items = append(items, item)
			}
			if !emit(result.Success(items)) {
				return
			}
		}
	})
}

// listenDoc is the single-document counterpart of listenQuery, used for the
// live profile read. A missing document is surfaced as an Error emission with
// ErrNotFound's text.
func listenDoc[T any](parent context.Context, ref *firestore.DocumentRef, decode func(*firestore.DocumentSnapshot) (T, error)) *result.Subscription[T] {
	return result.Start(parent, func(ctx context.Context, emit func(result.Result[T]) bool) {
		emit(result.Loading[T]())

		it := ref.Snapshots(ctx)
		defer it.Stop()

		for {
			snap, err := it.Next()
			if err != nil {
				if listenerClosed(err) {
					return
				}
				emit(result.Failure[T](err.Error()))
				return
			}
			if !snap.Exists() {
				if !emit(result.Failure[T](ErrNotFound.Error())) {
					return
				}
				continue
			}
			item, err := decode(snap)
			if err != nil {
				emit(result.Failure[T](err.Error()))
				return
			}
			if !emit(result.Success(item)) {
				return
			}
		}
	})
}

// listenerClosed reports whether err is the expected shutdown error after
// the subscription context was cancelled, as opposed to a real listener
// failure worth emitting.
func listenerClosed(err error) bool {
	return errors.Is(err, context.Canceled) || status.Code(err) == codes.Canceled
}
