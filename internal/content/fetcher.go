// internal/content/fetcher.go
package content

import (
	"context"
	"encoding/json"
	"errors"
	"sync"

	"cruise-explorer/internal/common/config"
	stderrors "cruise-explorer/internal/common/errors"
	commonhttp "cruise-explorer/internal/common/http"
	"cruise-explorer/internal/common/logger"
	"cruise-explorer/internal/common/metrics"
)

// Collection names the three content sources.
type Collection string

const (
	CollectionCruises    Collection = "cruises"
	CollectionActivities Collection = "activities"
	CollectionEssentials Collection = "essentials"
)

// Result is the outcome of one collection fetch. A failed fetch records the
// error and leaves Records empty; it never propagates to the other
// collections.
type Result struct {
	Collection Collection
	Records    []RawRecord
	Err        error
}

// Failed reports whether the collection degraded to empty.
func (r Result) Failed() bool {
	return r.Err != nil
}

// Snapshot holds all three settled results for one session.
type Snapshot struct {
	Cruises    Result
	Activities Result
	Essentials Result
}

// Fetcher issues the three read-only content requests.
type Fetcher struct {
	client *commonhttp.Client
	cfg    config.ContentConfig
	logger logger.Logger
}

func NewFetcher(cfg config.ContentConfig, log logger.Logger) *Fetcher {
	return &Fetcher{
		client: commonhttp.NewClient(config.GetDuration(cfg.Timeout)),
		cfg:    cfg,
		logger: log.WithFields(map[string]interface{}{"component": "content-fetcher"}),
	}
}

// FetchAll retrieves the three collections concurrently and returns once all
// of them have settled. Fetches are one-shot per session: no retries beyond
// the transport default, no cancellation of siblings on failure.
func (f *Fetcher) FetchAll(ctx context.Context) Snapshot {
	var snap Snapshot
	var wg sync.WaitGroup

	fetch := func(dst *Result, collection Collection, url string) {
		defer wg.Done()
		*dst = f.fetchCollection(ctx, collection, url)
	}

	wg.Add(3)
	go fetch(&snap.Cruises, CollectionCruises, f.cfg.CruisesURL)
	go fetch(&snap.Activities, CollectionActivities, f.cfg.ActivitiesURL)
	go fetch(&snap.Essentials, CollectionEssentials, f.cfg.EssentialsURL)
	wg.Wait()

	f.logger.Info("content snapshot settled", map[string]interface{}{
		"cruises":    len(snap.Cruises.Records),
		"activities": len(snap.Activities.Records),
		"essentials": len(snap.Essentials.Records),
	})

	return snap
}

func (f *Fetcher) fetchCollection(ctx context.Context, collection Collection, url string) Result {
	var records []RawRecord
	err := f.client.GetJSON(ctx, url, &records)
	if err == nil {
		return Result{Collection: collection, Records: records}
	}

	metrics.ContentFetchFailures.WithLabelValues(string(collection)).Inc()

	var statusErr *commonhttp.StatusError
	var stdErr *stderrors.StandardError
	switch {
	case errors.As(err, &statusErr):
		stdErr = stderrors.NewContentBadStatusError(string(collection), statusErr.Code)
	case isDecodeError(err):
		stdErr = stderrors.NewContentDecodeFailedError(string(collection), err)
	default:
		stdErr = stderrors.NewContentFetchFailedError(string(collection), err)
	}

	f.logger.Warn("collection degraded to empty", map[string]interface{}{
		"collection": collection,
		"url":        url,
		"category":   stderrors.GetErrorCategory(stdErr.Code),
		"error":      stdErr.Error(),
		"details":    stdErr.Details,
	})

	return Result{Collection: collection, Err: stdErr}
}

func isDecodeError(err error) bool {
	var syntaxErr *json.SyntaxError
	var typeErr *json.UnmarshalTypeError
	return errors.As(err, &syntaxErr) || errors.As(err, &typeErr)
}
